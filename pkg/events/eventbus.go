package events

import (
	"context"
	"sync"

	"github.com/cineflix/dbservice/pkg/interfaces"
)

// InMemoryEventBus is an in-memory implementation of EventBus
type InMemoryEventBus struct {
	handlers map[string][]interfaces.EventHandler
	mu       sync.RWMutex
	logger   interfaces.Logger
	wg       sync.WaitGroup
}

// LocalEventBus is an alias for InMemoryEventBus
type LocalEventBus = InMemoryEventBus

// NewLocalEventBus creates a new in-memory event bus
func NewLocalEventBus(logger interfaces.Logger) *LocalEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]interfaces.EventHandler),
		logger:   logger,
	}
}

// Publish publishes an event to all subscribers
func (eb *InMemoryEventBus) Publish(ctx context.Context, event interfaces.Event) error {
	eb.mu.RLock()
	handlers := eb.handlers[event.EventType()]
	eb.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			eb.logger.Error("Event handler failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
			// Continue processing other handlers
		}
	}

	return nil
}

// PublishAsync publishes an event asynchronously. Handlers run on a
// context detached from the caller's, so they are not cancelled when
// the request that raised the event returns.
func (eb *InMemoryEventBus) PublishAsync(ctx context.Context, event interfaces.Event) {
	detached := context.WithoutCancel(ctx)
	eb.wg.Add(1)
	go func() {
		defer eb.wg.Done()
		if err := eb.Publish(detached, event); err != nil {
			eb.logger.Error("Async event publish failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
		}
	}()
}

// Subscribe registers a handler for a specific event type
func (eb *InMemoryEventBus) Subscribe(eventType string, handler interfaces.EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	return nil
}

// Stop waits for in-flight async publishes to drain
func (eb *InMemoryEventBus) Stop() error {
	eb.wg.Wait()
	return nil
}
