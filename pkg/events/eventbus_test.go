package events_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
	"github.com/cineflix/dbservice/pkg/logger"
)

// captureHandler records the events it receives and whether the handler
// context was already cancelled at delivery time.
type captureHandler struct {
	eventType string

	mu      sync.Mutex
	handled []interfaces.Event
	ctxErrs []error
}

func (h *captureHandler) Handle(ctx context.Context, event interfaces.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	h.ctxErrs = append(h.ctxErrs, ctx.Err())
	return nil
}

func (h *captureHandler) EventType() string { return h.eventType }

type EventBusTestSuite struct {
	suite.Suite
	ctx context.Context
	bus *events.LocalEventBus
}

func (suite *EventBusTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.bus = events.NewLocalEventBus(logger.NewNoopLogger())
}

func (suite *EventBusTestSuite) TestPublish_RoutesByType() {
	rated := &captureHandler{eventType: events.MovieRated}
	created := &captureHandler{eventType: events.MovieCreated}
	suite.Require().NoError(suite.bus.Subscribe(events.MovieRated, rated))
	suite.Require().NoError(suite.bus.Subscribe(events.MovieCreated, created))

	err := suite.bus.Publish(suite.ctx, events.NewEvent(events.MovieRated, "movie-1", nil))

	suite.NoError(err)
	suite.Len(rated.handled, 1)
	suite.Empty(created.handled)
}

func (suite *EventBusTestSuite) TestPublishAsync_OutlivesCallerContext() {
	handler := &captureHandler{eventType: events.MovieRated}
	suite.Require().NoError(suite.bus.Subscribe(events.MovieRated, handler))

	// The caller's context is already cancelled when the event goes
	// out, as happens when an RPC returns before the handlers run.
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	suite.bus.PublishAsync(ctx, events.NewEvent(events.MovieRated, "movie-1", nil))
	suite.Require().NoError(suite.bus.Stop())

	suite.Require().Len(handler.handled, 1)
	suite.NoError(handler.ctxErrs[0])
}

func TestEventBusTestSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}
