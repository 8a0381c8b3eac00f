package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	accounthandler "github.com/cineflix/dbservice/internal/account/handler"
	accountrepo "github.com/cineflix/dbservice/internal/account/repository"
	accountservice "github.com/cineflix/dbservice/internal/account/service"
	cataloghandler "github.com/cineflix/dbservice/internal/catalog/handler"
	catalogrepo "github.com/cineflix/dbservice/internal/catalog/repository"
	catalogservice "github.com/cineflix/dbservice/internal/catalog/service"
	libraryhandler "github.com/cineflix/dbservice/internal/library/handler"
	libraryrepo "github.com/cineflix/dbservice/internal/library/repository"
	libraryservice "github.com/cineflix/dbservice/internal/library/service"
	grpcmiddleware "github.com/cineflix/dbservice/internal/middleware/grpc"
	reviewhandler "github.com/cineflix/dbservice/internal/review/handler"
	reviewrepo "github.com/cineflix/dbservice/internal/review/repository"
	reviewservice "github.com/cineflix/dbservice/internal/review/service"
	"github.com/cineflix/dbservice/internal/storage"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/config"
	"github.com/cineflix/dbservice/pkg/database"
	"github.com/cineflix/dbservice/pkg/events"
	"github.com/cineflix/dbservice/pkg/interfaces"
	"github.com/cineflix/dbservice/pkg/logger"
	"github.com/cineflix/dbservice/pkg/utils"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	zapLogger, err := logger.NewZapLogger(!cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := interfaces.Logger(zapLogger)
	defer zapLogger.Sync()

	log.Info("Starting db-service",
		interfaces.String("version", cfg.Service.Version),
		interfaces.String("environment", cfg.Service.Environment))

	db, err := database.NewGormDB(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", interfaces.Error(err))
	}

	var models []interface{}
	models = append(models, catalogrepo.Models()...)
	models = append(models, accountrepo.Models()...)
	models = append(models, reviewrepo.Models()...)
	models = append(models, libraryrepo.Models()...)
	if err := database.Migrate(db, models...); err != nil {
		log.Fatal("Failed to run migrations", interfaces.Error(err))
	}
	if err := database.EnsureForeignKeys(db, reviewrepo.ForeignKeys()...); err != nil {
		log.Fatal("Failed to install constraints", interfaces.Error(err))
	}

	eventBus := events.NewLocalEventBus(log)
	defer eventBus.Stop()

	if cfg.NATS.URL != "" {
		publisher, cleanup, err := events.NewNATSPublisher(cfg.NATS, zapLogger.Zap())
		if err != nil {
			log.Fatal("Failed to connect to NATS", interfaces.Error(err))
		}
		defer cleanup()
		if err := publisher.SubscribeAll(eventBus); err != nil {
			log.Fatal("Failed to subscribe NATS publisher", interfaces.Error(err))
		}
	}

	cache := utils.NewInMemoryCache()

	movieRepo := catalogrepo.NewGormRepository(db)
	userRepo := accountrepo.NewGormRepository(db)
	reviewRepo := reviewrepo.NewGormRepository(db)
	favoriteRepo := libraryrepo.NewGormFavoriteRepository(db)
	watchListRepo := libraryrepo.NewGormWatchListRepository(db)
	uow := storage.NewGormUnitOfWork(db)

	catalogSvc := catalogservice.NewCatalogService(movieRepo, eventBus, cache, log)
	accountSvc := accountservice.NewAccountService(userRepo, uow, eventBus, cache, log)
	reviewSvc := reviewservice.NewReviewService(reviewRepo, uow, eventBus, cache, log)
	librarySvc := libraryservice.NewLibraryService(favoriteRepo, watchListRepo, movieRepo, userRepo, eventBus, log)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcmiddleware.UnaryRecoveryInterceptor(zapLogger.Zap()),
			grpcmiddleware.UnaryLoggingInterceptor(zapLogger.Zap()),
		),
	)

	pb.RegisterCatalogServiceServer(grpcServer, cataloghandler.NewGRPCHandler(catalogSvc, log))
	pb.RegisterAccountServiceServer(grpcServer, accounthandler.NewGRPCHandler(accountSvc, log))
	pb.RegisterReviewServiceServer(grpcServer, reviewhandler.NewGRPCHandler(reviewSvc, log))
	pb.RegisterUserLibraryServiceServer(grpcServer, libraryhandler.NewGRPCHandler(librarySvc, log))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	if !cfg.IsProduction() {
		reflection.Register(grpcServer)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Service.GRPCPort))
	if err != nil {
		log.Fatal("Failed to listen", interfaces.Error(err))
	}

	go func() {
		log.Info("gRPC server listening", interfaces.Int("port", cfg.Service.GRPCPort))
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal("gRPC server failed", interfaces.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Service.HealthPort),
		ReadHeaderTimeout: 5 * time.Second,
		Handler:           healthHandler(),
	}
	go func() {
		log.Info("Health server listening", interfaces.Int("port", cfg.Service.HealthPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Health server failed", interfaces.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Health server shutdown failed", interfaces.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	log.Info("Shutdown complete")
}

func healthHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}
