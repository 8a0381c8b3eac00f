package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cineflix/dbservice/internal/catalog/service"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// GRPCHandler implements the CatalogService gRPC server
type GRPCHandler struct {
	pb.UnimplementedCatalogServiceServer

	catalog *service.CatalogService
	logger  interfaces.Logger
}

// NewGRPCHandler creates a new catalog gRPC handler
func NewGRPCHandler(catalog *service.CatalogService, logger interfaces.Logger) *GRPCHandler {
	return &GRPCHandler{catalog: catalog, logger: logger}
}

// CreateMovie adds a movie to the catalog
func (h *GRPCHandler) CreateMovie(ctx context.Context, req *pb.CreateMovieRequest) (*pb.MovieResponse, error) {
	movie, err := movieFromCreateRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := h.catalog.CreateMovie(ctx, movie); err != nil {
		h.logger.Error("Failed to create movie",
			interfaces.Error(err),
			interfaces.String("title", req.GetTitle()))
		return nil, errors.ToGRPCError(err)
	}

	return movieToProto(movie), nil
}

// GetMovie retrieves a movie by ID
func (h *GRPCHandler) GetMovie(ctx context.Context, req *pb.GetMovieRequest) (*pb.MovieResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid movie ID")
	}

	movie, err := h.catalog.GetMovie(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return movieToProto(movie), nil
}

// GetMovieByTitle retrieves a movie by its exact title
func (h *GRPCHandler) GetMovieByTitle(ctx context.Context, req *pb.GetMovieByTitleRequest) (*pb.MovieResponse, error) {
	movie, err := h.catalog.GetMovieByTitle(ctx, req.GetTitle())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return movieToProto(movie), nil
}

// ListMovies lists the whole catalog
func (h *GRPCHandler) ListMovies(ctx context.Context, req *pb.ListMoviesRequest) (*pb.ListMoviesResponse, error) {
	movies, err := h.catalog.ListMovies(ctx)
	if err != nil {
		h.logger.Error("Failed to list movies", interfaces.Error(err))
		return nil, errors.ToGRPCError(err)
	}
	return moviesToProto(movies), nil
}

// ListMoviesByGenre lists movies carrying the given genre
func (h *GRPCHandler) ListMoviesByGenre(ctx context.Context, req *pb.ListMoviesByGenreRequest) (*pb.ListMoviesResponse, error) {
	movies, err := h.catalog.ListMoviesByGenre(ctx, req.GetGenre())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return moviesToProto(movies), nil
}

// ListMoviesByDirector lists movies credited to the given director
func (h *GRPCHandler) ListMoviesByDirector(ctx context.Context, req *pb.ListMoviesByDirectorRequest) (*pb.ListMoviesResponse, error) {
	movies, err := h.catalog.ListMoviesByDirector(ctx, req.GetDirector())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return moviesToProto(movies), nil
}

// ListMoviesByActor lists movies featuring the given actor
func (h *GRPCHandler) ListMoviesByActor(ctx context.Context, req *pb.ListMoviesByActorRequest) (*pb.ListMoviesResponse, error) {
	movies, err := h.catalog.ListMoviesByActor(ctx, req.GetActor())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return moviesToProto(movies), nil
}

// UpdateMovie replaces a movie's descriptive fields
func (h *GRPCHandler) UpdateMovie(ctx context.Context, req *pb.UpdateMovieRequest) (*pb.MovieResponse, error) {
	movie, err := movieFromUpdateRequest(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	updated, err := h.catalog.UpdateMovie(ctx, movie)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return movieToProto(updated), nil
}

// DeleteMovie removes a movie from the catalog
func (h *GRPCHandler) DeleteMovie(ctx context.Context, req *pb.DeleteMovieRequest) (*pb.DeleteMovieResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid movie ID")
	}

	if err := h.catalog.DeleteMovie(ctx, id); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pb.DeleteMovieResponse{Success: true, Message: "movie deleted"}, nil
}
