package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cineflix/dbservice/internal/library/service"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// GRPCHandler implements the UserLibraryService gRPC server
type GRPCHandler struct {
	pb.UnimplementedUserLibraryServiceServer

	library *service.LibraryService
	logger  interfaces.Logger
}

// NewGRPCHandler creates a new library gRPC handler
func NewGRPCHandler(library *service.LibraryService, logger interfaces.Logger) *GRPCHandler {
	return &GRPCHandler{library: library, logger: logger}
}

// AddFavoriteMovie adds a movie to the user's favorites
func (h *GRPCHandler) AddFavoriteMovie(ctx context.Context, req *pb.LibraryEntryRequest) (*pb.LibraryMutationResponse, error) {
	userID, movieID, err := parseEntry(req)
	if err != nil {
		return nil, err
	}

	added, err := h.library.AddFavorite(ctx, userID, movieID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &pb.LibraryMutationResponse{Success: added}, nil
}

// RemoveFavoriteMovie removes a movie from the user's favorites
func (h *GRPCHandler) RemoveFavoriteMovie(ctx context.Context, req *pb.LibraryEntryRequest) (*pb.LibraryMutationResponse, error) {
	userID, movieID, err := parseEntry(req)
	if err != nil {
		return nil, err
	}

	if err := h.library.RemoveFavorite(ctx, userID, movieID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &pb.LibraryMutationResponse{Success: true}, nil
}

// ListFavoriteMovies lists the user's favorite movie IDs
func (h *GRPCHandler) ListFavoriteMovies(ctx context.Context, req *pb.ListLibraryRequest) (*pb.ListLibraryResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	movieIDs, err := h.library.ListFavorites(ctx, userID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return listToProto(movieIDs), nil
}

// AddWatchListMovie adds a movie to the user's watch list
func (h *GRPCHandler) AddWatchListMovie(ctx context.Context, req *pb.LibraryEntryRequest) (*pb.LibraryMutationResponse, error) {
	userID, movieID, err := parseEntry(req)
	if err != nil {
		return nil, err
	}

	added, err := h.library.AddWatchListMovie(ctx, userID, movieID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &pb.LibraryMutationResponse{Success: added}, nil
}

// RemoveWatchListMovie removes a movie from the user's watch list
func (h *GRPCHandler) RemoveWatchListMovie(ctx context.Context, req *pb.LibraryEntryRequest) (*pb.LibraryMutationResponse, error) {
	userID, movieID, err := parseEntry(req)
	if err != nil {
		return nil, err
	}

	if err := h.library.RemoveWatchListMovie(ctx, userID, movieID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &pb.LibraryMutationResponse{Success: true}, nil
}

// ListWatchListMovies lists the user's watch list movie IDs
func (h *GRPCHandler) ListWatchListMovies(ctx context.Context, req *pb.ListLibraryRequest) (*pb.ListLibraryResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	movieIDs, err := h.library.ListWatchListMovies(ctx, userID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return listToProto(movieIDs), nil
}

func parseEntry(req *pb.LibraryEntryRequest) (uuid.UUID, uuid.UUID, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}
	movieID, err := uuid.Parse(req.GetMovieId())
	if err != nil {
		return uuid.Nil, uuid.Nil, status.Error(codes.InvalidArgument, "invalid movie ID")
	}
	return userID, movieID, nil
}

func listToProto(movieIDs []uuid.UUID) *pb.ListLibraryResponse {
	resp := &pb.ListLibraryResponse{MovieIds: make([]string, 0, len(movieIDs))}
	for _, id := range movieIDs {
		resp.MovieIds = append(resp.MovieIds, id.String())
	}
	return resp
}
