package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cineflix/dbservice/internal/review/domain"
	"github.com/cineflix/dbservice/internal/review/service"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// GRPCHandler implements the ReviewService gRPC server
type GRPCHandler struct {
	pb.UnimplementedReviewServiceServer

	reviews *service.ReviewService
	logger  interfaces.Logger
}

// NewGRPCHandler creates a new review gRPC handler
func NewGRPCHandler(reviews *service.ReviewService, logger interfaces.Logger) *GRPCHandler {
	return &GRPCHandler{reviews: reviews, logger: logger}
}

// CreateReview stores a review and refreshes the movie's rating
func (h *GRPCHandler) CreateReview(ctx context.Context, req *pb.CreateReviewRequest) (*pb.ReviewResponse, error) {
	movieID, err := uuid.Parse(req.GetMovieId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid movie ID")
	}
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	review := &domain.Review{
		MovieID: movieID,
		UserID:  userID,
		Rating:  req.GetRating(),
		Comment: req.GetComment(),
	}

	if err := h.reviews.CreateReview(ctx, review); err != nil {
		h.logger.Error("Failed to create review",
			interfaces.Error(err),
			interfaces.String("movie_id", req.GetMovieId()))
		return nil, errors.ToGRPCError(err)
	}

	return reviewToProto(review), nil
}

// GetReview retrieves a review by ID
func (h *GRPCHandler) GetReview(ctx context.Context, req *pb.GetReviewRequest) (*pb.ReviewResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid review ID")
	}

	review, err := h.reviews.GetReview(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reviewToProto(review), nil
}

// ListReviewsByMovie lists a movie's reviews
func (h *GRPCHandler) ListReviewsByMovie(ctx context.Context, req *pb.ListReviewsByMovieRequest) (*pb.ListReviewsResponse, error) {
	movieID, err := uuid.Parse(req.GetMovieId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid movie ID")
	}

	reviews, err := h.reviews.ListReviewsByMovie(ctx, movieID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reviewsToProto(reviews), nil
}

// ListReviewsByUser lists a user's reviews
func (h *GRPCHandler) ListReviewsByUser(ctx context.Context, req *pb.ListReviewsByUserRequest) (*pb.ListReviewsResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	reviews, err := h.reviews.ListReviewsByUser(ctx, userID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reviewsToProto(reviews), nil
}

// UpdateReview rewrites a review's rating and comment
func (h *GRPCHandler) UpdateReview(ctx context.Context, req *pb.UpdateReviewRequest) (*pb.ReviewResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid review ID")
	}

	review, err := h.reviews.UpdateReview(ctx, id, req.GetRating(), req.GetComment())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return reviewToProto(review), nil
}

// DeleteReview removes a review and refreshes the movie's rating
func (h *GRPCHandler) DeleteReview(ctx context.Context, req *pb.DeleteReviewRequest) (*pb.DeleteReviewResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid review ID")
	}

	if err := h.reviews.DeleteReview(ctx, id); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pb.DeleteReviewResponse{Success: true, Message: "review deleted"}, nil
}

func reviewToProto(review *domain.Review) *pb.ReviewResponse {
	return &pb.ReviewResponse{
		Id:      review.ID.String(),
		MovieId: review.MovieID.String(),
		UserId:  review.UserID.String(),
		Rating:  review.Rating,
		Comment: review.Comment,
	}
}

func reviewsToProto(reviews []*domain.Review) *pb.ListReviewsResponse {
	resp := &pb.ListReviewsResponse{Reviews: make([]*pb.ReviewResponse, 0, len(reviews))}
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, reviewToProto(review))
	}
	return resp
}
