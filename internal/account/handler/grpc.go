package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cineflix/dbservice/internal/account/domain"
	"github.com/cineflix/dbservice/internal/account/service"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/interfaces"
)

// GRPCHandler implements the AccountService gRPC server
type GRPCHandler struct {
	pb.UnimplementedAccountServiceServer

	accounts *service.AccountService
	logger   interfaces.Logger
}

// NewGRPCHandler creates a new account gRPC handler
func NewGRPCHandler(accounts *service.AccountService, logger interfaces.Logger) *GRPCHandler {
	return &GRPCHandler{accounts: accounts, logger: logger}
}

// CreateUser registers a new account
func (h *GRPCHandler) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {
	role, err := domain.ParseRole(req.GetRole())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	user := &domain.User{
		Username:       req.GetUsername(),
		Email:          req.GetEmail(),
		HashedPassword: req.GetHashedPassword(),
		Role:           role,
	}

	if err := h.accounts.CreateUser(ctx, user); err != nil {
		h.logger.Error("Failed to create user",
			interfaces.Error(err),
			interfaces.String("username", req.GetUsername()))
		return nil, errors.ToGRPCError(err)
	}

	return userToProto(user), nil
}

// GetUser retrieves a user by ID
func (h *GRPCHandler) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	user, err := h.accounts.GetUser(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return userToProto(user), nil
}

// GetUserByUsername retrieves a user by username
func (h *GRPCHandler) GetUserByUsername(ctx context.Context, req *pb.GetUserByUsernameRequest) (*pb.UserResponse, error) {
	user, err := h.accounts.GetUserByUsername(ctx, req.GetUsername())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return userToProto(user), nil
}

// GetUserByEmail retrieves a user by email
func (h *GRPCHandler) GetUserByEmail(ctx context.Context, req *pb.GetUserByEmailRequest) (*pb.UserResponse, error) {
	user, err := h.accounts.GetUserByEmail(ctx, req.GetEmail())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return userToProto(user), nil
}

// ListUsers lists all accounts
func (h *GRPCHandler) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	users, err := h.accounts.ListUsers(ctx)
	if err != nil {
		h.logger.Error("Failed to list users", interfaces.Error(err))
		return nil, errors.ToGRPCError(err)
	}

	resp := &pb.ListUsersResponse{Users: make([]*pb.UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, userToProto(user))
	}
	return resp, nil
}

// UpdateUser replaces a user's fields
func (h *GRPCHandler) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	role, err := domain.ParseRole(req.GetRole())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	user := &domain.User{
		ID:             id,
		Username:       req.GetUsername(),
		Email:          req.GetEmail(),
		HashedPassword: req.GetHashedPassword(),
		Role:           role,
	}

	updated, err := h.accounts.UpdateUser(ctx, user)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return userToProto(updated), nil
}

// DeleteUser removes an account and its reviews
func (h *GRPCHandler) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid user ID")
	}

	if err := h.accounts.DeleteUser(ctx, id); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &pb.DeleteUserResponse{Success: true, Message: "user deleted"}, nil
}

func userToProto(user *domain.User) *pb.UserResponse {
	return &pb.UserResponse{
		Id:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}
