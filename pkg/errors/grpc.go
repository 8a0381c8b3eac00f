package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToGRPCError translates an application error into a gRPC status error.
// Unclassified errors surface as Internal; storage-level constraint
// violations that slipped past the service-layer checks are not
// translated into a named kind.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		return status.Error(codes.Internal, err.Error())
	}

	switch appErr.Type {
	case ErrorTypeNotFound:
		return status.Error(codes.NotFound, appErr.Message)
	case ErrorTypeAlreadyExists, ErrorTypeAlreadyInUse:
		return status.Error(codes.AlreadyExists, appErr.Message)
	case ErrorTypeInvalidArgument:
		return status.Error(codes.InvalidArgument, appErr.Message)
	default:
		return status.Error(codes.Internal, appErr.Message)
	}
}
