package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cineflix/dbservice/pkg/errors"
)

func TestToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", errors.NotFound("movie not found"), codes.NotFound},
		{"already exists", errors.AlreadyExists("title already exists"), codes.AlreadyExists},
		{"already in use", errors.AlreadyInUse("email already in use"), codes.AlreadyExists},
		{"invalid argument", errors.InvalidArgument("title cannot be blank"), codes.InvalidArgument},
		{"internal", errors.Internal("boom"), codes.Internal},
		{"unclassified", fmt.Errorf("raw storage failure"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grpcErr := errors.ToGRPCError(tt.err)
			require.Error(t, grpcErr)

			s, ok := status.FromError(grpcErr)
			require.True(t, ok)
			assert.Equal(t, tt.code, s.Code())
		})
	}
}

func TestToGRPCError_Nil(t *testing.T) {
	assert.NoError(t, errors.ToGRPCError(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, errors.IsNotFound(errors.NotFound("x")))
	assert.True(t, errors.IsAlreadyExists(errors.AlreadyExists("x")))
	assert.True(t, errors.IsAlreadyInUse(errors.AlreadyInUse("x")))
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgument("x")))
	assert.False(t, errors.IsNotFound(errors.AlreadyExists("x")))

	wrapped := errors.Wrap(errors.ErrorTypeNotFound, "review not found", fmt.Errorf("record not found"))
	assert.True(t, errors.IsNotFound(wrapped))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, errors.IsDuplicateError(fmt.Errorf(`duplicate key value violates unique constraint "users_email_key"`)))
	assert.True(t, errors.IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: movies.title")))
	assert.False(t, errors.IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, errors.IsDuplicateError(nil))
}
