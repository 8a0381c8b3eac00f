package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineflix/dbservice/pkg/errors"
	"github.com/cineflix/dbservice/pkg/validation"
)

type sample struct {
	Title   string  `validate:"required"`
	Email   string  `validate:"omitempty,email"`
	Rating  float64 `validate:"gte=0,lte=10"`
	RunTime int     `validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	err := validation.Struct(&sample{Title: "Arrival", Rating: 7.5, RunTime: 116})
	assert.NoError(t, err)
}

func TestStruct_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		message string
	}{
		{"missing title", sample{Rating: 5, RunTime: 90}, "title must be specified"},
		{"bad email", sample{Title: "x", Email: "not-an-email", Rating: 5, RunTime: 90}, "email must be a valid email address"},
		{"rating too high", sample{Title: "x", Rating: 11, RunTime: 90}, "rating cannot exceed 10"},
		{"zero runtime", sample{Title: "x", Rating: 5}, "runtime must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(&tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
