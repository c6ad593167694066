package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/seeseehome-users/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "validation -> InvalidArgument with field message",
			in:       fmt.Errorf("wrapped: %w", model.NewValidationError("password", "password must be at least 6 characters")),
			wantCode: codes.InvalidArgument,
			wantMsg:  "password must be at least 6 characters",
		},
		{
			name:     "invalid input -> InvalidArgument",
			in:       model.NewInvalidInputError("username", "username must be set"),
			wantCode: codes.InvalidArgument,
			wantMsg:  "username must be set",
		},
		{
			name:     "model not found -> NotFound",
			in:       fmt.Errorf("failed to get user by id: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "user not found",
		},
		{
			name:     "constraint violation -> AlreadyExists",
			in:       fmt.Errorf("failed to create user: %w", model.ErrConstraintViolation),
			wantCode: codes.AlreadyExists,
			wantMsg:  "username or email already taken",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
