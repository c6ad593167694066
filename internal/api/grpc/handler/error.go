package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/seeseehome-users/internal/model"
)

func handleError(err error) error {
	var fieldErr *model.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return status.Error(codes.InvalidArgument, fieldErr.Message)
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, model.ErrConstraintViolation):
		return status.Error(codes.AlreadyExists, "username or email already taken")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
