package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/seeseehome-users/internal/api/grpc/accountsv1"
	"github.com/dtroode/seeseehome-users/internal/logger"
	"github.com/dtroode/seeseehome-users/internal/model"
)

// AccountService defines account management operations.
type AccountService interface {
	CreateUser(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error)
	CreateSuperuser(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, bool, error)
	UpdateUser(ctx context.Context, id uuid.UUID, upd model.UserUpdate) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (model.User, error)
}

// Account handles gRPC endpoints for user accounts.
type Account struct {
	accountsv1.UnimplementedAccountsServer
	accountService AccountService
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		logger:         logger,
	}
}

type createFunc func(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error)

// CreateUser creates a regular account.
func (h *Account) CreateUser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.create(ctx, req, h.accountService.CreateUser, false)
}

// CreateSuperuser creates a staff account.
func (h *Account) CreateSuperuser(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.create(ctx, req, h.accountService.CreateSuperuser, true)
}

func (h *Account) create(ctx context.Context, req *structpb.Struct, create createFunc, staff bool) (*structpb.Struct, error) {
	if err := checkFields(req, createFields); err != nil {
		return nil, handleError(err)
	}

	username, _, err := stringField(req, "username")
	if err != nil {
		return nil, handleError(err)
	}
	email, _, err := stringField(req, "email")
	if err != nil {
		return nil, handleError(err)
	}
	password, _, err := stringField(req, "password")
	if err != nil {
		return nil, handleError(err)
	}

	var extra model.UserFields
	if extra.UserPerm, err = permField(req, "userperm"); err != nil {
		return nil, handleError(err)
	}
	active, ok, err := boolField(req, "is_active")
	if err != nil {
		return nil, handleError(err)
	}
	if ok {
		extra.IsActive = &active
	}

	h.logger.Debug("Account handler: processing create request",
		"username", username,
		"staff", staff)

	user, err := create(ctx, username, email, password, extra)
	if err != nil {
		h.logger.Info("Account handler: create failed",
			"username", username,
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.render(user)
}

// GetUser returns a user by id.
func (h *Account) GetUser(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id, err := parseID(req.GetValue())
	if err != nil {
		return nil, handleError(err)
	}

	user, found, err := h.accountService.GetUser(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}
	if !found {
		return nil, status.Error(codes.NotFound, "user not found")
	}

	return h.render(user)
}

// UpdateUser changes the username and/or permission of a user.
func (h *Account) UpdateUser(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := checkFields(req, updateFields); err != nil {
		return nil, handleError(err)
	}

	id, err := idField(req)
	if err != nil {
		return nil, handleError(err)
	}

	var upd model.UserUpdate
	username, ok, err := stringField(req, "username")
	if err != nil {
		return nil, handleError(err)
	}
	if ok {
		upd.Username = &username
	}
	if upd.UserPerm, err = permField(req, "userperm"); err != nil {
		return nil, handleError(err)
	}

	if err := h.accountService.UpdateUser(ctx, id, upd); err != nil {
		h.logger.Info("Account handler: update failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// DeleteUser removes a user permanently.
func (h *Account) DeleteUser(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	id, err := parseID(req.GetValue())
	if err != nil {
		return nil, handleError(err)
	}

	if err := h.accountService.DeleteUser(ctx, id); err != nil {
		h.logger.Info("Account handler: delete failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// SetActive activates or deactivates a user.
func (h *Account) SetActive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := checkFields(req, setActiveFields); err != nil {
		return nil, handleError(err)
	}

	id, err := idField(req)
	if err != nil {
		return nil, handleError(err)
	}
	active, ok, err := boolField(req, "is_active")
	if err != nil {
		return nil, handleError(err)
	}
	if !ok {
		return nil, handleError(model.NewInvalidInputError("is_active", "is_active must be set"))
	}

	user, err := h.accountService.SetActive(ctx, id, active)
	if err != nil {
		return nil, handleError(err)
	}

	return h.render(user)
}

func (h *Account) render(user model.User) (*structpb.Struct, error) {
	out, err := userToStruct(user)
	if err != nil {
		h.logger.Error("Account handler: failed to encode user",
			"user_id", user.ID,
			"error", err.Error())
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return out, nil
}
