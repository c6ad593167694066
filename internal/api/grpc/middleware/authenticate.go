package middleware

import (
	"context"
	"crypto/subtle"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/seeseehome-users/internal/logger"
)

// Authenticate checks that callers present the administrative bearer token.
type Authenticate struct {
	adminToken []byte
	logger     *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(adminToken string, logger *logger.Logger) *Authenticate {
	return &Authenticate{adminToken: []byte(adminToken), logger: logger}
}

// AuthFunc reads the bearer token from the authorization metadata and compares it with the admin token.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil {
		return nil, err
	}

	if len(m.adminToken) == 0 || subtle.ConstantTimeCompare([]byte(token), m.adminToken) != 1 {
		m.logger.Warn("Authenticate: rejected request with invalid token")
		return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
	}

	return ctx, nil
}
