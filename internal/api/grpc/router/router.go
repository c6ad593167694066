package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/seeseehome-users/internal/api/grpc/accountsv1"
	"github.com/dtroode/seeseehome-users/internal/api/grpc/handler"
	"github.com/dtroode/seeseehome-users/internal/api/grpc/middleware"
	"github.com/dtroode/seeseehome-users/internal/logger"
)

// Router wires account handlers and interceptors into a gRPC server.
type Router struct {
	accountService handler.AccountService
	adminToken     string
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(accountService handler.AccountService, adminToken string, logger *logger.Logger) *Router {
	return &Router{
		accountService: accountService,
		adminToken:     adminToken,
		logger:         logger,
	}
}

// requiresAuth exempts server reflection so tooling can list services without a token.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/grpc.reflection.")
}

// Register builds the gRPC server with logging and admin authentication.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.adminToken, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAccountRoutes(s)
	reflection.Register(s)

	return s
}

func (r *Router) registerAccountRoutes(server *grpc.Server) {
	accountHandler := handler.NewAccount(r.accountService, r.logger)
	accountsv1.RegisterAccountsServer(server, accountHandler)
}
