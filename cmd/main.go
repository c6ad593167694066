package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/seeseehome-users/internal/api/grpc/router"
	grpcServer "github.com/dtroode/seeseehome-users/internal/api/grpc/server"
	"github.com/dtroode/seeseehome-users/internal/config"
	"github.com/dtroode/seeseehome-users/internal/logger"
	"github.com/dtroode/seeseehome-users/internal/model"
	"github.com/dtroode/seeseehome-users/internal/password"
	"github.com/dtroode/seeseehome-users/internal/repository/memory"
	"github.com/dtroode/seeseehome-users/internal/repository/postgres"
	"github.com/dtroode/seeseehome-users/internal/server"
	"github.com/dtroode/seeseehome-users/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userStore, closeStore, err := openUserStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	hasher, err := password.NewHasher(password.Params{
		Time:   cfg.KDF.Time,
		MemKiB: cfg.KDF.MemKiB,
		Par:    cfg.KDF.Par,
	})
	if err != nil {
		logger.Fatal("invalid KDF configuration", "error", err)
	}
	accountService := service.NewAccount(userStore, hasher, logger)

	if cfg.GRPC.AdminToken == "devtoken" {
		logger.Warn("GRPC_ADMIN_TOKEN is the development default, set it before exposing the server")
	}

	r := router.New(accountService, cfg.GRPC.AdminToken, logger)
	grpcServer := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openUserStore returns the configured user store and a function releasing it.
func openUserStore(ctx context.Context, cfg config.Database) (model.UserStore, func() error, error) {
	switch cfg.Driver {
	case "postgres":
		conn, err := postgres.NewConection(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(conn.DB), conn.Close, nil
	case "memory":
		return memory.NewUserRepository(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
