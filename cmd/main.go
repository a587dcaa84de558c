package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/gophtodo-server/internal/api/http/context"
	"github.com/dtroode/gophtodo-server/internal/api/http/router"
	httpServer "github.com/dtroode/gophtodo-server/internal/api/http/server"
	"github.com/dtroode/gophtodo-server/internal/config"
	"github.com/dtroode/gophtodo-server/internal/hasher"
	"github.com/dtroode/gophtodo-server/internal/logger"
	"github.com/dtroode/gophtodo-server/internal/model"
	"github.com/dtroode/gophtodo-server/internal/repository/mongo"
	"github.com/dtroode/gophtodo-server/internal/repository/postgres"
	"github.com/dtroode/gophtodo-server/internal/server"
	"github.com/dtroode/gophtodo-server/internal/service"
	"github.com/dtroode/gophtodo-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type storage struct {
	accounts model.AccountStore
	tasks    model.TaskStore
	pinger   model.Pinger
	closer   io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := openStorage(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer db.closer.Close()

	passwordHasher := hasher.NewBcrypt(cfg.Bcrypt.Cost)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	tokenService := service.NewTokenService(tokenManager, logger)
	authService := service.NewAuth(db.accounts, passwordHasher, tokenService, logger)
	taskService := service.NewTask(db.tasks, db.accounts, logger)
	ctxMgr := httpctx.NewManager()

	gin.SetMode(gin.ReleaseMode)
	r := router.New(authService, taskService, tokenService, db.pinger, ctxMgr, cfg.HTTP.CORSAllowedOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStorage(ctx context.Context, cfg config.Database) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &storage{
			accounts: postgres.NewAccountRepository(conn),
			tasks:    postgres.NewTaskRepository(conn),
			pinger:   conn,
			closer:   conn,
		}, nil
	default:
		conn, err := mongo.NewConnection(ctx, cfg.MongoURI(), cfg.Name)
		if err != nil {
			return nil, err
		}
		return &storage{
			accounts: mongo.NewAccountRepository(conn),
			tasks:    mongo.NewTaskRepository(conn),
			pinger:   conn,
			closer:   conn,
		}, nil
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
