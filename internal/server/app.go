// Package server initializes and runs the authentication service. It wires
// the in-memory stores into the auth service, handles graceful shutdown,
// and starts the gRPC server.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dkravtsov/authwatch/internal/logging"
	"github.com/dkravtsov/authwatch/internal/server/accounts"
	"github.com/dkravtsov/authwatch/internal/server/config"
	"github.com/dkravtsov/authwatch/internal/server/services"
	"github.com/dkravtsov/authwatch/internal/server/sessions"

	gs "github.com/dkravtsov/authwatch/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *services.AuthService
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	// Stores are owned here and injected; no package-level singletons.
	as := services.NewAuthService(accounts.NewMemoryStore(), sessions.NewMemoryRegistry())

	return &App{config: c, logger: logger, authService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
