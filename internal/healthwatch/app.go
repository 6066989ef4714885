// Package healthwatch initializes and runs the health-check service: a
// prober issuing synthetic calls against the authentication server and a
// reporter rendering the results for an operator.
package healthwatch

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkravtsov/authwatch/internal/healthwatch/client"
	"github.com/dkravtsov/authwatch/internal/healthwatch/config"
	"github.com/dkravtsov/authwatch/internal/healthwatch/probe"
	"github.com/dkravtsov/authwatch/internal/healthwatch/report"
	"github.com/dkravtsov/authwatch/internal/logging"
	"golang.org/x/term"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) (*App, error) {

	// Logs go to stderr; stdout is reserved for the probe report.
	slogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slogger)

	return &App{config: c, logger: logger}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting health check", "server", app.config.ServerEndpointAddr)

	app.initSignalHandler(cancelFunc)

	c, err := client.NewAuthClient(app.config.ServerEndpointAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	reporter := report.NewReporter(app.config.ReportCapacity, report.WithLiveOutput(os.Stdout, tty))

	prober := probe.NewProber(c, reporter, app.logger, app.config.ProbeInterval, app.config.ProbeTimeout)
	prober.Run(ctx)

	// Final table after the rolling status line.
	if tty {
		os.Stdout.WriteString("\n")
	}
	return reporter.Render(os.Stdout)
}
