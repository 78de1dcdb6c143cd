package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not set")
	}
	if ui == nil {
		return nil, fmt.Errorf("ui is not set")
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run attaches to the live collection feed and hands control to the UI.
// The feed keeps running for the whole UI session; a failed attach is not
// fatal, the failure slot already carries the message for the screen.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.services.SyncService.Start(ctx); err != nil {
		a.logger.Error().Err(err).Msg("collection feed attach failed, starting with empty list")
	}
	defer a.services.SyncService.Stop()

	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	a.logger.Info().Msg("client shut down")
	return nil
}
