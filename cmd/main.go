package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"toposcope/internal/configuration"
	"toposcope/internal/configuration/properties"
	"toposcope/internal/logging"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	configDir := os.Getenv("TOPOSCOPE_CONFIG_DIR")
	if configDir == "" {
		configDir = "config"
	}

	cfg, err := configuration.Load(configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "Error", err)
		return
	}

	logging.Init(cfg.Application.LogLevel)
	slog.Info("Starting discovery node...", "id", cfg.Node.ID, "cluster-view", cfg.Node.ClusterViewID)

	services, err := NewServices(properties.NewProvider(cfg))
	if err != nil {
		slog.Error("Failed to wire services", "Error", err)
		return
	}

	if services.Journal != nil {
		replayed := 0
		err := services.Journal.Replay(func(record *discoverypb.ChangeRecord) error {
			replayed++
			return nil
		})
		if err != nil {
			slog.Error("Failed to replay change journal", "Error", err)
			return
		}
		slog.Info("Change journal opened", "past-changes", replayed)
	}

	if _, err := services.Transport.StartServer(); err != nil {
		slog.Error("Failed to start transport server", "Error", err)
		return
	}

	if services.Metrics != nil {
		services.Metrics.Start()
	}

	services.Discovery.Start()
	services.Announcer.Start()

	slog.Info("Discovery node ready")
	<-ctx.Done()

	slog.Info("Shutting down discovery node...")
	services.Announcer.Stop()
	services.Discovery.Stop()
	services.Transport.Stop()
	if services.Metrics != nil {
		services.Metrics.Stop()
	}
	if services.Journal != nil {
		if err := services.Journal.Close(); err != nil {
			slog.Error("Failed to close change journal", "Error", err)
		}
	}
}
