package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/config"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/database"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
)

func main() {
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		panic(err)
	}
	log := logger.GetAppLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize server")
	}
	defer func() {
		_ = database.Disconnect(app.Client)
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info("Shutting down server")
		_ = app.Fiber.Shutdown()
	}()

	log.WithField("address", cfg.Address).Info("Starting server")

	listenCfg := fiber.ListenConfig{DisableStartupMessage: true}
	if cfg.EnableTLS {
		listenCfg.CertFile = cfg.TLSCertFile
		listenCfg.CertKeyFile = cfg.TLSKeyFile
	}
	if err := app.Fiber.Listen(cfg.Address, listenCfg); err != nil {
		log.WithError(err).Fatal("Server stopped unexpectedly")
	}
}
