package main

import (
	"context"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"tradePulseBot/config"
	"tradePulseBot/internal/adapters/alertlog"
	"tradePulseBot/internal/adapters/binanceclient"
	"tradePulseBot/internal/adapters/logger"
	"tradePulseBot/internal/app"
	"tradePulseBot/internal/ports"
	"tradePulseBot/internal/trademonitor"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	var appLogger ports.Logger
	if cfg.LogFormat == "json" {
		appLogger = logger.NewZerologLogger(cfg.LogLevel)
	} else {
		appLogger = logger.NewStdLogger(cfg.LogLevel)
	}
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String(), "format": cfg.LogFormat})

	// 3. Initialize Market Data Client (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}
	appLogger.Info(context.Background(), "Binance client initialized")

	// 4. Initialize Trade Store and Monitor
	store := trademonitor.NewStore()
	monitor, err := trademonitor.New(trademonitor.Config{
		Store:        store,
		Provider:     binanceClient,
		Publisher:    alertlog.New(appLogger),
		Logger:       appLogger,
		PollInterval: cfg.MonitorPollInterval,
		TimeStop:     cfg.TimeStop,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize trade monitor")
		log.Fatalf("FATAL: Failed to initialize trade monitor: %v", err)
	}
	appLogger.Info(context.Background(), "Trade monitor initialized")

	// 5. Initialize Application Service
	analysisService, err := app.NewAnalysisService(
		cfg,
		appLogger,
		binanceClient, // Pass the concrete implementation, service expects the interface
		store,
		monitor,
	)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize analysis service")
		log.Fatalf("FATAL: Failed to initialize analysis service: %v", err)
	}
	appLogger.Info(context.Background(), "Analysis service initialized")

	// 6. Start the Service
	// Use context.Background() as the base context for the application run
	if err := analysisService.Start(context.Background()); err != nil {
		appLogger.Error(context.Background(), err, "Analysis service exited with error")
		log.Fatalf("FATAL: Analysis service exited with error: %v", err)
	}

	appLogger.Info(context.Background(), "Application finished gracefully.")
}
