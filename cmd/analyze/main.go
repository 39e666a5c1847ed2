package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"tradePulseBot/config"
	"tradePulseBot/internal/adapters/alertlog"
	"tradePulseBot/internal/adapters/binanceclient"
	"tradePulseBot/internal/adapters/logger"
	"tradePulseBot/internal/app"
	"tradePulseBot/internal/domain"
	"tradePulseBot/internal/trademonitor"
)

func main() {
	symbolFlag := flag.String("symbol", "", "symbol to analyze (defaults to SYMBOL from config)")
	styleFlag := flag.String("style", "", "trading style: scalping, daytrading or swing (defaults to TRADING_STYLE)")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)

	// 3. Initialize Market Data Client (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	// 4. Initialize Trade Store, Monitor and Service
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
		log.Fatalf("FATAL: Failed to initialize trade monitor: %v", err)
	}

	analysisService, err := app.NewAnalysisService(cfg, appLogger, binanceClient, store, monitor)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize analysis service: %v", err)
	}

	// 5. Resolve symbol and style, then run one analysis pass
	symbol := *symbolFlag
	if symbol == "" {
		symbol = cfg.Symbol
	}
	style := cfg.DefaultStyle
	if *styleFlag != "" {
		style, err = domain.ParseStyle(*styleFlag)
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
	}

	result, err := analysisService.Analyze(context.Background(), symbol, style)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	out, err := json.MarshalIndent(result.Report(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
	fmt.Println(string(out))
}
