package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"tradePulseBot/config"
	"tradePulseBot/internal/adapters/binanceclient"
	"tradePulseBot/internal/adapters/logger"
	"tradePulseBot/internal/utils"
)

func main() {
	symbolFlag := flag.String("symbol", "", "symbol to export (defaults to SYMBOL from config)")
	intervalFlag := flag.String("interval", "5min", "bar interval: 1min, 5min, 15min or daily")
	lookbackFlag := flag.Int("days", 30, "lookback window in days")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

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

	symbol := *symbolFlag
	if symbol == "" {
		symbol = cfg.Symbol
	}

	fmt.Printf("Fetching %s %s bars over %d days...\n", symbol, *intervalFlag, *lookbackFlag)
	bars, err := binanceClient.GetSeries(context.Background(), symbol, *intervalFlag, *lookbackFlag)
	if err != nil {
		appLogger.Error(context.Background(), err, "Error fetching bars")
		log.Fatalf("Error fetching bars: %v", err)
	}
	appLogger.Info(context.Background(), "Fetched bars", map[string]interface{}{"count": len(bars)})

	filename := fmt.Sprintf("data/%s_%s_%s.csv", symbol, *intervalFlag, time.Now().Format("20060102"))
	if err := utils.WriteBarsToCSV(bars, filename); err != nil {
		appLogger.Error(context.Background(), err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(context.Background(), "Saved to", map[string]interface{}{"filename": filename})
}
