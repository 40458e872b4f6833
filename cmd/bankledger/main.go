package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/banco-ledger/internal/config"
	"github.com/banco-ledger/internal/console"
	"github.com/banco-ledger/internal/directory"
	"github.com/banco-ledger/internal/logger"
	"github.com/banco-ledger/internal/service"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("bankledger")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Initialize the in-memory ledger
	dir := directory.New()
	transfers := service.NewTransferService(log)
	interest := service.NewInterestService(cfg.Interest.SavingsRate, cfg.Interest.CheckingRate, log)

	batch, err := service.NewBatchAccrualService(interest, cfg.WorkerPool.Size, log)
	if err != nil {
		log.Error("Failed to initialize accrual worker pool", "error", err)
		os.Exit(1)
	}

	ui := console.New(os.Stdin, os.Stdout, dir, transfers, interest, batch, log)
	log.Info("console initialized", "app", cfg.Application.Name, "env", cfg.Application.Env)

	// Run the menu loop in a goroutine so a signal can interrupt it
	errChan := make(chan error, 1)
	go func() {
		errChan <- ui.Run(appCtx)
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var runErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case runErr = <-errChan:
		if runErr != nil {
			log.Error("Console error occurred", "error", runErr)
		}
	}

	cancelAppCtx()

	// Graceful shutdown sequence
	batch.Shutdown()

	if runErr != nil {
		log.Error("Shutdown completed with errors", "error", runErr)
		os.Exit(1)
	}
	log.Info("Shutdown completed successfully")
}
