package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"go.uber.org/zap"

	"FlightDelays/src/config"
	"FlightDelays/src/datasource/file"
	"FlightDelays/src/processor"
	"FlightDelays/src/storage"
)

func main() {
	// .env may point FLIGHTDELAYS_CONFIG somewhere else; absence is fine.
	_ = godotenv.Load()

	configPath := flag.String("config", defaultConfigPath(), "path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := storage.NewLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := runReports(cfg, logger); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	switch {
	case cfg.Watch:
		watchDatasets(cfg, logger)
	case time.Duration(cfg.Schedule) > 0:
		scheduleReports(cfg, logger)
	}
}

func defaultConfigPath() string {
	if p := os.Getenv("FLIGHTDELAYS_CONFIG"); p != "" {
		return p
	}
	return "config/config.json"
}

// runReports executes the whole batch once: load the three tables, compute
// the reports, print them and optionally export the workbook.
func runReports(cfg *config.Config, logger *zap.Logger) error {
	start := time.Now()
	opts := processor.DefaultOptions()

	flights, err := file.ReadTable(cfg.Data.Flights, cfg.Data.Charset)
	if err != nil {
		return err
	}
	airports, err := file.ReadTable(cfg.Data.Airports, cfg.Data.Charset)
	if err != nil {
		return err
	}
	airlines, err := file.ReadTable(cfg.Data.Airlines, cfg.Data.Charset)
	if err != nil {
		return err
	}
	logger.Info("datasets loaded",
		zap.Int("flights", flights.Nrow()),
		zap.Int("airports", airports.Nrow()),
		zap.Int("airlines", airlines.Nrow()))

	perAirport, err := processor.FlightsPerAirport(flights, airports, opts)
	if err != nil {
		return fmt.Errorf("flights per airport: %w", err)
	}
	topAirlines, err := processor.TopAirlines(flights, airlines, opts)
	if err != nil {
		return fmt.Errorf("top airlines: %w", err)
	}
	monthly, err := processor.MonthlyDelayRate(flights, opts)
	if err != nil {
		return fmt.Errorf("monthly delay rate: %w", err)
	}

	fmt.Println("Flights per airport:")
	fmt.Println(perAirport)
	fmt.Println("Top airlines:")
	fmt.Println(topAirlines)
	fmt.Println("Monthly delay rate:")
	fmt.Println(monthly)

	if cfg.Output.XLSX != "" {
		reports := []storage.Report{
			{Name: "FlightsPerAirport", Data: perAirport},
			{Name: "TopAirlines", Data: topAirlines},
			{Name: "MonthlyDelayRate", Data: monthly},
		}
		if err := storage.WriteReports(cfg.Output.XLSX, reports); err != nil {
			return fmt.Errorf("export reports: %w", err)
		}
		logger.Info("reports exported", zap.String("path", cfg.Output.XLSX))
	}

	logger.Info("analysis complete", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// watchDatasets blocks, re-running the batch whenever one of the dataset
// files is rewritten on disk.
func watchDatasets(cfg *config.Config, logger *zap.Logger) {
	monitor, err := file.NewMonitor([]string{cfg.Data.Flights, cfg.Data.Airports, cfg.Data.Airlines})
	if err != nil {
		logger.Fatal("watcher init", zap.Error(err))
	}
	defer monitor.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel, logger)

	logger.Info("watching datasets for changes")
	err = monitor.Watch(ctx, func(path string) {
		logger.Info("dataset changed", zap.String("path", path))
		if err := runReports(cfg, logger); err != nil {
			logger.Error("re-run failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("watcher stopped", zap.Error(err))
	}
}

// scheduleReports blocks, re-running the batch on a fixed interval.
func scheduleReports(cfg *config.Config, logger *zap.Logger) {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", time.Duration(cfg.Schedule))
	err := c.AddFunc(spec, func() {
		if err := runReports(cfg, logger); err != nil {
			logger.Error("scheduled run failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Fatal("schedule init", zap.Error(err))
	}
	c.Start()
	defer c.Stop()
	logger.Info("scheduled re-runs enabled", zap.String("interval", time.Duration(cfg.Schedule).String()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel, logger)
	<-ctx.Done()
}

func setupSignalHandler(cancel context.CancelFunc, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()
}
