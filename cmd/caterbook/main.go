package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"caterbook/internal/config"
	"caterbook/internal/export"
	"caterbook/internal/kv"
	"caterbook/internal/ledger"
	"caterbook/internal/logging"
	"caterbook/internal/metrics"
	"caterbook/internal/store"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	var (
		khataActor = flag.String("khata", "", "export the khata of this customer or provider id")
		khataRole  = flag.String("role", "customer", "actor role for -khata: customer or provider")
		report     = flag.Bool("report", false, "export the platform report")
	)
	flag.Parse()

	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	metrics.Register()

	backend, err := initBackend(cfg, &logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx := context.Background()

	st := store.New(backend, &logger)
	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	logger.Info().
		Int("providers", len(st.Providers())).
		Int("bookings", len(st.Bookings())).
		Int("menu_items", len(st.MenuItems())).
		Int("packages", len(st.Packages())).
		Msg("Store loaded")

	exporter := export.New(cfg.Exports.Path, &logger)

	if *khataActor != "" {
		var khata ledger.Khata
		if *khataRole == "provider" {
			khata = ledger.ProviderKhata(st.Bookings(), *khataActor)
		} else {
			khata = ledger.CustomerKhata(st.Bookings(), *khataActor)
		}

		path, err := exporter.ExportKhata(khata, *khataActor)
		if err != nil {
			return fmt.Errorf("export khata: %w", err)
		}
		fmt.Printf("khata written to %s\n", path)
	}

	if *report {
		summary := ledger.Report(st.Bookings(), st.Providers(), time.Now(), cfg.Platform.CommissionRate, cfg.Platform.OperatingExpense)

		path, err := exporter.ExportReport(summary)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		fmt.Printf("platform report written to %s\n", path)
		fmt.Printf("revenue %d, commission %.2f, net profit %.2f, bookings this month %d\n",
			summary.TotalRevenue, summary.Commission, summary.NetProfit, summary.MonthlyBookings)
	}

	return nil
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "main").Logger()

	return cfg, logger, closer, nil
}

// initBackend opens the sqlite store, or a redis primary with the
// sqlite store as fallback when redis is enabled in config.
func initBackend(cfg *config.Config, logger *zerolog.Logger) (kv.Store, error) {
	sqlite, err := kv.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	if !cfg.Redis.Enabled {
		return sqlite, nil
	}

	client := kv.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err := kv.Ping(context.Background(), client); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, using sqlite only")
		_ = client.Close()
		return sqlite, nil
	}

	logger.Info().Str("address", cfg.Redis.Address).Msg("Redis mirror enabled")
	return kv.NewFailoverStore(kv.NewRedisStore(client), sqlite, logger), nil
}
