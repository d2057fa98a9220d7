package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"community-board-api/internal/config"
	"community-board-api/internal/database"
)

const (
	configFlag  = "config"
	timeoutFlag = "timeout"
)

type rootOptions struct {
	configPath string
	timeout    time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the community board database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, configFlag, "configs/config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, timeoutFlag, time.Minute, "Maximum time a migration command may take")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, opts, func(ctx context.Context, m *database.Migrator) error {
					return m.Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, opts, func(ctx context.Context, m *database.Migrator) error {
					return m.Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which migrations have been applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, opts, func(ctx context.Context, m *database.Migrator) error {
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					for _, s := range states {
						applied := "pending"
						if s.Applied {
							applied = "applied"
						}
						fmt.Fprintf(out, "%05d  %-8s %s\n", s.Version, applied, s.Path)
					}
					return nil
				})
			},
		},
	)

	return rootCmd
}

func withMigrator(cmd *cobra.Command, opts *rootOptions, fn func(context.Context, *database.Migrator) error) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	m, err := database.NewMigrator(db, cfg.Database.Driver, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	return fn(ctx, m)
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	return database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
}
