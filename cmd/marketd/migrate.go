package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/freelancer-backend/internal/config"
	"github.com/baharkarakas/freelancer-backend/internal/db"
	"github.com/baharkarakas/freelancer-backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.New(cfg.Env)

		pool, err := db.NewPool(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		defer pool.Close()

		if err := db.RunMigrations(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.Info("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
