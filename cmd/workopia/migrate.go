package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/workopia/internal/config"
	internaldb "github.com/dmitrymomot/workopia/internal/db"
	"github.com/dmitrymomot/workopia/pkg/db"
	"github.com/dmitrymomot/workopia/pkg/logger"
)

func newMigrateCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log)

			pool, err := db.Connect(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(cmd.Context(), pool, internaldb.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
