package main

import (
	"github.com/nikolayk812/swiftcart/internal/migrations"
	"github.com/spf13/cobra"
)

func migrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			if err := migrations.Up(cfg.DatabaseURL); err != nil {
				return err
			}

			logger.Info("migrated up")
			return nil
		},
	}
}

func migrateDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-down",
		Short: "roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			if err := migrations.Down(cfg.DatabaseURL); err != nil {
				return err
			}

			logger.Info("migrated down")
			return nil
		},
	}
}
