package main

import (
	"errors"
	"fmt"

	"skillmatch-backend/config"
	"skillmatch-backend/internal/repository/postgres"
	"skillmatch-backend/pkg/database"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <catalog.json>",
		Short: "Write a postings catalog into the Postgres document store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.DBUrl == "" {
				return errors.New("DATABASE_URL is required for import")
			}
			ctx := cmd.Context()
			log := opts.logger(cmd.ErrOrStderr())

			cat, err := loadCatalogFile(args[0])
			if err != nil {
				return err
			}

			pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, log)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			store := postgres.NewDocumentStore(pool, cfg.DocumentsTable)
			if err := store.EnsureSchema(ctx); err != nil {
				return err
			}

			n, err := cat.importInto(ctx, store)
			if err != nil {
				return err
			}
			log.Info("Catalog imported", "documents", n)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d postings\n", n)
			return nil
		},
	}
}
