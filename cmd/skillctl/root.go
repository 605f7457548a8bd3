package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"skillmatch-backend/config"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/repository/memory"
	"skillmatch-backend/internal/repository/postgres"
	"skillmatch-backend/pkg/database"
	"skillmatch-backend/pkg/logger"

	"github.com/spf13/cobra"
)

const app = "skillctl"

// cliUserID owns the profile built from local flags.
const cliUserID = "skillctl"

type rootOptions struct {
	debug   bool
	catalog string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          app,
		Short:        "skillctl extracts resume skills and ranks or analyzes postings from the command line",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().StringVarP(&opts.catalog, "catalog", "c", "", "JSON catalog of postings; DATABASE_URL is used when unset")

	rootCmd.AddCommand(
		newExtractCmd(opts),
		newRankCmd(opts),
		newAnalyzeCmd(opts),
		newImportCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := "warn"
	if o.debug {
		level = "debug"
	}
	return logger.New(w, level)
}

// openStore returns an in-memory store seeded from --catalog, or the
// configured Postgres store. Callers only read from it.
func (o *rootOptions) openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storeHandle, error) {
	if o.catalog != "" {
		cat, err := loadCatalogFile(o.catalog)
		if err != nil {
			return nil, err
		}
		store := memory.NewDocumentStore()
		if _, err := cat.importInto(ctx, store); err != nil {
			return nil, err
		}
		return &storeHandle{DocumentStore: store, close: func() {}}, nil
	}

	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("no postings source: pass --catalog or set DATABASE_URL")
	}
	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	store := postgres.NewDocumentStore(pool, cfg.DocumentsTable)
	return &storeHandle{DocumentStore: store, close: pool.Close}, nil
}

type storeHandle struct {
	domain.DocumentStore
	close func()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
