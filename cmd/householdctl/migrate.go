package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SchwenderOne/roscher4gpt5/internal/storage/sqlite"
)

func migrateCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Create or update the database schema to the latest version.

The server migrates on startup as well; this command is for preparing a
database ahead of time or checking which version it is at.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !status {
				slog.Info("Running database migrations", "database", cfg.DBPath)
				if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
					return fmt.Errorf("failed to create database directory: %w", err)
				}
				if err := sqlite.RunMigrations(cfg.DBPath); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			version, dirty, err := sqlite.SchemaVersion(cfg.DBPath)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s schema version %d", cfg.DBPath, version)
			if dirty {
				line += " " + alertStyle.Render("(dirty)")
			}
			fmt.Fprintln(out, line)
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the current schema version without migrating")
	return cmd
}
