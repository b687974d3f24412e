// Command householdctl inspects and maintains the household database from
// the shell: schema migrations, due chores and plants, and the shared ledger.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SchwenderOne/roscher4gpt5/internal/config"
	"github.com/SchwenderOne/roscher4gpt5/pkg/logging"
)

var (
	dbPath   string
	logLevel string
	cfg      config.Config
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "householdctl",
		Short:         "Administer the household tracker database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.LogLevel
			}
			logging.Setup(logLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: $DB_PATH or ./data/household.db)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(dueCmd())
	cmd.AddCommand(balancesCmd())
	cmd.AddCommand(settleCmd())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
