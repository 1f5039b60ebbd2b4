package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"consult-hub/internal/config"
	"consult-hub/internal/database"
	"consult-hub/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the consult-hub Oracle schema",
	Long: `Apply and inspect the embedded schema migrations.

Available subcommands:
  up   - Apply every pending migration
  list - Show each migration and whether it is applied`,
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE:  runUp,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show each migration and whether it is applied",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(upCmd, listCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openMigrator loads config, initializes logging and connects to Oracle.
func openMigrator() (*database.Migrator, *sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	migrations, err := database.LoadMigrations()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		return nil, nil, err
	}
	return database.NewMigrator(db, migrations), db, nil
}

func runUp(cmd *cobra.Command, _ []string) error {
	migrator, db, err := openMigrator()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	applied, err := migrator.Up(cmd.Context())
	if err != nil {
		logger.Get().Error("Migration run failed", zap.Uints("applied", applied), zap.Error(err))
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	}
	for _, v := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d\n", v)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	migrator, db, err := openMigrator()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	status, err := migrator.Status(cmd.Context())
	if err != nil {
		return err
	}
	for _, s := range status {
		state := "pending"
		switch {
		case s.Dirty:
			state = "DIRTY"
		case s.Applied:
			state = "applied"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-8s %s\n", s.Version, state, s.Name)
	}
	return nil
}
