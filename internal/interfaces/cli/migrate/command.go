package migrate

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/merojugx/mero/internal/infrastructure/database"
	"github.com/merojugx/mero/internal/infrastructure/migration"
	"github.com/merojugx/mero/internal/interfaces/cli/bootstrap"
	"github.com/merojugx/mero/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: withStrategy(func(ctx context.Context, s *migration.GooseStrategy, out io.Writer, log logger.Interface) error {
			log.Infow("running up migrations", "environment", env)
			if err := s.Migrate(ctx, database.Get()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Infow("migrations completed successfully")
			return nil
		}),
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: withStrategy(func(ctx context.Context, s *migration.GooseStrategy, out io.Writer, log logger.Interface) error {
			log.Infow("running down migrations", "environment", env, "steps", steps)
			if err := s.MigrateDown(ctx, database.Get(), steps); err != nil {
				return fmt.Errorf("down migration failed: %w", err)
			}
			log.Infow("down migration completed successfully")
			return nil
		}),
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: withStrategy(func(ctx context.Context, s *migration.GooseStrategy, out io.Writer, log logger.Interface) error {
			rows, err := s.Status(ctx, database.Get())
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}
			return PrintStatus(out, rows)
		}),
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: withStrategy(func(ctx context.Context, s *migration.GooseStrategy, out io.Writer, log logger.Interface) error {
			version, err := s.GetVersion(ctx, database.Get())
			if err != nil {
				return fmt.Errorf("failed to get migration version: %w", err)
			}
			_, err = fmt.Fprintf(out, "%d\n", version)
			return err
		}),
	}
}

type strategyFunc func(ctx context.Context, s *migration.GooseStrategy, out io.Writer, log logger.Interface) error

// withStrategy opens the database and a lock-aware migration runner around fn.
func withStrategy(fn strategyFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap.OpenDatabase(env, configPath)
		if err != nil {
			return err
		}
		defer database.Close()

		redisClient := bootstrap.NewRedis(cfg)
		if redisClient != nil {
			defer redisClient.Close()
		}

		strategy, err := bootstrap.MigrationStrategy(cfg, redisClient, log)
		if err != nil {
			return err
		}
		return fn(cmd.Context(), strategy, cmd.OutOrStdout(), log)
	}
}

// PrintStatus renders migration rows as an aligned table.
func PrintStatus(out io.Writer, rows []migration.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tNAME\tSTATUS\tAPPLIED AT")
	for _, r := range rows {
		status, appliedAt := "pending", "-"
		if r.Applied {
			status = "applied"
			appliedAt = r.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Version, r.Name, status, appliedAt)
	}
	return tw.Flush()
}
