package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"crest/internal/infrastructure/config"
	"crest/internal/infrastructure/database"
	"crest/internal/infrastructure/migration"
	"crest/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationEnv(func(strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("running up migrations", "environment", env)

				if err := strategy.Migrate(database.Get()); err != nil {
					log.Errorw("migration failed", "error", err)
					return fmt.Errorf("migration failed: %w", err)
				}

				log.Infow("migrations completed successfully")
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationEnv(func(strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("running down migrations", "environment", env, "steps", steps)

				if err := strategy.MigrateDown(database.Get(), steps); err != nil {
					log.Errorw("down migration failed", "error", err)
					return fmt.Errorf("down migration failed: %w", err)
				}

				log.Infow("down migration completed successfully")
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationEnv(func(strategy *migration.GooseStrategy, log logger.Interface) error {
				version, err := strategy.GetVersion(database.Get())
				if err != nil {
					log.Errorw("failed to get migration version", "error", err)
					return fmt.Errorf("failed to get migration version: %w", err)
				}

				fmt.Printf("\nMigration Status:\n")
				fmt.Printf("  Environment:     %s\n", env)
				fmt.Printf("  Current Version: %d\n", version)

				if err := strategy.Status(database.Get()); err != nil {
					log.Errorw("failed to get detailed status", "error", err)
					return fmt.Errorf("failed to get detailed status: %w", err)
				}
				return nil
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationEnv(func(strategy *migration.GooseStrategy, log logger.Interface) error {
				log.Infow("creating new migration", "name", name)

				if err := strategy.Create(name); err != nil {
					log.Errorw("failed to create migration", "error", err)
					return fmt.Errorf("failed to create migration: %w", err)
				}

				log.Infow("migration created successfully", "name", name)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

// withMigrationEnv loads configuration for the selected environment, opens
// the database, hands the goose strategy to fn, and closes the connection
// when fn returns.
func withMigrationEnv(fn func(strategy *migration.GooseStrategy, log logger.Interface) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	strategy, ok := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("goose strategy unavailable")
	}

	return fn(strategy, logger.NewLogger())
}
