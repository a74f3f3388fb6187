package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"crest/internal/shared/constants"
	"crest/internal/shared/logger"
)

// Manager runs schema migrations through the strategy picked for the
// environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager selects a strategy by environment: development auto-migrates
// from the model structs, test and production replay versioned SQL scripts.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvTest, constants.EnvProduction:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	name := m.strategy.GetName()

	m.logger.Infow("starting database migration",
		"strategy", name,
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", name, "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", name, err)
	}

	m.logger.Infow("database migration completed", "strategy", name)
	return nil
}
