package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Migration struct {
	Version     int
	Description string
	Up          string
	Down        string
}

// Migrations holds the schema history for the collector, applied in order
// by the Migrator at startup.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "Create jobs_104 table",
		Up: `
			CREATE TABLE IF NOT EXISTS jobs_104 (
				job_id                 VARCHAR(50) PRIMARY KEY,
				update_date            VARCHAR(50),
				title                  VARCHAR(255),
				description            TEXT,
				salary                 VARCHAR(255),
				work_type              VARCHAR(50),
				work_time              VARCHAR(100),
				location               VARCHAR(100),
				degree                 VARCHAR(100),
				department             VARCHAR(255),
				working_experience     VARCHAR(100),
				qualification_required TEXT,
				qualification_bonus    TEXT,
				company_id             VARCHAR(50),
				company_name           VARCHAR(255),
				company_address        VARCHAR(255),
				contact_person         VARCHAR(100),
				contact_phone          VARCHAR(255)
			)
		`,
		Down: `DROP TABLE IF EXISTS jobs_104`,
	},
}

type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) CreateMigrationsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	return nil
}

func (m *Migrator) GetAppliedMigrations(ctx context.Context) (map[int]time.Time, error) {
	query := "SELECT version, applied_at FROM migrations ORDER BY version"

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var appliedAt time.Time
		if err := rows.Scan(&version, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[version] = appliedAt
	}

	return applied, rows.Err()
}

func (m *Migrator) ApplyMigration(ctx context.Context, migration Migration) error {
	if _, err := m.db.ExecContext(ctx, migration.Up); err != nil {
		return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
	}

	if _, err := m.db.ExecContext(ctx, `
		INSERT INTO migrations (version, description, applied_at)
		VALUES ($1, $2, NOW())
	`, migration.Version, migration.Description); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
	}

	return nil
}

func (m *Migrator) RollbackMigration(ctx context.Context, migration Migration) error {
	if _, err := m.db.ExecContext(ctx, migration.Down); err != nil {
		return fmt.Errorf("failed to rollback migration %d: %w", migration.Version, err)
	}

	if _, err := m.db.ExecContext(ctx, "DELETE FROM migrations WHERE version = $1", migration.Version); err != nil {
		return fmt.Errorf("failed to remove migration record %d: %w", migration.Version, err)
	}

	return nil
}

// Migrate applies every pending migration in version order.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := m.CreateMigrationsTable(ctx); err != nil {
		return err
	}

	applied, err := m.GetAppliedMigrations(ctx)
	if err != nil {
		return err
	}

	for _, migration := range Migrations {
		if _, ok := applied[migration.Version]; ok {
			m.logger.Debug("migration already applied",
				zap.Int("version", migration.Version),
				zap.String("description", migration.Description))
			continue
		}

		m.logger.Info("applying migration",
			zap.Int("version", migration.Version),
			zap.String("description", migration.Description))

		if err := m.ApplyMigration(ctx, migration); err != nil {
			return err
		}
	}

	return nil
}
