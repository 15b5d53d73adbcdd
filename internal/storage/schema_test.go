package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMigrate_AppliesPendingMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, applied_at FROM migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "applied_at"}))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS jobs_104")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO migrations")).
		WithArgs(1, "Create jobs_104 table").
		WillReturnResult(sqlmock.NewResult(0, 1))

	migrator := NewMigrator(db, zaptest.NewLogger(t))
	require.NoError(t, migrator.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_SkipsAppliedMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, applied_at FROM migrations")).
		WillReturnRows(sqlmock.NewRows([]string{"version", "applied_at"}).
			AddRow(1, time.Now()))

	migrator := NewMigrator(db, zaptest.NewLogger(t))
	require.NoError(t, migrator.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_DeclaresAllColumns(t *testing.T) {
	columns := []string{
		"job_id", "update_date", "title", "description", "salary",
		"work_type", "work_time", "location", "degree", "department",
		"working_experience", "qualification_required",
		"qualification_bonus", "company_id", "company_name",
		"company_address", "contact_person", "contact_phone",
	}

	up := Migrations[0].Up
	for _, col := range columns {
		assert.Contains(t, up, col)
	}
	assert.Contains(t, up, "job_id                 VARCHAR(50) PRIMARY KEY")
}
