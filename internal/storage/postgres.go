package storage

import (
	"context"
	"database/sql"

	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"
	"github.com/NJR201-job-market-analysis/collector-104/internal/models"
	"github.com/NJR201-job-market-analysis/collector-104/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("collector-104/storage")

// Store persists postings into the jobs_104 table.
type Store interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, posting *models.JobPosting) error
}

type postgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewStore(db *sql.DB, logger *zap.Logger) Store {
	return &postgresStore{
		db:     db,
		logger: logger,
	}
}

func (s *postgresStore) EnsureSchema(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "EnsureSchema")
	defer span.End()

	if err := NewMigrator(s.db, s.logger).Migrate(ctx); err != nil {
		span.RecordError(err)
		return errors.Persist("ensuring schema", err)
	}
	return nil
}

const upsertQuery = `
	INSERT INTO jobs_104 (
		job_id, update_date, title, description, salary, work_type,
		work_time, location, degree, department, working_experience,
		qualification_required, qualification_bonus, company_id,
		company_name, company_address, contact_person, contact_phone
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
	)
	ON CONFLICT (job_id) DO UPDATE SET
		update_date = EXCLUDED.update_date,
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		salary = EXCLUDED.salary,
		work_type = EXCLUDED.work_type,
		work_time = EXCLUDED.work_time,
		location = EXCLUDED.location,
		degree = EXCLUDED.degree,
		department = EXCLUDED.department,
		working_experience = EXCLUDED.working_experience,
		qualification_required = EXCLUDED.qualification_required,
		qualification_bonus = EXCLUDED.qualification_bonus,
		company_id = EXCLUDED.company_id,
		company_name = EXCLUDED.company_name,
		company_address = EXCLUDED.company_address,
		contact_person = EXCLUDED.contact_person,
		contact_phone = EXCLUDED.contact_phone
`

// Upsert writes the posting inside one transaction. On conflict every
// non-key column is overwritten with the new value, nils included
// (last-write-wins, no coalescing).
func (s *postgresStore) Upsert(ctx context.Context, posting *models.JobPosting) error {
	ctx, span := tracer.Start(ctx, "Upsert")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", posting.JobID))

	if posting.JobID == "" {
		return errors.Persist("posting has no job id", nil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return errors.Persist("beginning transaction", err)
	}

	if _, err := tx.ExecContext(ctx, upsertQuery,
		posting.JobID,
		posting.UpdateDate,
		posting.Title,
		posting.Description,
		posting.Salary,
		posting.WorkType,
		posting.WorkTime,
		posting.Location,
		posting.Degree,
		posting.Department,
		posting.WorkingExperience,
		posting.QualificationRequired,
		posting.QualificationBonus,
		posting.CompanyID,
		posting.CompanyName,
		posting.CompanyAddress,
		posting.ContactPerson,
		posting.ContactPhone,
	); err != nil {
		span.RecordError(err)
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("rollback failed", zap.Error(rbErr))
		}
		return errors.Persist("upserting posting", err)
	}

	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		return errors.Persist("committing transaction", err)
	}

	s.logger.Debug("upserted posting", zap.String("job_id", posting.JobID))
	return nil
}
