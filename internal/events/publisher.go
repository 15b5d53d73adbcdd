package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/NJR201-job-market-analysis/collector-104/internal/config"
	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"
	"github.com/NJR201-job-market-analysis/collector-104/internal/models"
	"github.com/NJR201-job-market-analysis/collector-104/internal/telemetry"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("collector-104/events")

const (
	JobUpsertedSubject = "jobs.upserted"
)

// JobUpsertedEvent announces that a posting row was written.
type JobUpsertedEvent struct {
	EventID   string    `json:"event_id"`
	JobID     string    `json:"job_id"`
	Title     *string   `json:"title"`
	CompanyID *string   `json:"company_id"`
	FetchedAt time.Time `json:"fetched_at"`
}

type Publisher interface {
	PublishJobUpserted(ctx context.Context, posting *models.JobPosting) error
	Close()
}

type natsPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(logger *zap.Logger, config *config.Config) (Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(config.NATSConnTimeout),
		nats.Name("collector-104"),
		nats.RetryOnFailedConnect(true),
	}

	conn, err := nats.Connect(config.NATSURL, opts...)
	if err != nil {
		return nil, errors.Internal("connecting to NATS", err)
	}

	return &natsPublisher{
		conn:   conn,
		logger: logger,
	}, nil
}

func (p *natsPublisher) PublishJobUpserted(ctx context.Context, posting *models.JobPosting) error {
	_, span := tracer.Start(ctx, "PublishJobUpserted")
	defer span.End()

	event := NewJobUpsertedEvent(posting)

	data, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return errors.Internal("marshaling event", err)
	}

	span.SetAttributes(
		telemetry.String("nats.subject", JobUpsertedSubject),
		telemetry.Int("message.size", len(data)),
	)

	if err := p.conn.Publish(JobUpsertedSubject, data); err != nil {
		span.RecordError(err)
		p.logger.Error("failed to publish event",
			zap.String("job_id", posting.JobID),
			zap.Error(err))
		return errors.Internal("publishing to NATS", err)
	}

	p.logger.Debug("published event",
		zap.String("job_id", posting.JobID),
		zap.String("subject", JobUpsertedSubject))
	return nil
}

func (p *natsPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

func NewJobUpsertedEvent(posting *models.JobPosting) JobUpsertedEvent {
	return JobUpsertedEvent{
		EventID:   uuid.NewString(),
		JobID:     posting.JobID,
		Title:     posting.Title,
		CompanyID: posting.CompanyID,
		FetchedAt: time.Now().UTC(),
	}
}
