package collector

import (
	"context"

	"github.com/NJR201-job-market-analysis/collector-104/internal/api"
	"github.com/NJR201-job-market-analysis/collector-104/internal/config"
	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"
	"github.com/NJR201-job-market-analysis/collector-104/internal/events"
	"github.com/NJR201-job-market-analysis/collector-104/internal/storage"
	"github.com/NJR201-job-market-analysis/collector-104/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("collector-104/collector")

// Collector runs one fetch-then-persist cycle for the configured posting.
type Collector struct {
	client    api.PostingClient
	store     storage.Store
	publisher events.Publisher
	logger    *zap.Logger
	config    *config.Config
}

func New(client api.PostingClient, store storage.Store, publisher events.Publisher, logger *zap.Logger, config *config.Config) *Collector {
	return &Collector{
		client:    client,
		store:     store,
		publisher: publisher,
		logger:    logger,
		config:    config,
	}
}

// Run executes the single collection cycle. Expected failures (malformed
// url, transport errors, absent or closed postings, database errors) are
// logged and absorbed; Run only returns an error when the schema cannot be
// ensured, since nothing can be persisted without the table.
func (c *Collector) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Collector.Run")
	defer span.End()

	if err := c.store.EnsureSchema(ctx); err != nil {
		span.RecordError(err)
		c.logger.Error("failed to ensure schema", zap.Error(err))
		return err
	}

	c.logger.Info("fetching posting", zap.String("url", c.config.JobURL))

	posting, err := c.client.GetPosting(ctx, c.config.JobURL)
	if err != nil {
		span.RecordError(err)
		if errors.IsAbsent(err) {
			c.logger.Warn("no usable posting, nothing to persist", zap.Error(err))
		} else {
			c.logger.Error("fetch failed", zap.Error(err))
		}
		return nil
	}

	c.logger.Info("posting fetched, persisting",
		zap.String("job_id", posting.JobID),
		zap.Stringp("title", posting.Title))

	if err := c.store.Upsert(ctx, posting); err != nil {
		span.RecordError(err)
		c.logger.Error("persist failed", zap.String("job_id", posting.JobID), zap.Error(err))
		return nil
	}

	c.logger.Info("posting upserted", zap.String("job_id", posting.JobID))

	// Best effort: a lost event never fails the run.
	if err := c.publisher.PublishJobUpserted(ctx, posting); err != nil {
		c.logger.Warn("failed to publish upsert event",
			zap.String("job_id", posting.JobID),
			zap.Error(err))
	}

	return nil
}
