package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/NJR201-job-market-analysis/collector-104/internal/cache"
	"github.com/NJR201-job-market-analysis/collector-104/internal/config"
	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"
	"github.com/NJR201-job-market-analysis/collector-104/internal/models"
	"github.com/NJR201-job-market-analysis/collector-104/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("collector-104/api")

// PostingClient fetches one posting from the 104 content API.
type PostingClient interface {
	GetPosting(ctx context.Context, postingURL string) (*models.JobPosting, error)
}

type postingClient struct {
	client *http.Client
	logger *zap.Logger
	config *config.Config
	cache  cache.Cache
}

func NewPostingClient(logger *zap.Logger, config *config.Config, cache cache.Cache) PostingClient {
	return &postingClient{
		client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
		logger: logger,
		config: config,
		cache:  cache,
	}
}

func (c *postingClient) GetPosting(ctx context.Context, postingURL string) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "GetPosting")
	defer span.End()

	jobID, err := JobIDFromURL(postingURL)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("cannot derive job id from url", zap.String("url", postingURL), zap.Error(err))
		return nil, err
	}
	span.SetAttributes(telemetry.String("job.id", jobID))

	cacheKey := fmt.Sprintf("104:posting:%s", jobID)
	var cachedPosting models.JobPosting

	err = c.cache.Get(ctx, cacheKey, &cachedPosting)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		c.logger.Debug("cache hit", zap.String("job_id", jobID))
		return &cachedPosting, nil
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		span.RecordError(err)
		c.logger.Warn("cache error", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	url := fmt.Sprintf("%s/job/ajax/content/%s", c.config.SourceBaseURL, jobID)
	c.logger.Debug("cache miss, fetching posting", zap.String("job_id", jobID), zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("creating request", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Referer", c.config.SourceReferer)

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("failed to execute request", zap.String("job_id", jobID), zap.Error(err))
		return nil, errors.Transport("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	span.SetAttributes(
		telemetry.Int("http.status_code", resp.StatusCode),
		telemetry.String("http.method", http.MethodGet),
	)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status code",
			zap.String("job_id", jobID),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.Transport(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	var envelope postingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		span.RecordError(err)
		c.logger.Error("failed to decode response", zap.String("job_id", jobID), zap.Error(err))
		return nil, errors.Transport("decoding response", err)
	}

	if envelope.Data.empty() || envelope.Data.closed() {
		c.logger.Warn("posting does not exist or is closed", zap.String("job_id", jobID))
		return nil, errors.Absent(fmt.Sprintf("posting %s does not exist or is closed", jobID), nil)
	}

	posting := envelope.Data.toJobPosting(jobID)

	c.logger.Debug("successfully fetched posting",
		zap.String("job_id", jobID),
		zap.Stringp("title", posting.Title))

	if err := c.cache.Set(ctx, cacheKey, posting, c.config.CacheTTL); err != nil {
		c.logger.Warn("failed to cache posting", zap.String("job_id", jobID), zap.Error(err))
	}

	return posting, nil
}
