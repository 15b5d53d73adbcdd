package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/NJR201-job-market-analysis/collector-104/internal/events"
	"github.com/NJR201-job-market-analysis/collector-104/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobUpsertedEvent(t *testing.T) {
	title := "資深後端工程師"
	companyID := "13000000009"
	posting := &models.JobPosting{
		JobID:     "8863t",
		Title:     &title,
		CompanyID: &companyID,
	}

	event := events.NewJobUpsertedEvent(posting)

	assert.Equal(t, "8863t", event.JobID)
	require.NotNil(t, event.Title)
	assert.Equal(t, title, *event.Title)
	require.NotNil(t, event.CompanyID)
	assert.Equal(t, companyID, *event.CompanyID)
	assert.WithinDuration(t, time.Now().UTC(), event.FetchedAt, time.Minute)

	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err, "event id must be a valid uuid")
}

func TestJobUpsertedEvent_NilFieldsSerialize(t *testing.T) {
	event := events.NewJobUpsertedEvent(&models.JobPosting{JobID: "8863t"})

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "8863t", decoded["job_id"])
	assert.Nil(t, decoded["title"])
}
