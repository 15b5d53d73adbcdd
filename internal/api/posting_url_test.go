package api_test

import (
	"testing"

	"github.com/NJR201-job-market-analysis/collector-104/internal/api"
	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"plain", "https://www.104.com.tw/job/8863t", "8863t"},
		{"with query", "https://www.104.com.tw/job/8863t?jobsource=jolist_a_relevance", "8863t"},
		{"multiple query params", "https://www.104.com.tw/job/7abcd?a=1&b=2", "7abcd"},
		{"bare id", "8863t", "8863t"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := api.JobIDFromURL(c.url)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestJobIDFromURL_Malformed(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"trailing slash", "https://www.104.com.tw/job/"},
		{"empty", ""},
		{"query only segment", "https://www.104.com.tw/job/?jobsource=x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := api.JobIDFromURL(c.url)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeMalformedURL))
		})
	}
}
