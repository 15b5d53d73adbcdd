package api

import (
	"fmt"
	"strings"

	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"
)

// JobIDFromURL derives the posting identifier from a 104 posting URL: the
// final path segment with any query suffix stripped, e.g.
// "https://www.104.com.tw/job/8863t?jobsource=index" -> "8863t".
func JobIDFromURL(postingURL string) (string, error) {
	segment := postingURL
	if idx := strings.LastIndex(postingURL, "/"); idx >= 0 {
		segment = postingURL[idx+1:]
	}
	segment, _, _ = strings.Cut(segment, "?")

	if segment == "" {
		return "", errors.MalformedURL(fmt.Sprintf("no job id in url: %s", postingURL), nil)
	}
	return segment, nil
}
