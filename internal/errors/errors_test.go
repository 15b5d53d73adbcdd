package errors_test

import (
	"fmt"
	"testing"

	"github.com/NJR201-job-market-analysis/collector-104/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Message(t *testing.T) {
	err := errors.Transport("executing request", fmt.Errorf("connection refused"))
	assert.Equal(t, "TRANSPORT: executing request: connection refused", err.Error())

	bare := errors.Absent("posting 8863t does not exist or is closed", nil)
	assert.Equal(t, "ABSENT: posting 8863t does not exist or is closed", bare.Error())
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := errors.Persist("upserting posting", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	err := errors.MalformedURL("no job id in url", nil)
	assert.True(t, errors.IsType(err, errors.ErrTypeMalformedURL))
	assert.False(t, errors.IsType(err, errors.ErrTypeTransport))

	wrapped := fmt.Errorf("fetch: %w", err)
	assert.True(t, errors.IsType(wrapped, errors.ErrTypeMalformedURL))

	assert.False(t, errors.IsType(fmt.Errorf("plain"), errors.ErrTypeTransport))
	assert.False(t, errors.IsType(nil, errors.ErrTypeTransport))
}

func TestIsAbsent(t *testing.T) {
	assert.True(t, errors.IsAbsent(errors.Absent("closed", nil)))
	assert.False(t, errors.IsAbsent(errors.Transport("boom", nil)))
	assert.False(t, errors.IsAbsent(nil))
}

func TestStackIsCaptured(t *testing.T) {
	err := errors.Internal("boom", nil)
	require.NotEmpty(t, err.StackTrace())
}
