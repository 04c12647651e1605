//go:build unit || e2e

package testutil

import (
	"testing"

	"hotel-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireMarked fails unless err carries the sentinel, directly or as a mark.
func RequireMarked(t *testing.T, err, sentinel error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errs.Is(err, sentinel), "expected %q in error chain, got: %v", sentinel, err)
}

func AssertNotMarked(t *testing.T, err, sentinel error) {
	t.Helper()
	assert.False(t, errs.Is(err, sentinel), "unexpected %q in error chain: %v", sentinel, err)
}
