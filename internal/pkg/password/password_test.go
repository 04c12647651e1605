//go:build unit

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	cost = bcrypt.MinCost
	t.Cleanup(func() { cost = bcrypt.DefaultCost })

	hash, err := Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, Verify(hash, "password123"))
	assert.ErrorIs(t, Verify(hash, "password124"), ErrMismatch)
	assert.ErrorIs(t, Verify("", "password123"), ErrMismatch)
	assert.Error(t, Verify("not-a-bcrypt-hash", "password123"))

	_, err = Hash("")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrTooLong)
}
