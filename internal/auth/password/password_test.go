package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, Verify("secret1", hashed))
	assert.False(t, Verify("secret2", hashed))

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	assert.False(t, Verify("secret1", "not-a-hash"))
}
