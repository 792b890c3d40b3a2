package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestSessionToken(t *testing.T) {
	id := uuid.New()

	token, err := GenerateSessionToken("secret", id, 7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	parsed, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseSessionToken("other", token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateSessionToken("secret", id, 7, time.Now().Add(-time.Minute))
		require.NoError(t, err)
		_, err = ParseSessionToken("secret", expired)
		assert.Error(t, err)
	})
}

func TestPaginationTotalPages(t *testing.T) {
	p := Pagination{Page: 2, Limit: 20, Offset: 20}
	assert.Equal(t, 1, p.TotalPages(0))
	assert.Equal(t, 3, p.TotalPages(41))
	assert.True(t, p.HasNext(41))
	assert.False(t, p.HasNext(40))
}
