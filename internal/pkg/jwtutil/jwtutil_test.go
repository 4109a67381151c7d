package jwtutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-epstein/microblog/internal/pkg/jwtutil"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := jwtutil.GenerateToken("secret", time.Hour, 42, "alice")
	require.NoError(t, err)

	claims, err := jwtutil.ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := jwtutil.GenerateToken("secret", time.Hour, 42, "alice")
	require.NoError(t, err)

	_, err = jwtutil.ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := jwtutil.GenerateToken("secret", -time.Minute, 42, "alice")
	require.NoError(t, err)

	_, err = jwtutil.ParseToken("secret", token)
	assert.Error(t, err)
}
