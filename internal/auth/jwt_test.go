package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	ts := TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "babylon-test",
		Duration: time.Hour,
	}
	a := &Admin{ID: "id-1", Username: "archivist", TokenVersion: 3}

	token, exp, err := ts.Sign(a)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "id-1", claims.AdminID)
	assert.Equal(t, "archivist", claims.Username)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "babylon-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := TokenService{Secret: []byte("right"), Issuer: "x", Duration: time.Hour}
	token, _, err := ts.Sign(&Admin{ID: "id-1", Username: "a"})
	require.NoError(t, err)

	other := TokenService{Secret: []byte("wrong"), Issuer: "x", Duration: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	ts := TokenService{Secret: []byte("s"), Issuer: "x", Duration: -time.Minute}
	token, _, err := ts.Sign(&Admin{ID: "id-1", Username: "a"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	assert.Error(t, err)
}
