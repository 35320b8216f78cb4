package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerify(t *testing.T) {
	s := NewTokenService("secret", 10*time.Hour)

	token, err := s.Issue(map[string]any{"email": "a@b.com", "name": "Ann"})
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email())
	assert.Equal(t, "Ann", claims["name"])
}

func TestTokenService_StampsExpiry(t *testing.T) {
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewTokenService("secret", 10*time.Hour)
	s.now = func() time.Time { return fixed }

	// client-supplied exp must not survive
	token, err := s.Issue(map[string]any{"email": "a@b.com", "exp": fixed.Add(1000 * time.Hour).Unix()})
	require.NoError(t, err)

	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	mc := parsed.Claims.(jwt.MapClaims)
	assert.EqualValues(t, fixed.Unix(), mc["iat"])
	assert.EqualValues(t, fixed.Add(10*time.Hour).Unix(), mc["exp"])
}

func TestTokenService_Expired(t *testing.T) {
	s := NewTokenService("secret", time.Hour)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.Issue(map[string]any{"email": "a@b.com"})
	require.NoError(t, err)

	_, err = s.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("one", time.Hour).Issue(map[string]any{"email": "a@b.com"})
	require.NoError(t, err)

	_, err = NewTokenService("two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@b.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_Email(t *testing.T) {
	assert.Equal(t, "a@b.com", Claims{"email": " a@b.com "}.Email())
	assert.Equal(t, "", Claims{"email": 42}.Email())
	assert.Equal(t, "", Claims{}.Email())
}
