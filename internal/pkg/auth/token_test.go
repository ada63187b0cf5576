package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndDecode(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)
	userID := uuid.New()

	token, err := m.IssueForUser(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Decode(token)
	require.NoError(t, err)

	got, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.IssueForUser(uuid.New())
	require.NoError(t, err)

	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_IssueExpired(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)

	token, err := m.IssueExpired(uuid.New())
	require.NoError(t, err)

	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)
	other := NewTokenManager("other-secret", 15*time.Minute)

	token, err := other.IssueForUser(uuid.New())
	require.NoError(t, err)

	_, err = m.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)

	_, err := m.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_WrongAlgorithm(t *testing.T) {
	m := NewTokenManager("test-secret", 15*time.Minute)

	// alg=none style tokens must never decode
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Decode(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestUserID_MissingClaim(t *testing.T) {
	_, err := UserID(jwt.MapClaims{})
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = UserID(jwt.MapClaims{"user_id": "not-a-uuid"})
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
