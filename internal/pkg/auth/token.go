package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired means the token was well-formed but past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers every structural or signature failure.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenManager issues and decodes HS256 access tokens. The signing key and
// lifetime are process-wide configuration loaded once at startup.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the given claims with an added "exp" timestamp.
func (m *TokenManager) Issue(claims jwt.MapClaims) (string, error) {
	to := jwt.MapClaims{}
	for k, v := range claims {
		to[k] = v
	}
	to["exp"] = time.Now().Add(m.ttl).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, to).SignedString(m.secret)
}

// IssueForUser signs a token carrying the user's identifier.
func (m *TokenManager) IssueForUser(userID uuid.UUID) (string, error) {
	return m.Issue(jwt.MapClaims{"user_id": userID.String()})
}

// IssueExpired signs an already-expired token for the same user. Tokens are
// stateless and cannot be revoked; logout hands the client this token to
// discard in place of the live one.
func (m *TokenManager) IssueExpired(userID uuid.UUID) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	}).SignedString(m.secret)
}

// Decode verifies the signature and expiry and returns the claims.
func (m *TokenManager) Decode(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// UserID extracts the user identifier claim from decoded claims.
func UserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}
