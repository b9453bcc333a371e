package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the validated content of an access token.
type Claims struct {
	UserId uuid.UUID
	Email  string
}

// Manager issues and validates signed access tokens. The secret and TTL
// are injected once at construction; tokens are self-contained (HS256,
// absolute expiry) so validation needs no store access.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Issue(userId uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Validate verifies signature and expiry. Any malformed token, signature
// mismatch or elapsed expiry yields an error; callers treat all of them
// as the same invalid-credential outcome.
func (m *Manager) Validate(tokenStr string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	userIdStr, _ := mapClaims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, fmt.Errorf("invalid subject")
	}

	email, _ := mapClaims["email"].(string)

	return &Claims{UserId: userId, Email: email}, nil
}
