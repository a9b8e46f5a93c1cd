package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers bad signatures, unexpected algorithms and malformed tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned once the current time reaches the token's expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock returns a copy of m that reads the current time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	return &TokenManager{secret: m.secret, now: now}
}

// Issue signs a token for the given identity that expires ttl from now.
func (m *TokenManager) Issue(identity Identity, ttl time.Duration) (string, error) {
	issuedAt := m.now()
	claims := Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns its claims.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	// Expiry is checked below against the injected clock, not jwt.TimeFunc.
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.UserID == "" || claims.ExpiresAt == 0 {
		return nil, ErrTokenInvalid
	}

	if !m.now().Before(time.Unix(claims.ExpiresAt, 0)) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// Identity returns the verified identity carried by c.
func (c *Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email}
}
