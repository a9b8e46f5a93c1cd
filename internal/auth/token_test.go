package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestManager(secret string) (*TokenManager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)}
	return NewTokenManager(secret).WithClock(clock.Now), clock
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m, clock := newTestManager("test_jwt_secret")
	id := Identity{UserID: "user-123", Email: "a@x.com"}

	token, err := m.Issue(id, 2*time.Hour)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Identity())
	assert.Equal(t, clock.t.Unix(), claims.IssuedAt)
	assert.Equal(t, clock.t.Add(2*time.Hour).Unix(), claims.ExpiresAt)
	assert.NotEmpty(t, claims.Id)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	m, clock := newTestManager("test_jwt_secret")
	start := clock.t

	token, err := m.Issue(Identity{UserID: "user-123"}, time.Hour)
	require.NoError(t, err)

	clock.t = start.Add(time.Hour - time.Second)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	clock.t = start.Add(time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.t = start.Add(24 * time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_DifferentKeyFails(t *testing.T) {
	issuer, _ := newTestManager("key-one")
	verifier, _ := newTestManager("key-two")

	token, err := issuer.Issue(Identity{UserID: "user-123"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_RejectsMalformedAndTampered(t *testing.T) {
	m, _ := newTestManager("test_jwt_secret")

	token, err := m.Issue(Identity{UserID: "user-123"}, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for name, tok := range map[string]string{
		"empty":     "",
		"garbage":   "invalid.token.string",
		"tampered":  tampered,
		"truncated": parts[0] + "." + parts[1],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(tok)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	m, clock := newTestManager("test_jwt_secret")
	claims := Claims{
		UserID:         "user-123",
		StandardClaims: jwt.StandardClaims{ExpiresAt: clock.t.Add(time.Hour).Unix()},
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(none)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)
	_, err = m.Verify(hs512)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_RequiresUserAndExpiry(t *testing.T) {
	m, clock := newTestManager("test_jwt_secret")

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: clock.t.Add(time.Hour).Unix()},
	}).SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)
	_, err = m.Verify(noUser)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-123"}).
		SignedString([]byte("test_jwt_secret"))
	require.NoError(t, err)
	_, err = m.Verify(noExpiry)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: "user-123", Email: "a@x.com"})
	id, ok := IdentityFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-123", id.UserID)

	_, ok = IdentityFrom(WithIdentity(context.Background(), Identity{}))
	assert.False(t, ok)
}
