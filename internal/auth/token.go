// ABOUTME: Inspection of JWT access tokens held by the client
// ABOUTME: Reads claims without verification to decide when to refresh

package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshWindow is how close to expiry a token must be before refreshing
const RefreshWindow = 5 * time.Minute

// ErrOpaqueToken is returned when the stored token is not a JWT
var ErrOpaqueToken = errors.New("token is not a JWT")

// TokenInfo describes the claims of a JWT access token
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time // zero if the token has no iat claim
	ExpiresAt time.Time // zero if the token has no exp claim
}

// Expired reports whether the token is past its expiry
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// LifetimeUsed returns how much of the token's lifetime has passed, as a
// percentage in [0, 100]. It is -1 when iat or exp is missing.
func (t TokenInfo) LifetimeUsed(now time.Time) float64 {
	if t.IssuedAt.IsZero() || t.ExpiresAt.IsZero() || !t.ExpiresAt.After(t.IssuedAt) {
		return -1
	}
	total := t.ExpiresAt.Sub(t.IssuedAt)
	used := now.Sub(t.IssuedAt)
	return min(max(float64(used)/float64(total)*100, 0), 100)
}

// ParseToken reads the registered claims of token. The signature is not
// checked; the client never holds the signing key.
func ParseToken(token string) (TokenInfo, error) {
	if token == "" {
		return TokenInfo{}, ErrOpaqueToken
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, ErrOpaqueToken
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// TokenInfo returns the claims of the stored token
func (m *Manager) TokenInfo() (TokenInfo, error) {
	return ParseToken(m.store.Token())
}

// NeedsRefresh reports whether the stored token expires within RefreshWindow.
// Opaque tokens and tokens without exp never need refreshing.
func (m *Manager) NeedsRefresh() bool {
	info, err := m.TokenInfo()
	if err != nil || info.ExpiresAt.IsZero() {
		return false
	}
	return info.ExpiresAt.Sub(m.now()) <= RefreshWindow
}
