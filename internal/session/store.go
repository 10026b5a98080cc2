// Package session holds login state between requests. A Store maps opaque
// tokens to cached panel user snapshots; the Codec signs tokens for
// transport in the session cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/auranode/auranode/internal/model"
)

// Store is the session persistence interface. Implementations must treat
// Destroy as idempotent: destroying an absent token is not an error.
type Store interface {
	// Get returns the session for a token, or model.ErrSessionNotFound
	// if the token is unknown or the session has expired.
	Get(ctx context.Context, token string) (*model.Session, error)
	// Put saves a session under its token.
	Put(ctx context.Context, sess *model.Session) error
	// Destroy removes a session.
	Destroy(ctx context.Context, token string) error
}

// NewToken generates a random session token.
func NewToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
