// Package session is the single source of truth for the current API
// credential: whether a usable bearer token exists and which tier it lives in.
//
// Two tiers back the store. The durable tier is a token file under the user
// config dir and survives restarts ("remember me"). The ephemeral tier lives
// in process memory and dies with the CLI session. Exactly one tier holds a
// token at a time, but reads check both, durable first — every screen relies
// on that precedence.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds the current bearer token.
type Store interface {
	// Set stores token in the durable tier when remember is true, otherwise
	// in the ephemeral tier. The other tier is cleared.
	Set(token string, remember bool) error

	// Token returns the durable token if present, else the ephemeral token,
	// else the empty string.
	Token() string

	// Clear removes the token from both tiers. Idempotent.
	Clear() error
}

// tier is a single persistence surface for a token.
type tier interface {
	get() string
	set(token string) error
	clear() error
}

// TieredStore implements Store over a durable file tier and an in-memory
// ephemeral tier. Concurrent writers are not reconciled: last write to the
// durable tier wins on the next read.
type TieredStore struct {
	durable   tier
	ephemeral tier
}

var _ Store = (*TieredStore)(nil)

// NewStore returns a store whose durable tier is a token file under dataDir.
func NewStore(dataDir string) *TieredStore {
	return &TieredStore{
		durable:   newFileTier(dataDir),
		ephemeral: &memTier{},
	}
}

func (s *TieredStore) Set(token string, remember bool) error {
	if err := s.Clear(); err != nil {
		return err
	}
	if remember {
		return s.durable.set(token)
	}
	return s.ephemeral.set(token)
}

func (s *TieredStore) Token() string {
	if t := s.durable.get(); t != "" {
		return t
	}
	return s.ephemeral.get()
}

func (s *TieredStore) Clear() error {
	return errors.Join(s.durable.clear(), s.ephemeral.clear())
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. The server remains the authority on token validity; the claim is
// only used to treat a stale durable token as absent instead of sending it.
// Opaque (non-JWT) tokens yield a zero time, i.e. no client-side expiry.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
