// Package snapshots caches read-only mirrors of server state (wallets,
// linked bank accounts, transactions) in a local SQLite database.
//
// A snapshot is never the source of truth. Any successful mutating call
// marks the affected kinds stale; screens must re-fetch rather than trust a
// stale mirror. Stale-but-present snapshots are still useful for offline
// rendering of transaction history.
package snapshots

import (
	"context"
	"time"
)

type Kind string

const (
	KindWallets      Kind = "wallets"
	KindBankAccounts Kind = "bank_accounts"
	KindTransactions Kind = "transactions"
)

// Snapshot is one cached server mirror, stored as the raw JSON payload.
type Snapshot struct {
	Kind      Kind
	Payload   []byte
	FetchedAt time.Time
	Stale     bool
}

type Repository interface {
	// Get returns the cached snapshot, or nil when none is stored.
	Get(ctx context.Context, kind Kind) (*Snapshot, error)

	// Put stores a fresh snapshot for kind, replacing any previous one.
	Put(ctx context.Context, kind Kind, payload []byte) error

	// MarkStale flags the given kinds; their payloads stay readable.
	MarkStale(ctx context.Context, kinds ...Kind) error

	// Clear drops every snapshot (logout).
	Clear(ctx context.Context) error
}
