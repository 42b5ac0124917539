package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrCorrupt reports a persisted value that no longer decodes.
	ErrCorrupt = errors.New("store: corrupt value")
)

// Keys of the persisted documents.
const (
	KeySession         = "user"
	KeyAccessLogs      = "accessLogs"
	KeyPatients        = "patients"
	KeyUsers           = "users"
	KeyClinicalRecords = "clinicalRecords"
	KeyPrescriptions   = "prescriptions"
	KeyAppointments    = "appointments"
	KeyDesignSystem    = "designSystemConfig"
)

// Store is the root data access interface. Drivers implement it.
type Store interface {
	KV() KV

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	// Inside fn only tx may be used; the outer store would block on the
	// single sqlite writer.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// KV is a flat map of string keys to serialized JSON documents.
type KV interface {
	// Get returns the raw value under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Put inserts or replaces the value under key.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)
}
