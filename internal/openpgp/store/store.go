package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, redis)
// implement this. It exposes a sub-repository to keep concerns tidy and
// testable.
type Store interface {
	Keys() Keys

	// ApplyMigrations brings the backing schema up to date. Drivers without
	// a schema (redis) treat this as a no-op.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is still reachable.
	Ping(ctx context.Context) error
}

// Keys persists named keys together with their subkey metadata. A subkey's
// private half lives inside the parent's sealed material, so mutations that
// touch both are atomic per key: readers never observe a subkey row whose
// material is missing from the parent keyring, or the reverse.
type Keys interface {
	// Create inserts a new key. Returns ErrAlreadyExists when the name is
	// taken; at most one of two concurrent creates for a name wins.
	Create(ctx context.Context, k domain.Key) error

	// Get returns the key with its subkeys in creation order.
	Get(ctx context.Context, name string) (domain.Key, error)

	// List returns all key names sorted ascending.
	List(ctx context.Context) ([]string, error)

	// Delete removes the key and its subkeys. Deleting an absent name is
	// not an error.
	Delete(ctx context.Context, name string) error

	// AddSubkey appends a subkey row and swaps in the parent's reserialized
	// material in one atomic step. Returns ErrNotFound when the parent is
	// missing and ErrAlreadyExists when the key ID is already bound.
	AddSubkey(ctx context.Context, name string, sub domain.Subkey, publicKey string, privateKey []byte) error

	// RemoveSubkey drops a subkey row and swaps in the parent's reserialized
	// material in one atomic step. Removing an absent subkey or parent is
	// not an error and leaves the stored material untouched.
	RemoveSubkey(ctx context.Context, name, keyID string, publicKey string, privateKey []byte) error
}
