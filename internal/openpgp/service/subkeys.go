package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/pgpx"
)

// SubkeyInfo is the public view of a signing subkey.
type SubkeyInfo struct {
	KeyID       string
	KeyType     domain.KeyType
	Fingerprint string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
}

// CreateSubkey mints a signing subkey bound to the named master key.
// Accepted parameters: key_type, expires. The subkey's expiration is
// independent of the parent's.
func (s *Service) CreateSubkey(ctx context.Context, name string, p domain.Params) (SubkeyInfo, error) {
	if err := screenParams(domain.OpCreateSubkey, p); err != nil {
		return SubkeyInfo{}, err
	}

	keyType, err := keyTypeParam(p)
	if err != nil {
		return SubkeyInfo{}, err
	}
	expires, _, err := secondsParam(p, "expires")
	if err != nil {
		return SubkeyInfo{}, err
	}

	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return SubkeyInfo{}, fmt.Errorf("%w: key %q does not exist", ErrInvalidRequest, name)
	}
	if err != nil {
		return SubkeyInfo{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	kr, err := s.mutableKeyring(key)
	if err != nil {
		return SubkeyInfo{}, err
	}

	now := s.now()
	var lifetime uint32
	if expires > 0 {
		lifetime = uint32(expires)
	}

	minted, err := kr.AddSigningSubkey(pgpx.KeySpec{
		Algorithm: algorithmFor(keyType),
		Lifetime:  lifetime,
		Clock:     func() time.Time { return now },
	})
	if err != nil {
		return SubkeyInfo{}, fmt.Errorf("failed to add subkey to %q: %w", name, err)
	}

	pub, sealed, err := sealedMaterial(kr)
	if err != nil {
		return SubkeyInfo{}, fmt.Errorf("failed to serialize key %q: %w", name, err)
	}

	sub := domain.Subkey{
		KeyID:       minted.KeyID,
		KeyType:     keyType,
		Fingerprint: minted.Fingerprint,
		CreatedAt:   minted.CreatedAt.UTC(),
		ExpiresAt:   domain.ExpiryFromSeconds(minted.CreatedAt.UTC(), expires),
	}

	if err := s.store.Keys().AddSubkey(ctx, name, sub, pub, sealed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The parent was deleted between the load and the write.
			return SubkeyInfo{}, fmt.Errorf("%w: key %q does not exist", ErrInvalidRequest, name)
		}
		return SubkeyInfo{}, fmt.Errorf("failed to store subkey for %q: %w", name, err)
	}

	s.cache.put(name, materialDigest(sealed), kr)

	return SubkeyInfo{
		KeyID:       sub.KeyID,
		KeyType:     sub.KeyType,
		Fingerprint: sub.Fingerprint,
		CreatedAt:   sub.CreatedAt,
		ExpiresAt:   sub.ExpiresAt,
	}, nil
}

// ReadSubkey returns the public view of one subkey.
func (s *Service) ReadSubkey(ctx context.Context, name, keyID string) (SubkeyInfo, error) {
	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return SubkeyInfo{}, fmt.Errorf("%w: key %q not found", ErrNotFound, name)
	}
	if err != nil {
		return SubkeyInfo{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	sub, ok := key.Subkey(keyID)
	if !ok {
		return SubkeyInfo{}, fmt.Errorf("%w: subkey %q not found on key %q", ErrNotFound, keyID, name)
	}

	return SubkeyInfo{
		KeyID:       sub.KeyID,
		KeyType:     sub.KeyType,
		Fingerprint: sub.Fingerprint,
		CreatedAt:   sub.CreatedAt,
		ExpiresAt:   sub.ExpiresAt,
	}, nil
}

// ListSubkeys returns the key IDs of the named key's subkeys in creation
// order.
func (s *Service) ListSubkeys(ctx context.Context, name string) ([]string, error) {
	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: key %q not found", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	// Unlike listing keys, an empty subkey set is an ordinary empty answer.
	keyIDs := make([]string, 0, len(key.Subkeys))
	for _, sub := range key.Subkeys {
		keyIDs = append(keyIDs, sub.KeyID)
	}
	return keyIDs, nil
}

// DeleteSubkey removes a subkey and rewrites the parent's material without
// it, which withdraws the subkey's signing authority. Deleting an absent
// subkey or parent succeeds.
func (s *Service) DeleteSubkey(ctx context.Context, name, keyID string) error {
	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load key %q: %w", name, err)
	}

	if _, ok := key.Subkey(keyID); !ok {
		return nil
	}

	kr, err := s.mutableKeyring(key)
	if err != nil {
		return err
	}
	kr.RemoveSubkey(keyID)

	pub, sealed, err := sealedMaterial(kr)
	if err != nil {
		return fmt.Errorf("failed to serialize key %q: %w", name, err)
	}

	if err := s.store.Keys().RemoveSubkey(ctx, name, keyID, pub, sealed); err != nil {
		return fmt.Errorf("failed to remove subkey %q from %q: %w", keyID, name, err)
	}

	s.cache.put(name, materialDigest(sealed), kr)
	return nil
}
