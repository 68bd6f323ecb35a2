package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/cryptox"
	"github.com/aussiebroadwan/sigil/pkg/pgpx"
)

// KeyInfo is the public view of a master key. Private material is absent
// from it on purpose; export is the only way out and is gated separately.
type KeyInfo struct {
	Name        string
	Fingerprint string
	PublicKey   string
	Exportable  bool
}

// ExportResult carries an exported private keyring.
type ExportResult struct {
	Name string
	Key  string // ASCII-armored private keyring
}

// CreateKey mints a named master key. Accepted parameters: key_type,
// exportable, real_name, email, expires. Creating over an existing name
// fails without touching the existing record.
func (s *Service) CreateKey(ctx context.Context, name string, p domain.Params) error {
	if err := screenParams(domain.OpCreateKey, p); err != nil {
		return err
	}

	keyType, err := keyTypeParam(p)
	if err != nil {
		return err
	}
	exportable, _, err := boolParam(p, "exportable")
	if err != nil {
		return err
	}
	realName, _, err := stringParam(p, "real_name")
	if err != nil {
		return err
	}
	email, _, err := stringParam(p, "email")
	if err != nil {
		return err
	}
	expires, _, err := secondsParam(p, "expires")
	if err != nil {
		return err
	}

	// Duplicate names fail before any key material is minted. The store's
	// atomic create below backstops the race where two creates pass this
	// check together.
	_, err = s.store.Keys().Get(ctx, name)
	if err == nil {
		return fmt.Errorf("%w: key %q already exists", ErrInvalidRequest, name)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check key existence: %w", err)
	}

	now := s.now()
	var lifetime uint32
	if expires > 0 {
		lifetime = uint32(expires)
	}

	kr, err := pgpx.Generate(pgpx.KeySpec{
		Algorithm: algorithmFor(keyType),
		RealName:  realName,
		Email:     email,
		Lifetime:  lifetime,
		Clock:     func() time.Time { return now },
	})
	if err != nil {
		return fmt.Errorf("failed to generate key %q: %w", name, err)
	}

	pub, sealed, err := sealedMaterial(kr)
	if err != nil {
		return fmt.Errorf("failed to serialize key %q: %w", name, err)
	}

	key := domain.Key{
		Name:        name,
		KeyType:     keyType,
		Fingerprint: kr.Fingerprint(),
		PublicKey:   pub,
		PrivateKey:  sealed,
		Exportable:  exportable,
		RealName:    realName,
		Email:       email,
		CreatedAt:   now.UTC(),
		ExpiresAt:   domain.ExpiryFromSeconds(now.UTC(), expires),
	}

	if err := s.store.Keys().Create(ctx, key); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: key %q already exists", ErrInvalidRequest, name)
		}
		return fmt.Errorf("failed to store key %q: %w", name, err)
	}

	recordKeyCreated(string(keyType))
	return nil
}

// ReadKey returns the public view of a key.
func (s *Service) ReadKey(ctx context.Context, name string) (KeyInfo, error) {
	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return KeyInfo{}, fmt.Errorf("%w: key %q not found", ErrNotFound, name)
	}
	if err != nil {
		return KeyInfo{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	return KeyInfo{
		Name:        key.Name,
		Fingerprint: key.Fingerprint,
		PublicKey:   key.PublicKey,
		Exportable:  key.Exportable,
	}, nil
}

// ListKeys returns all key names, sorted.
func (s *Service) ListKeys(ctx context.Context) ([]string, error) {
	names, err := s.store.Keys().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	// An empty store lists as NotFound even though deleting a missing key
	// succeeds. Clients depend on the asymmetry, so both halves stay.
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no keys found", ErrNotFound)
	}
	return names, nil
}

// DeleteKey removes a key and all its subkeys. Deleting an absent name
// succeeds.
func (s *Service) DeleteKey(ctx context.Context, name string) error {
	if err := s.store.Keys().Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", name, err)
	}
	s.cache.forget(name)
	return nil
}

// ExportKey returns the private keyring of an exportable key. A key_type
// hint is accepted and ignored: the keyring is not split by usage, so
// signing-key and encryption-key exports are the same bytes.
func (s *Service) ExportKey(ctx context.Context, name string, p domain.Params) (ExportResult, error) {
	if err := screenParams(domain.OpExportKey, p); err != nil {
		return ExportResult{}, err
	}
	if _, _, err := stringParam(p, "key_type"); err != nil {
		return ExportResult{}, err
	}

	key, err := s.store.Keys().Get(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return ExportResult{}, fmt.Errorf("%w: key %q not found", ErrNotFound, name)
	}
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to load key %q: %w", name, err)
	}

	if !key.Exportable {
		return ExportResult{}, fmt.Errorf("%w: key %q is not exportable", ErrForbidden, name)
	}

	armored, err := cryptox.OpenKeyring(key.PrivateKey)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to unseal key %q: %w", name, err)
	}

	return ExportResult{Name: key.Name, Key: string(armored)}, nil
}
