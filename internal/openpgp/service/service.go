// Package service implements the engine façade: the eleven named-key
// operations composing the algorithm registry, the key store, the OpenPGP
// codec and the expiration policy, with the uniform validation order
// (unsupported parameters, then required parameters, then input encoding,
// then existence, then work).
package service

import (
	"crypto"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store"
	"github.com/aussiebroadwan/sigil/pkg/cryptox"
	"github.com/aussiebroadwan/sigil/pkg/pgpx"
)

// Service executes named-key operations over a backing store. It is safe
// for concurrent use; the store is the only shared mutable state.
type Service struct {
	store store.Store
	cache *entityCache
	now   func() time.Time
}

// New constructs a Service. cacheTTL bounds how long a parsed keyring may
// be reused before reparsing; zero selects the default.
func New(st store.Store, cacheTTL time.Duration) *Service {
	return NewWithClock(st, cacheTTL, time.Now)
}

// NewWithClock is New with an injected time source. Expiry tests use it to
// move time without sleeping.
func NewWithClock(st store.Store, cacheTTL time.Duration, now func() time.Time) *Service {
	initMetrics()
	return &Service{
		store: st,
		cache: newEntityCache(cacheTTL),
		now:   now,
	}
}

// screenParams rejects any request parameter outside the operation's
// allow-list. This is the first validation step everywhere.
func screenParams(op domain.Op, p domain.Params) error {
	if extra := domain.UnsupportedParams(op, p); len(extra) > 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedParam, strings.Join(extra, ", "))
	}
	return nil
}

func stringParam(p domain.Params, name string) (string, bool, error) {
	v, ok, err := p.String(name)
	if err != nil {
		return "", ok, fmt.Errorf("%w: %s", ErrParamValidation, err)
	}
	return v, ok, nil
}

func boolParam(p domain.Params, name string) (bool, bool, error) {
	v, ok, err := p.Bool(name)
	if err != nil {
		return false, ok, fmt.Errorf("%w: %s", ErrParamValidation, err)
	}
	return v, ok, nil
}

func secondsParam(p domain.Params, name string) (int64, bool, error) {
	v, ok, err := p.Seconds(name)
	if err != nil {
		return 0, ok, fmt.Errorf("%w: %s", ErrParamValidation, err)
	}
	return v, ok, nil
}

// keyTypeParam reads and registry-checks key_type, falling back to the
// default when absent.
func keyTypeParam(p domain.Params) (domain.KeyType, error) {
	v, ok, err := stringParam(p, "key_type")
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.DefaultKeyType, nil
	}
	if !domain.ValidKeyType(v) {
		return "", fmt.Errorf("%w: unsupported key type %q", ErrUnsupportedParam, v)
	}
	return domain.KeyType(v), nil
}

// decodeInput decodes caller-supplied base64. Both padded alphabets are
// accepted; transit-style clients standard-encode while the python client
// URL-safe-encodes.
func decodeInput(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return raw, nil
	}
	if raw, uerr := base64.URLEncoding.DecodeString(s); uerr == nil {
		return raw, nil
	}
	return nil, err
}

// keyring unseals and parses the key's private material, reusing the cached
// parse while the sealed bytes are unchanged. Subkey mutations rewrite the
// sealed bytes, so their digest doubles as the invalidation token. Cached
// keyrings are shared across calls and must be treated as read-only.
func (s *Service) keyring(k domain.Key) (*pgpx.Keyring, error) {
	digest := materialDigest(k.PrivateKey)
	if kr, ok := s.cache.get(k.Name, digest); ok {
		return kr, nil
	}

	kr, err := s.mutableKeyring(k)
	if err != nil {
		return nil, err
	}

	s.cache.put(k.Name, digest, kr)
	return kr, nil
}

// mutableKeyring always reparses from the sealed material. Subkey add and
// remove go through this so a keyring some concurrent sign is reading out
// of the cache is never mutated in place.
func (s *Service) mutableKeyring(k domain.Key) (*pgpx.Keyring, error) {
	armored, err := cryptox.OpenKeyring(k.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal key %q: %w", k.Name, err)
	}
	kr, err := pgpx.Parse(string(armored))
	if err != nil {
		return nil, fmt.Errorf("failed to parse key %q: %w", k.Name, err)
	}
	return kr, nil
}

// sealedMaterial reserializes a mutated keyring into the store's at-rest
// representation: armored public block plus sealed armored private block.
func sealedMaterial(kr *pgpx.Keyring) (string, []byte, error) {
	pub, err := kr.ArmorPublic()
	if err != nil {
		return "", nil, err
	}
	priv, err := kr.ArmorPrivate()
	if err != nil {
		return "", nil, err
	}
	sealed, err := cryptox.SealKeyring([]byte(priv))
	if err != nil {
		return "", nil, fmt.Errorf("failed to seal keyring: %w", err)
	}
	return pub, sealed, nil
}

func algorithmFor(kt domain.KeyType) pgpx.Algorithm {
	switch kt {
	case domain.KeyTypeRSA2048:
		return pgpx.AlgoRSA2048
	case domain.KeyTypeECCP256:
		return pgpx.AlgoECDSAP256
	case domain.KeyTypeEd25519:
		return pgpx.AlgoEd25519
	default:
		return pgpx.AlgoRSA4096
	}
}

func hashFor(h domain.HashAlgorithm) crypto.Hash {
	switch h {
	case domain.HashSHA224:
		return crypto.SHA224
	case domain.HashSHA384:
		return crypto.SHA384
	case domain.HashSHA512:
		return crypto.SHA512
	default:
		return crypto.SHA256
	}
}

func formatFor(m domain.MarshalingAlgorithm) pgpx.Format {
	if m == domain.MarshalingBase64 {
		return pgpx.FormatBase64
	}
	return pgpx.FormatArmor
}
