// Package pgpx wraps the OpenPGP primitives the engine needs: keypair
// generation, signing-subkey management, detached signing and verification.
// Callers hold key material as a Keyring and move it across process
// boundaries as ASCII-armored text.
package pgpx

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// Algorithm selects the public key algorithm of a generated key or subkey.
type Algorithm int

const (
	AlgoRSA2048 Algorithm = iota
	AlgoRSA4096
	AlgoECDSAP256
	AlgoEd25519
)

// KeySpec describes the key or subkey to mint.
type KeySpec struct {
	Algorithm Algorithm
	RealName  string
	Email     string
	Lifetime  uint32           // validity in seconds embedded in the self-signature, zero for none
	Clock     func() time.Time // creation time source, nil for time.Now
}

func (s KeySpec) config() *packet.Config {
	cfg := &packet.Config{
		KeyLifetimeSecs: s.Lifetime,
		Time:            s.Clock,
	}
	switch s.Algorithm {
	case AlgoRSA2048:
		cfg.Algorithm = packet.PubKeyAlgoRSA
		cfg.RSABits = 2048
	case AlgoRSA4096:
		cfg.Algorithm = packet.PubKeyAlgoRSA
		cfg.RSABits = 4096
	case AlgoECDSAP256:
		cfg.Algorithm = packet.PubKeyAlgoECDSA
		cfg.Curve = packet.CurveNistP256
	case AlgoEd25519:
		cfg.Algorithm = packet.PubKeyAlgoEdDSA
		cfg.Curve = packet.Curve25519
	}
	return cfg
}

// Keyring is a single OpenPGP certificate: primary key, identity and
// subkeys, with private material when parsed from a private block.
type Keyring struct {
	entity *openpgp.Entity
}

// Generate mints a fresh keypair. The primary key can certify and sign;
// OpenPGP certificates need a user ID to round-trip through parsers, so
// absent identity fields become an empty one.
func Generate(spec KeySpec) (*Keyring, error) {
	entity, err := openpgp.NewEntity(spec.RealName, "", spec.Email, spec.config())
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return &Keyring{entity: entity}, nil
}

// Parse reads the first key of an ASCII-armored keyring, public or private.
func Parse(armored string) (*Keyring, error) {
	el, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armored))
	if err != nil {
		return nil, fmt.Errorf("failed to parse keyring: %w", err)
	}
	if len(el) == 0 {
		return nil, errors.New("failed to parse keyring: no keys found")
	}
	return &Keyring{entity: el[0]}, nil
}

// HasPrivate reports whether the keyring carries private key material.
func (k *Keyring) HasPrivate() bool {
	return k.entity.PrivateKey != nil
}

// Fingerprint returns the primary key fingerprint as uppercase hex.
func (k *Keyring) Fingerprint() string {
	return fmt.Sprintf("%X", k.entity.PrimaryKey.Fingerprint)
}

// PrimaryKeyID returns the primary key's long key ID as uppercase hex.
func (k *Keyring) PrimaryKeyID() string {
	return k.entity.PrimaryKey.KeyIdString()
}

// ArmorPublic serializes the public half as an ASCII-armored block.
func (k *Keyring) ArmorPublic() (string, error) {
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		return "", fmt.Errorf("failed to armor public key: %w", err)
	}
	if err := k.entity.Serialize(w); err != nil {
		return "", fmt.Errorf("failed to serialize public key: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to armor public key: %w", err)
	}
	return buf.String(), nil
}

// ArmorPrivate serializes the full certificate, private material included,
// reusing the existing self-signatures rather than re-signing.
func (k *Keyring) ArmorPrivate() (string, error) {
	if k.entity.PrivateKey == nil {
		return "", errors.New("keyring holds no private key")
	}
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		return "", fmt.Errorf("failed to armor private key: %w", err)
	}
	if err := k.entity.SerializePrivateWithoutSigning(w, nil); err != nil {
		return "", fmt.Errorf("failed to serialize private key: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to armor private key: %w", err)
	}
	return buf.String(), nil
}
