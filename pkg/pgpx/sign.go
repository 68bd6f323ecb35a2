package pgpx

import (
	"bytes"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// Format is the wire encoding of a detached signature.
type Format int

const (
	FormatArmor  Format = iota // ASCII-armored PGP SIGNATURE block
	FormatBase64               // standard base64 of the binary packet
)

func (f Format) String() string {
	if f == FormatBase64 {
		return "base64"
	}
	return "ascii-armor"
}

// SignOptions control one detached signing operation.
type SignOptions struct {
	Hash     crypto.Hash
	Format   Format
	Lifetime uint32           // signature validity in seconds, zero for none
	Clock    func() time.Time // signing time source, nil for time.Now
}

// SignatureInfo is what a detached signature blob says about itself.
type SignatureInfo struct {
	IssuerKeyID string // long key ID of the signing (sub)key, uppercase hex
	Hash        crypto.Hash
	Format      Format
	CreatedAt   time.Time
	ExpiresAt   *time.Time // nil when the signature never expires
}

// Sign produces a detached signature over message. The newest live signing
// subkey signs when one exists, the primary key otherwise.
func (k *Keyring) Sign(message []byte, opts SignOptions) (string, error) {
	if k.entity.PrivateKey == nil {
		return "", errors.New("keyring holds no private key")
	}
	cfg := &packet.Config{
		DefaultHash:     opts.Hash,
		SigLifetimeSecs: opts.Lifetime,
		Time:            opts.Clock,
	}

	var buf bytes.Buffer
	if opts.Format == FormatBase64 {
		if err := openpgp.DetachSign(&buf, k.entity, bytes.NewReader(message), cfg); err != nil {
			return "", fmt.Errorf("failed to sign: %w", err)
		}
		return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
	}
	if err := openpgp.ArmoredDetachSign(&buf, k.entity, bytes.NewReader(message), cfg); err != nil {
		return "", fmt.Errorf("failed to sign: %w", err)
	}
	return buf.String(), nil
}

// Verify checks a detached signature against the keyring as of now. A nil
// return means the signature is cryptographically sound and was issued by
// a key present in the keyring.
func (k *Keyring) Verify(message []byte, signature string, now time.Time) error {
	raw, _, err := decodeSignature(signature)
	if err != nil {
		return err
	}
	cfg := &packet.Config{Time: func() time.Time { return now }}
	_, err = openpgp.CheckDetachedSignature(
		openpgp.EntityList{k.entity}, bytes.NewReader(message), bytes.NewReader(raw), cfg)
	return err
}

// InspectSignature parses a detached signature blob without verifying it,
// so callers can screen the issuer and algorithms against policy first.
func InspectSignature(signature string) (SignatureInfo, error) {
	raw, format, err := decodeSignature(signature)
	if err != nil {
		return SignatureInfo{}, err
	}
	p, err := packet.Read(bytes.NewReader(raw))
	if err != nil {
		return SignatureInfo{}, fmt.Errorf("failed to parse signature packet: %w", err)
	}
	sig, ok := p.(*packet.Signature)
	if !ok {
		return SignatureInfo{}, fmt.Errorf("failed to parse signature packet: unexpected %T", p)
	}

	info := SignatureInfo{
		Hash:      sig.Hash,
		Format:    format,
		CreatedAt: sig.CreationTime,
	}
	if sig.IssuerKeyId != nil {
		info.IssuerKeyID = fmt.Sprintf("%016X", *sig.IssuerKeyId)
	}
	if sig.SigLifetimeSecs != nil && *sig.SigLifetimeSecs > 0 {
		exp := sig.CreationTime.Add(time.Duration(*sig.SigLifetimeSecs) * time.Second)
		info.ExpiresAt = &exp
	}
	return info, nil
}

// decodeSignature accepts either an ASCII-armored signature block or base64
// of the binary packet and returns the raw packet bytes. Both base64
// alphabets are tolerated since URL-safe submitters are common.
func decodeSignature(s string) ([]byte, Format, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "-----BEGIN PGP") {
		block, err := armor.Decode(strings.NewReader(trimmed))
		if err != nil {
			return nil, FormatArmor, fmt.Errorf("failed to decode armored signature: %w", err)
		}
		raw, err := io.ReadAll(block.Body)
		if err != nil {
			return nil, FormatArmor, fmt.Errorf("failed to decode armored signature: %w", err)
		}
		return raw, FormatArmor, nil
	}
	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		var uerr error
		raw, uerr = base64.URLEncoding.DecodeString(trimmed)
		if uerr != nil {
			return nil, FormatBase64, fmt.Errorf("failed to decode base64 signature: %w", err)
		}
	}
	return raw, FormatBase64, nil
}
