package pgpx

import (
	"errors"
	"fmt"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// SubkeyInfo is the public description of one signing subkey.
type SubkeyInfo struct {
	KeyID       string // long key ID, uppercase hex
	Fingerprint string
	CreatedAt   time.Time
	Lifetime    uint32 // seconds from creation, zero when the subkey never expires
}

// AddSigningSubkey mints a signing-capable subkey bound to the primary key,
// cross-certified so third parties accept its signatures.
func (k *Keyring) AddSigningSubkey(spec KeySpec) (SubkeyInfo, error) {
	if k.entity.PrivateKey == nil {
		return SubkeyInfo{}, errors.New("keyring holds no private key")
	}
	if err := k.entity.AddSigningSubkey(spec.config()); err != nil {
		return SubkeyInfo{}, fmt.Errorf("failed to add signing subkey: %w", err)
	}
	return subkeyInfo(k.entity.Subkeys[len(k.entity.Subkeys)-1]), nil
}

// RemoveSubkey drops the subkey with the given key ID from the keyring.
// It reports whether a subkey was removed; serialization afterwards yields
// a certificate without it, which unwinds the subkey's signing authority.
func (k *Keyring) RemoveSubkey(keyID string) bool {
	for i, sub := range k.entity.Subkeys {
		if sub.PublicKey.KeyIdString() == keyID {
			k.entity.Subkeys = append(k.entity.Subkeys[:i], k.entity.Subkeys[i+1:]...)
			return true
		}
	}
	return false
}

// SigningSubkeys lists the signing-capable subkeys in keyring order. The
// encryption subkey minted alongside the primary key is not included.
func (k *Keyring) SigningSubkeys() []SubkeyInfo {
	var out []SubkeyInfo
	for _, sub := range k.entity.Subkeys {
		if sub.Sig == nil || !sub.Sig.FlagsValid || !sub.Sig.FlagSign {
			continue
		}
		out = append(out, subkeyInfo(sub))
	}
	return out
}

func subkeyInfo(sub openpgp.Subkey) SubkeyInfo {
	info := SubkeyInfo{
		KeyID:       sub.PublicKey.KeyIdString(),
		Fingerprint: fmt.Sprintf("%X", sub.PublicKey.Fingerprint),
		CreatedAt:   sub.PublicKey.CreationTime,
	}
	if sub.Sig != nil && sub.Sig.KeyLifetimeSecs != nil {
		info.Lifetime = *sub.Sig.KeyLifetimeSecs
	}
	return info
}
