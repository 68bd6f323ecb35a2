package domain

import "time"

// Key is a named OpenPGP keypair managed by the engine. PrivateKey holds the
// sealed private keyring and never leaves the store unsealed except through
// an export of an exportable key.
type Key struct {
	Name        string
	KeyType     KeyType
	Fingerprint string // primary key fingerprint, uppercase hex
	PublicKey   string // ASCII-armored public keyring
	PrivateKey  []byte // sealed ASCII-armored private keyring
	Exportable  bool
	RealName    string
	Email       string
	CreatedAt   time.Time
	ExpiresAt   *time.Time // nil means the key never expires
	Subkeys     []Subkey
}

// Subkey is the public metadata of a signing subkey bound to a master key.
// The subkey's private material lives inside the parent keyring, so deleting
// a subkey also rewrites the parent's stored material.
type Subkey struct {
	KeyID       string // long key ID, uppercase hex, 16 characters
	KeyType     KeyType
	Fingerprint string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
}

// IsExpired reports whether the key's validity window has closed at now.
// A key with no expiration is never expired.
func (k *Key) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}

// Subkey returns the subkey with the given key ID, if the key has one.
func (k *Key) Subkey(keyID string) (Subkey, bool) {
	for _, sk := range k.Subkeys {
		if sk.KeyID == keyID {
			return sk, true
		}
	}
	return Subkey{}, false
}

func (s *Subkey) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
