package service

import (
	"crypto/sha256"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/aussiebroadwan/sigil/pkg/pgpx"
)

const defaultCacheTTL = 5 * time.Minute

// entityCache memoizes parsed keyrings per key name. Unsealing runs an
// Argon2id derivation and parsing walks the whole certificate, so signing
// hot paths would otherwise pay that on every call. Entries are tagged with
// a digest of the sealed material; a mismatch means the stored key changed
// under us and the entry is unusable.
type entityCache struct {
	c *gocache.Cache
}

type cachedKeyring struct {
	digest [sha256.Size]byte
	kr     *pgpx.Keyring
}

func newEntityCache(ttl time.Duration) *entityCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &entityCache{c: gocache.New(ttl, 2*ttl)}
}

func (e *entityCache) get(name string, digest [sha256.Size]byte) (*pgpx.Keyring, bool) {
	v, ok := e.c.Get(name)
	if !ok {
		return nil, false
	}
	entry := v.(cachedKeyring)
	if entry.digest != digest {
		return nil, false
	}
	return entry.kr, true
}

func (e *entityCache) put(name string, digest [sha256.Size]byte, kr *pgpx.Keyring) {
	e.c.Set(name, cachedKeyring{digest: digest, kr: kr}, gocache.DefaultExpiration)
}

func (e *entityCache) forget(name string) {
	e.c.Delete(name)
}

func materialDigest(sealed []byte) [sha256.Size]byte {
	return sha256.Sum256(sealed)
}
