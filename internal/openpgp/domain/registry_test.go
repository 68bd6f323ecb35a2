package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/stretchr/testify/require"
)

func TestRegistryMembership(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidKeyType("rsa-2048"))
	require.True(t, domain.ValidKeyType("rsa-4096"))
	require.True(t, domain.ValidKeyType("ecc-p256"))
	require.True(t, domain.ValidKeyType("ed25519"))
	require.False(t, domain.ValidKeyType("rsa-3072"))
	require.False(t, domain.ValidKeyType(""))

	require.True(t, domain.ValidHashAlgorithm("sha2-256"))
	require.True(t, domain.ValidHashAlgorithm("sha2-512"))
	require.False(t, domain.ValidHashAlgorithm("sha1"))

	require.True(t, domain.ValidMarshalingAlgorithm("ascii-armor"))
	require.True(t, domain.ValidMarshalingAlgorithm("base64"))
	require.False(t, domain.ValidMarshalingAlgorithm("hex"))

	require.True(t, domain.ValidSignatureAlgorithm("pkcs1v15"))
	require.False(t, domain.ValidSignatureAlgorithm("pss"))
}

func TestUnsupportedParams(t *testing.T) {
	t.Parallel()

	p := domain.Params{
		"key_type":               "rsa-2048",
		"derived":                true,
		"convergent_encryption":  true,
		"allow_plaintext_backup": true,
	}

	got := domain.UnsupportedParams(domain.OpCreateKey, p)
	require.Equal(t, []string{"allow_plaintext_backup", "convergent_encryption", "derived"}, got)

	// The same parameter set is fine for no operation that accepts nothing.
	require.Len(t, domain.UnsupportedParams(domain.OpReadKey, p), 4)

	// Export accepts key_type only.
	require.Empty(t, domain.UnsupportedParams(domain.OpExportKey, domain.Params{"key_type": "ed25519"}))
	require.Equal(t, []string{"version"}, domain.UnsupportedParams(domain.OpExportKey, domain.Params{"version": 2}))
}

func TestParamsGetters(t *testing.T) {
	t.Parallel()

	p := domain.Params{
		"real_name":  "Alice",
		"exportable": true,
		"expires":    float64(300), // as decoded from JSON
		"count":      "ten",
	}

	s, ok, err := p.String("real_name")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Alice", s)

	_, ok, err = p.String("missing")
	require.NoError(t, err)
	require.False(t, ok)

	b, ok, err := p.Bool("exportable")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, b)

	n, ok, err := p.Seconds("expires")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 300, n)

	_, _, err = p.Seconds("count")
	require.Error(t, err)

	_, _, err = p.String("exportable")
	require.Error(t, err)

	_, _, err = p.Seconds("real_name")
	require.Error(t, err)
}

func TestParamsSecondsRejectsFractions(t *testing.T) {
	t.Parallel()

	_, _, err := domain.Params{"expires": 1.5}.Seconds("expires")
	require.Error(t, err)

	n, ok, err := domain.Params{"expires": 60}.Seconds("expires")
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 60, n)
}

func TestExpiryFromSeconds(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Nil(t, domain.ExpiryFromSeconds(from, 0))

	exp := domain.ExpiryFromSeconds(from, 90)
	require.NotNil(t, exp)
	require.Equal(t, from.Add(90*time.Second), *exp)
}

func TestKeyExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(30 * time.Second)

	k := domain.Key{Name: "release", ExpiresAt: &exp}
	require.False(t, k.IsExpired(now))
	require.False(t, k.IsExpired(exp.Add(-time.Second)))
	require.True(t, k.IsExpired(exp), "expiry instant itself counts as expired")
	require.True(t, k.IsExpired(exp.Add(time.Minute)))

	forever := domain.Key{Name: "forever"}
	require.False(t, forever.IsExpired(now.Add(100*365*24*time.Hour)))
}

func TestKeySubkeyLookup(t *testing.T) {
	t.Parallel()

	k := domain.Key{
		Name: "release",
		Subkeys: []domain.Subkey{
			{KeyID: "AAAAAAAAAAAAAAAA", KeyType: domain.KeyTypeEd25519},
			{KeyID: "BBBBBBBBBBBBBBBB", KeyType: domain.KeyTypeRSA2048},
		},
	}

	sk, ok := k.Subkey("BBBBBBBBBBBBBBBB")
	require.True(t, ok)
	require.Equal(t, domain.KeyTypeRSA2048, sk.KeyType)

	_, ok = k.Subkey("CCCCCCCCCCCCCCCC")
	require.False(t, ok)
}
