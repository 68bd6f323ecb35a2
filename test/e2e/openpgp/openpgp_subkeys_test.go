package openpgp_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

var keyIDPattern = regexp.MustCompile(`^[0-9A-F]{16}$`)

// TestSubkeyLifecycle walks a subkey through create, read, list and delete.
func TestSubkeyLifecycle(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	sub, err := client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{KeyType: "ed25519"})
	require.NoError(t, err)
	require.Regexp(t, keyIDPattern, sub.KeyID)
	require.Equal(t, "ed25519", sub.KeyType)
	require.Regexp(t, fingerprintPattern, sub.Fingerprint)
	require.Empty(t, sub.ExpiresAt, "Subkey without expires should not report an expiry")

	created, err := time.Parse(time.RFC3339, sub.CreatedAt)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), created, time.Minute)

	read, err := client.ReadSubkey(t.Context(), "parent", sub.KeyID)
	require.NoError(t, err)
	require.Equal(t, sub.KeyID, read.KeyID)
	require.Equal(t, sub.Fingerprint, read.Fingerprint)

	ids, err := client.ListSubkeys(t.Context(), "parent")
	require.NoError(t, err)
	require.Equal(t, []string{sub.KeyID}, ids)

	err = client.DeleteSubkey(t.Context(), "parent", sub.KeyID)
	require.NoError(t, err)

	_, err = client.ReadSubkey(t.Context(), "parent", sub.KeyID)
	require.True(t, sigilsdk.IsNotFound(err), "Reading a deleted subkey should answer 404, got: %v", err)

	ids, err = client.ListSubkeys(t.Context(), "parent")
	require.NoError(t, err)
	require.Empty(t, ids)

	t.Logf("Subkey lifecycle completed for %s", sub.KeyID)
}

// TestListSubkeysEmpty verifies a key without subkeys answers an empty
// list, unlike listing keys where empty is 404.
func TestListSubkeysEmpty(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "bare", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	ids, err := client.ListSubkeys(t.Context(), "bare")
	require.NoError(t, err, "Listing subkeys of a subkey-less key is not an error")
	require.Empty(t, ids)
}

// TestSubkeyCreationOrder verifies list preserves creation order rather
// than sorting.
func TestSubkeyCreationOrder(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	var want []string
	for range 3 {
		sub, err := client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{KeyType: "ed25519"})
		require.NoError(t, err)
		want = append(want, sub.KeyID)
	}

	ids, err := client.ListSubkeys(t.Context(), "parent")
	require.NoError(t, err)
	require.Equal(t, want, ids)
}

// TestSubkeyAppearsInParentKeyring verifies the parent's public keyring
// grows when a subkey is added.
func TestSubkeyAppearsInParentKeyring(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	before, err := client.ReadKey(t.Context(), "parent")
	require.NoError(t, err)

	_, err = client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{KeyType: "ed25519"})
	require.NoError(t, err)

	after, err := client.ReadKey(t.Context(), "parent")
	require.NoError(t, err)
	require.NotEqual(t, before.PublicKey, after.PublicKey, "Public keyring should carry the new subkey")
	require.Equal(t, before.Fingerprint, after.Fingerprint, "Master fingerprint must not change")
}

// TestCreateSubkeyOnAbsentKey verifies the missing-parent case is a 400,
// matching the create-key family rather than the read family.
func TestCreateSubkeyOnAbsentKey(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	_, err := client.CreateSubkey(t.Context(), "phantom", sigilsdk.CreateSubkeyRequest{})
	require.Error(t, err)
	require.True(t, sigilsdk.IsInvalidRequest(err), "Subkey create on an absent key should answer 400, got: %v", err)
}

// TestReadAbsentSubkey verifies reading a subkey that never existed
// answers 404.
func TestReadAbsentSubkey(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	_, err := client.ReadSubkey(t.Context(), "parent", "00DEADBEEF00CAFE")
	require.Error(t, err)
	require.True(t, sigilsdk.IsNotFound(err), "Absent subkey should answer 404, got: %v", err)
}

// TestDeleteAbsentSubkey verifies subkey deletion is idempotent.
func TestDeleteAbsentSubkey(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	err := client.DeleteSubkey(t.Context(), "parent", "00DEADBEEF00CAFE")
	require.NoError(t, err, "Deleting an absent subkey should succeed")
}

// TestSubkeyExpiresAt verifies the expiry instant lands one window after
// creation.
func TestSubkeyExpiresAt(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	sub, err := client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{
		KeyType: "ed25519",
		Expires: 3600,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sub.ExpiresAt)

	created, err := time.Parse(time.RFC3339, sub.CreatedAt)
	require.NoError(t, err)
	expires, err := time.Parse(time.RFC3339, sub.ExpiresAt)
	require.NoError(t, err)

	require.WithinDuration(t, created.Add(time.Hour), expires, 5*time.Second)
}
