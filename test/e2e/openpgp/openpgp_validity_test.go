package openpgp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

/*
 * Time-bounded validity tests. These use short real expirations and sleep
 * past them, so they are the slowest part of the suite. Validity is
 * re-evaluated at verification time, which is what makes invalidation
 * retroactive: a verdict given once is not a promise.
 */

// TestKeyExpiryInvalidatesSignatures verifies signatures stop checking out
// once their key's validity window has passed, and that an expired key
// refuses to sign.
func TestKeyExpiryInvalidatesSignatures(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "ephemeral", sigilsdk.CreateKeyRequest{
		KeyType: "ed25519",
		Expires: 3,
	})

	sig, err := client.Sign(t.Context(), "ephemeral", sigilsdk.SignRequest{Input: b64("payload")})
	require.NoError(t, err)

	verdict, err := client.Verify(t.Context(), "ephemeral", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: sig.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid, "Signature should check out inside the key's window")

	time.Sleep(5 * time.Second)

	verdict, err = client.Verify(t.Context(), "ephemeral", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: sig.Signature,
	})
	require.NoError(t, err)
	require.False(t, verdict.Valid, "Key expiry must invalidate earlier signatures")

	// The key still reads, but refuses new signatures.
	_, err = client.ReadKey(t.Context(), "ephemeral")
	require.NoError(t, err, "Expiry gates signing, not reads")

	_, err = client.Sign(t.Context(), "ephemeral", sigilsdk.SignRequest{Input: b64("payload")})
	require.Error(t, err)
	require.True(t, sigilsdk.IsInvalidRequest(err), "Signing with an expired key should answer 400, got: %v", err)

	t.Logf("Key expiry correctly invalidated signatures")
}

// TestSignatureOwnExpiry verifies a signature's own validity window is
// independent of its key's.
func TestSignatureOwnExpiry(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "signer", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	sig, err := client.Sign(t.Context(), "signer", sigilsdk.SignRequest{
		Input:   b64("payload"),
		Expires: 2,
	})
	require.NoError(t, err)

	verdict, err := client.Verify(t.Context(), "signer", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: sig.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid)

	time.Sleep(4 * time.Second)

	verdict, err = client.Verify(t.Context(), "signer", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: sig.Signature,
	})
	require.NoError(t, err)
	require.False(t, verdict.Valid, "The signature's own window has passed")

	// The key is unexpired, so fresh signatures still work.
	fresh, err := client.Sign(t.Context(), "signer", sigilsdk.SignRequest{Input: b64("payload")})
	require.NoError(t, err)

	verdict, err = client.Verify(t.Context(), "signer", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: fresh.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid)
}

// TestSubkeyExpiryIndependentOfParent verifies an expired subkey takes its
// signatures with it while the parent keeps working.
func TestSubkeyExpiryIndependentOfParent(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	_, err := client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{
		KeyType: "ed25519",
		Expires: 2,
	})
	require.NoError(t, err)

	subSig, err := client.Sign(t.Context(), "parent", sigilsdk.SignRequest{Input: b64("payload")})
	require.NoError(t, err)

	verdict, err := client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: subSig.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid)

	time.Sleep(4 * time.Second)

	verdict, err = client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: subSig.Signature,
	})
	require.NoError(t, err)
	require.False(t, verdict.Valid, "The issuing subkey has expired")

	// With the subkey dead, signing falls back to the unexpired master.
	masterSig, err := client.Sign(t.Context(), "parent", sigilsdk.SignRequest{Input: b64("payload")})
	require.NoError(t, err)

	verdict, err = client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: masterSig.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid, "The parent key is unaffected by subkey expiry")
}

// TestDeletedSubkeyInvalidatesItsSignatures verifies deletion withdraws a
// subkey's signing authority retroactively without touching signatures the
// master issued itself.
func TestDeletedSubkeyInvalidatesItsSignatures(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "parent", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	// Signed before any subkey exists, so the master is the issuer.
	masterSig, err := client.Sign(t.Context(), "parent", sigilsdk.SignRequest{Input: b64("by master")})
	require.NoError(t, err)

	sub, err := client.CreateSubkey(t.Context(), "parent", sigilsdk.CreateSubkeyRequest{KeyType: "ed25519"})
	require.NoError(t, err)

	subSig, err := client.Sign(t.Context(), "parent", sigilsdk.SignRequest{Input: b64("by subkey")})
	require.NoError(t, err)

	for _, check := range []struct {
		input string
		sig   string
	}{
		{"by master", masterSig.Signature},
		{"by subkey", subSig.Signature},
	} {
		verdict, err := client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
			Input:     b64(check.input),
			Signature: check.sig,
		})
		require.NoError(t, err)
		require.True(t, verdict.Valid)
	}

	err = client.DeleteSubkey(t.Context(), "parent", sub.KeyID)
	require.NoError(t, err)

	verdict, err := client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
		Input:     b64("by subkey"),
		Signature: subSig.Signature,
	})
	require.NoError(t, err)
	require.False(t, verdict.Valid, "The issuing subkey is gone")

	verdict, err = client.Verify(t.Context(), "parent", sigilsdk.VerifyRequest{
		Input:     b64("by master"),
		Signature: masterSig.Signature,
	})
	require.NoError(t, err)
	require.True(t, verdict.Valid, "Master-issued signatures survive subkey deletion")

	t.Logf("Subkey deletion correctly withdrew its signatures")
}

// TestKeyRecreationInvalidatesOldSignatures verifies a recreated name is a
// new key: signatures from the deleted keypair never verify again.
func TestKeyRecreationInvalidatesOldSignatures(t *testing.T) {
	baseURL, cleanup := setupSigilContainer(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "reborn", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	sig, err := client.Sign(t.Context(), "reborn", sigilsdk.SignRequest{Input: b64("payload")})
	require.NoError(t, err)

	err = client.DeleteKey(t.Context(), "reborn")
	require.NoError(t, err)

	mustCreateKey(t, client, "reborn", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	verdict, err := client.Verify(t.Context(), "reborn", sigilsdk.VerifyRequest{
		Input:     b64("payload"),
		Signature: sig.Signature,
	})
	require.NoError(t, err)
	require.False(t, verdict.Valid, "The recreated key is a different keypair")
}
