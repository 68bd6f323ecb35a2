package openpgp_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/sigil/pkg/sigilsdk"
)

/*
 * Rate limiting tests run against the production limits: strict (5/min) on
 * key generation, moderate (20/min) on signing, lenient (100/min) on reads
 * and health. Every other test file relaxes the limits instead.
 */

// TestRateLimitKeyCreation verifies key generation is strictly limited.
func TestRateLimitKeyCreation(t *testing.T) {
	baseURL, cleanup := setupSigilContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	// The strict bucket starts with 5 tokens, so 5 creations pass.
	for i := range 5 {
		err := client.CreateKey(t.Context(), fmt.Sprintf("burst-%d", i), sigilsdk.CreateKeyRequest{KeyType: "ed25519"})
		require.NoError(t, err, "Creation %d should not be rate limited", i+1)
	}

	// The bucket refills at 5/min, so the next attempts are rejected.
	var limited bool
	for i := range 3 {
		err := client.CreateKey(t.Context(), fmt.Sprintf("over-%d", i), sigilsdk.CreateKeyRequest{KeyType: "ed25519"})
		if err != nil && strings.Contains(err.Error(), "429") {
			limited = true
			break
		}
	}
	require.True(t, limited, "Key creation should be rate limited after the burst")

	t.Logf("Key creation rate limited after 5 requests")
}

// TestRateLimitSigning verifies signing carries the moderate limit.
func TestRateLimitSigning(t *testing.T) {
	baseURL, cleanup := setupSigilContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	mustCreateKey(t, client, "signer", sigilsdk.CreateKeyRequest{KeyType: "ed25519"})

	// The moderate bucket starts with 20 tokens.
	for i := range 20 {
		_, err := client.Sign(t.Context(), "signer", sigilsdk.SignRequest{Input: b64("payload")})
		require.NoError(t, err, "Sign %d should not be rate limited", i+1)
	}

	var limited bool
	for range 3 {
		_, err := client.Sign(t.Context(), "signer", sigilsdk.SignRequest{Input: b64("payload")})
		if err != nil && strings.Contains(err.Error(), "429") {
			limited = true
			break
		}
	}
	require.True(t, limited, "Signing should be rate limited after the burst")

	t.Logf("Signing rate limited after 20 requests")
}

// TestRateLimitHealthEndpoints verifies health checks have lenient limits,
// since monitoring systems poll them frequently.
func TestRateLimitHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupSigilContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := sigilsdk.NewClient(baseURL)

	for i := range 30 {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err, "Liveness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)

		health, err = client.GetReadiness(t.Context())
		require.NoError(t, err, "Readiness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)
	}

	t.Logf("Made 30 requests each to /livez and /readyz without rate limiting")
}

// TestRateLimitHeadersPresent verifies a limited response tells the caller
// when to come back.
func TestRateLimitHeadersPresent(t *testing.T) {
	baseURL, cleanup := setupSigilContainerWithDefaultRateLimits(t)
	defer cleanup()

	// Hammer key creation with raw requests until limited. Repeat creates
	// of the same name fail as duplicates but still consume rate tokens.
	var limitedResp *http.Response
	for range 8 {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost,
			baseURL+"/v1/openpgp/keys/rl-probe",
			strings.NewReader(`{"key_type": "ed25519"}`))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			limitedResp = resp
			break
		}
	}

	require.NotNil(t, limitedResp, "Expected a 429 within the attempt budget")
	require.NotEmpty(t, limitedResp.Header.Get("Retry-After"), "429 should carry Retry-After")
	require.NotEmpty(t, limitedResp.Header.Get("X-RateLimit-Limit"), "429 should carry X-RateLimit-Limit")

	t.Logf("Rate limited response carried Retry-After=%s", limitedResp.Header.Get("Retry-After"))
}
