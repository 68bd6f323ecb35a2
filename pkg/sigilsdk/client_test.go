package sigilsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadKeyDecodesEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/openpgp/keys/release", r.URL.Path)
		require.Equal(t, "secret-token", r.Header.Get("X-Sigil-Token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"request_id": "01J0000000000000000000000",
			"data": {
				"fingerprint": "ABCDEF0123456789ABCDEF0123456789ABCDEF01",
				"public_key": "-----BEGIN PGP PUBLIC KEY BLOCK-----",
				"exportable": true
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.Token = "secret-token"

	key, err := client.ReadKey(context.Background(), "release")
	require.NoError(t, err)
	require.Equal(t, "ABCDEF0123456789ABCDEF0123456789ABCDEF01", key.Fingerprint)
	require.Contains(t, key.PublicKey, "PGP PUBLIC KEY")
	require.True(t, key.Exportable)
}

func TestListKeysUnwrapsNames(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/openpgp/keys", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"request_id": "x", "data": {"keys": ["alpha", "beta"]}}`))
	}))
	defer srv.Close()

	keys, err := NewClient(srv.URL).ListKeys(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, keys)
}

func TestCreateKeyAcceptsNullData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"request_id": "x", "data": null}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).CreateKey(context.Background(), "release", CreateKeyRequest{KeyType: "ed25519"})
	require.NoError(t, err)
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "invalid request",
			status:  http.StatusBadRequest,
			body:    `{"errors": ["invalid request: key \"x\" already exists"]}`,
			check:   IsInvalidRequest,
			message: "already exists",
		},
		{
			name:    "unsupported parameter",
			status:  http.StatusBadRequest,
			body:    `{"errors": ["unsupported parameter: pss"]}`,
			check:   IsUnsupportedParam,
			message: "unsupported parameter",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"errors": ["not found: key \"x\" not found"]}`,
			check:   IsNotFound,
			message: "not found",
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			body:    `{"errors": ["forbidden: key \"x\" is not exportable"]}`,
			check:   IsForbidden,
			message: "not exportable",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).ReadKey(context.Background(), "x")
			require.Error(t, err)
			require.True(t, tc.check(err))
			require.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestErrorWithoutBodyStillUsable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ReadKey(context.Background(), "x")
	require.Error(t, err)

	require.False(t, IsNotFound(err))
	require.Contains(t, err.Error(), "HTTP 500")
}

func TestRequiredParamsCheckedLocally(t *testing.T) {
	t.Parallel()

	// Any request reaching the server fails the test: required-parameter
	// checks must short-circuit before the network.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not have been sent")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Sign(ctx, "k", SignRequest{})
	var paramErr *ParamError
	require.ErrorAs(t, err, &paramErr)
	require.Equal(t, "input", paramErr.Param)

	_, err = client.Verify(ctx, "k", VerifyRequest{Input: "aGk="})
	require.ErrorAs(t, err, &paramErr)
	require.Equal(t, "signature", paramErr.Param)
}

func TestGetReadinessDecodesChecks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/readyz", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok", "uptime": "5s", "version": "test", "checks": {"store": "ok"}}`))
	}))
	defer srv.Close()

	health, err := NewClient(srv.URL).GetReadiness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Store)
}
