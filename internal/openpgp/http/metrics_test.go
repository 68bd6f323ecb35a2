package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/livez", "/livez"},
		{"/metrics", "/metrics"},
		{"/v1/openpgp/keys", "/v1/openpgp/keys"},
		{"/v1/openpgp/keys/release", "/v1/openpgp/keys/:name"},
		{"/v1/openpgp/keys/release/subkeys", "/v1/openpgp/keys/:name/subkeys"},
		{"/v1/openpgp/keys/release/subkeys/99DEFC6C01A2B3C4", "/v1/openpgp/keys/:name/subkeys/:key_id"},
		{"/v1/openpgp/sign/release", "/v1/openpgp/sign/:name"},
		{"/v1/openpgp/verify/release", "/v1/openpgp/verify/:name"},
		{"/v1/openpgp/export/release", "/v1/openpgp/export/:name"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, normalizePath(tc.in), "path %q", tc.in)
	}
}
