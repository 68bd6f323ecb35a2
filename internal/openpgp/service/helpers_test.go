package service_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/sigil/internal/openpgp/domain"
	"github.com/aussiebroadwan/sigil/internal/openpgp/service"
	"github.com/aussiebroadwan/sigil/internal/openpgp/store/drivers/sqlite"
)

// fakeClock lets expiry tests move time instead of sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*service.Service, *fakeClock) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return service.NewWithClock(st, time.Minute, clk.Now), clk
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// mustCreate mints an ed25519 key, the fastest type to generate.
func mustCreate(t *testing.T, svc *service.Service, name string, extra domain.Params) {
	t.Helper()

	p := domain.Params{"key_type": "ed25519"}
	for k, v := range extra {
		p[k] = v
	}
	require.NoError(t, svc.CreateKey(context.Background(), name, p))
}
