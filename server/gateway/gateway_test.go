package gateway

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGateway(t *testing.T, target string) *Gateway {
	t.Helper()
	conf.Conf = conf.DefaultConfig(t.TempDir())
	conf.Conf.Backends = conf.Backends{
		Identity: target,
		Files:    target,
		Folders:  target,
		Quota:    target,
		Audit:    target,
		Sharing:  target,
	}
	g, err := New()
	require.NoError(t, err)
	return g
}

func TestPrefixRouting(t *testing.T) {
	g := setupGateway(t, "http://127.0.0.1:1")

	cases := map[string]string{
		"/api/auth/login":        conf.ServiceIdentity,
		"/api/me":                conf.ServiceIdentity,
		"/api/admin/users":       conf.ServiceIdentity,
		"/api/fs/upload":         conf.ServiceFiles,
		"/api/folders/root":      conf.ServiceFolders,
		"/api/quota":             conf.ServiceQuota,
		"/api/admin/quota/limit": conf.ServiceQuota,
		"/api/admin/audit":       conf.ServiceAudit,
		"/api/share":             conf.ServiceSharing,
		"/s/abc123":              conf.ServiceSharing,
	}
	for path, want := range cases {
		bk := g.match(path)
		require.NotNil(t, bk, path)
		assert.Equal(t, want, bk.name, path)
	}
	assert.Nil(t, g.match("/metrics"))
}

func TestInternalPathsNotRouted(t *testing.T) {
	g := setupGateway(t, "http://127.0.0.1:1")

	// service-to-service endpoints never leave through the gateway,
	// even though their prefixes are routed
	assert.Nil(t, g.match("/api/quota/internal/reserve"))
	assert.Nil(t, g.match("/api/quota/internal/release"))
	assert.Nil(t, g.match("/api/audit/internal/record"))
	require.NotNil(t, g.match("/api/quota"))
	require.NotNil(t, g.match("/api/admin/audit"))
}

func TestRetryTransportRetriesGet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// kill the first connection mid-flight
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			c, _, err := hj.Hijack()
			require.NoError(t, err)
			c.Close()
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rt := &retryTransport{base: http.DefaultTransport, attempts: 2}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestRetryTransportDoesNotRetryPost(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rt := &retryTransport{base: http.DefaultTransport, attempts: 2}
	req, err := http.NewRequest(http.MethodPost, srv.URL, nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, int32(1), calls.Load())
}
