// Package gateway fronts the services with a reverse proxy: prefix
// routing, per-client rate limiting, retry for idempotent requests and
// periodic backend health checks. There is nothing transactional here,
// a dead backend simply answers 503 until its health check recovers.
package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type backend struct {
	name    string
	target  *url.URL
	proxy   *httputil.ReverseProxy
	healthy atomic.Bool
}

type route struct {
	prefix  string
	backend *backend
}

type Gateway struct {
	routes   []route
	backends []*backend
	rc       *resty.Client
}

func New() (*Gateway, error) {
	b := conf.Conf.Backends
	targets := map[string]string{
		conf.ServiceIdentity: b.Identity,
		conf.ServiceFiles:    b.Files,
		conf.ServiceFolders:  b.Folders,
		conf.ServiceQuota:    b.Quota,
		conf.ServiceAudit:    b.Audit,
		conf.ServiceSharing:  b.Sharing,
	}
	backends := make(map[string]*backend)
	for name, raw := range targets {
		if raw == "" {
			return nil, errors.Errorf("gateway requires a backend url for %s", name)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid backend url for %s", name)
		}
		bk := &backend{name: name, target: u}
		bk.proxy = httputil.NewSingleHostReverseProxy(u)
		bk.proxy.Transport = &retryTransport{
			base:     http.DefaultTransport,
			attempts: conf.Conf.Gateway.ProxyRetries,
		}
		bk.proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			utils.Log.Warnf("proxy to %s failed: %+v", name, err)
			w.WriteHeader(http.StatusBadGateway)
		}
		bk.healthy.Store(true)
		backends[name] = bk
	}
	g := &Gateway{rc: resty.New().SetTimeout(5 * time.Second)}
	for name, bk := range backends {
		g.backends = append(g.backends, bk)
		for _, p := range prefixesFor(name) {
			g.routes = append(g.routes, route{prefix: p, backend: bk})
		}
	}
	// longest prefix wins
	sort.Slice(g.routes, func(i, j int) bool {
		return len(g.routes[i].prefix) > len(g.routes[j].prefix)
	})
	return g, nil
}

// prefixesFor returns which path prefixes each service owns. Admin
// paths are split by domain because admin endpoints live with the
// service that owns the data.
func prefixesFor(service string) []string {
	switch service {
	case conf.ServiceIdentity:
		return []string{"/api/auth", "/api/me", "/api/public", "/api/admin/user", "/api/admin/users", "/api/admin/settings"}
	case conf.ServiceFiles:
		return []string{"/api/fs"}
	case conf.ServiceFolders:
		return []string{"/api/folders"}
	case conf.ServiceQuota:
		return []string{"/api/quota", "/api/admin/quota"}
	case conf.ServiceAudit:
		return []string{"/api/audit", "/api/admin/audit"}
	case conf.ServiceSharing:
		return []string{"/api/share", "/s"}
	default:
		return nil
	}
}

func (g *Gateway) match(path string) *backend {
	// service-to-service endpoints must not be reachable from outside
	if strings.Contains(path, "/internal/") {
		return nil
	}
	for _, r := range g.routes {
		if strings.HasPrefix(path, r.prefix) {
			return r.backend
		}
	}
	return nil
}

func (g *Gateway) Handle(c *gin.Context) {
	bk := g.match(c.Request.URL.Path)
	if bk == nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "no route"})
		return
	}
	if !bk.healthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": 503, "message": bk.name + " is unavailable"})
		return
	}
	bk.proxy.ServeHTTP(c.Writer, c.Request)
}

// StartHealthChecks polls every backend's /ping until stop is closed.
func (g *Gateway) StartHealthChecks(stop <-chan struct{}) {
	interval := time.Duration(conf.Conf.Gateway.HealthInterval) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			g.checkAll()
			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

func (g *Gateway) checkAll() {
	for _, bk := range g.backends {
		res, err := g.rc.R().Get(bk.target.String() + "/ping")
		healthy := err == nil && res.StatusCode() == http.StatusOK
		if healthy != bk.healthy.Load() {
			if healthy {
				utils.Log.Infof("backend %s recovered", bk.name)
			} else {
				utils.Log.Warnf("backend %s is down: %v", bk.name, err)
			}
		}
		bk.healthy.Store(healthy)
	}
}

// retryTransport retries idempotent requests; anything with a body is
// passed through untouched.
type retryTransport struct {
	base     http.RoundTripper
	attempts uint
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return t.base.RoundTrip(req)
	}
	var resp *http.Response
	err := retry.Do(
		func() error {
			r, err := t.base.RoundTrip(req)
			if err != nil {
				return err
			}
			resp = r
			return nil
		},
		retry.Attempts(t.attempts+1),
		retry.LastErrorOnly(true),
		retry.Delay(100*time.Millisecond),
	)
	return resp, err
}
