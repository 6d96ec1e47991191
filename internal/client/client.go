// Package client holds the HTTP clients services use to reach each
// other when they are not co-located. Calls are best-effort: generic
// retry, no distributed transactions.
package client

import (
	"time"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/go-resty/resty/v2"
)

func newRestyClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("X-Internal-Token", conf.Conf.Backends.Secret)
}

// Resp mirrors the envelope every service responds with.
type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Setup swaps remote backends in for every service configured with a
// URL. Must run after conf is loaded and before any request is served.
func Setup() {
	if url := conf.Conf.Backends.Quota; url != "" {
		op.Quota = NewRemoteQuota(url)
		utils.Log.Infof("quota service is remote: %s", url)
	}
	if url := conf.Conf.Backends.Audit; url != "" {
		auditRecorder = NewRemoteAudit(url)
		utils.Log.Infof("audit service is remote: %s", url)
	}
}
