package client

import (
	"github.com/avast/retry-go"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// AuditRecorder is write-only and best-effort: recording never blocks
// or fails the request being audited.
type AuditRecorder interface {
	Record(e *model.AuditEntry)
}

type localAudit struct{}

func (localAudit) Record(e *model.AuditEntry) {
	go func() {
		if err := op.CreateAuditEntry(e); err != nil {
			utils.Log.Warnf("failed to record audit entry: %+v", err)
		}
	}()
}

type remoteAudit struct {
	rc *resty.Client
}

func NewRemoteAudit(baseURL string) *remoteAudit {
	return &remoteAudit{rc: newRestyClient(baseURL)}
}

func (a *remoteAudit) Record(e *model.AuditEntry) {
	go func() {
		err := retry.Do(
			func() error {
				res, err := a.rc.R().SetBody(e).Post("/api/audit/internal/record")
				if err != nil {
					return errors.WithStack(err)
				}
				if res.IsError() {
					return errors.Errorf("audit service returned %d", res.StatusCode())
				}
				return nil
			},
			retry.Attempts(3),
			retry.LastErrorOnly(true),
		)
		if err != nil {
			utils.Log.Warnf("failed to record audit entry: %+v", err)
		}
	}()
}

var auditRecorder AuditRecorder = localAudit{}

func Audit() AuditRecorder {
	return auditRecorder
}
