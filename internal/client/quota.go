package client

import (
	"context"
	"net/http"

	"github.com/avast/retry-go"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type remoteQuota struct {
	rc *resty.Client
}

func NewRemoteQuota(baseURL string) *remoteQuota {
	return &remoteQuota{rc: newRestyClient(baseURL)}
}

type quotaReq struct {
	UserID uint  `json:"user_id"`
	Bytes  int64 `json:"bytes"`
}

func (q *remoteQuota) Reserve(ctx context.Context, userID uint, n int64) error {
	return q.call(ctx, "/api/quota/internal/reserve", userID, n)
}

func (q *remoteQuota) Release(ctx context.Context, userID uint, n int64) error {
	return q.call(ctx, "/api/quota/internal/release", userID, n)
}

// The quota service answers HTTP 200 with the real code inside the
// envelope, the same shape every other service responds with.
func (q *remoteQuota) call(ctx context.Context, path string, userID uint, n int64) error {
	return retry.Do(
		func() error {
			var body Resp
			res, err := q.rc.R().
				SetContext(ctx).
				SetBody(quotaReq{UserID: userID, Bytes: n}).
				SetResult(&body).
				Post(path)
			if err != nil {
				return errors.WithStack(err)
			}
			if res.StatusCode() != http.StatusOK {
				return errors.Errorf("quota service returned %d: %s", res.StatusCode(), res.String())
			}
			switch body.Code {
			case http.StatusOK:
				return nil
			case http.StatusRequestEntityTooLarge:
				return errs.QuotaExceeded
			default:
				return errors.Errorf("quota service refused: %d %s", body.Code, body.Message)
			}
		},
		retry.Attempts(3),
		retry.LastErrorOnly(true),
		// a rejected reservation is an answer, not a failure
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, errs.QuotaExceeded)
		}),
	)
}
