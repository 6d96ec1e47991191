package op

import "context"

// QuotaBackend is what the files service reserves usage against. The
// default talks to the co-located op layer; bootstrap swaps in an HTTP
// client when the quota service runs remotely.
type QuotaBackend interface {
	Reserve(ctx context.Context, userID uint, n int64) error
	Release(ctx context.Context, userID uint, n int64) error
}

type localQuota struct{}

func (localQuota) Reserve(_ context.Context, userID uint, n int64) error {
	return ReserveQuota(userID, n)
}

func (localQuota) Release(_ context.Context, userID uint, n int64) error {
	return ReleaseQuota(userID, n)
}

var Quota QuotaBackend = localQuota{}
