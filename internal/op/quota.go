package op

import (
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetQuota(userID uint) (*model.Quota, error) {
	q, err := db.GetQuota(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// users created before quota rows existed get one on demand,
		// with the same default limit a fresh registration gets
		q = &model.Quota{UserID: userID, LimitBytes: defaultQuotaLimit()}
		if err := db.SaveQuota(q); err != nil {
			return nil, err
		}
		return q, nil
	}
	return q, err
}

func SetQuotaLimit(userID uint, limit int64) error {
	q, err := GetQuota(userID)
	if err != nil {
		return err
	}
	q.LimitBytes = limit
	return db.SaveQuota(q)
}

// ReserveQuota checks the limit and adds n to usage. The check and the
// add are not one statement; the add itself is a single UPDATE so
// concurrent reserves never lose bytes, they can only briefly overshoot
// the limit check.
func ReserveQuota(userID uint, n int64) error {
	if n < 0 {
		return errors.New("cannot reserve negative bytes")
	}
	q, err := GetQuota(userID)
	if err != nil {
		return err
	}
	if q.Exceeds(n) {
		return errs.QuotaExceeded
	}
	return db.AddUsedBytes(userID, n)
}

func ReleaseQuota(userID uint, n int64) error {
	if n < 0 {
		return errors.New("cannot release negative bytes")
	}
	q, err := GetQuota(userID)
	if err != nil {
		return err
	}
	if q.UsedBytes < n {
		utils.Log.Warnf("quota release clamped for user %d: used %d, release %d", userID, q.UsedBytes, n)
	}
	return db.ReleaseUsedBytes(userID, n)
}

// RecalcQuota resets usage to the sum of the user's file sizes.
func RecalcQuota(userID uint) (*model.Quota, error) {
	total, err := db.SumFileSizes(userID)
	if err != nil {
		return nil, err
	}
	q, err := GetQuota(userID)
	if err != nil {
		return nil, err
	}
	q.UsedBytes = total
	if err := db.SaveQuota(q); err != nil {
		return nil, err
	}
	return q, nil
}
