package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetQuota(userID uint) (*model.Quota, error) {
	var q model.Quota
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).First(&q).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &q, nil
}

func SaveQuota(q *model.Quota) error {
	return errors.WithStack(db.Save(q).Error)
}

func AddUsedBytes(userID uint, n int64) error {
	used := columnName("used_bytes")
	return errors.WithStack(db.Model(&model.Quota{}).
		Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		UpdateColumn("used_bytes", gorm.Expr(fmt.Sprintf("%s + ?", used), n)).Error)
}

// ReleaseUsedBytes subtracts n but never drives usage negative.
func ReleaseUsedBytes(userID uint, n int64) error {
	used := columnName("used_bytes")
	return errors.WithStack(db.Model(&model.Quota{}).
		Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		UpdateColumn("used_bytes",
			gorm.Expr(fmt.Sprintf("CASE WHEN %s - ? < 0 THEN 0 ELSE %s - ? END", used, used), n, n)).Error)
}

func DeleteQuotaByUser(userID uint) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Delete(&model.Quota{}).Error)
}
