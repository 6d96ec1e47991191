package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func GetShareById(id string) (*model.Share, error) {
	var s model.Share
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("id")), id).First(&s).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &s, nil
}

func GetSharesByUser(userID uint, pageIndex, pageSize int) (shares []model.Share, count int64, err error) {
	shareDB := db.Model(&model.Share{}).Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID)
	if err := shareDB.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed get shares count")
	}
	if err := shareDB.Order(fmt.Sprintf("%s desc", columnName("created_at"))).
		Offset((pageIndex - 1) * pageSize).Limit(pageSize).Find(&shares).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed find shares")
	}
	return shares, count, nil
}

func CreateShare(s *model.Share) error {
	return errors.WithStack(db.Create(s).Error)
}

func DeleteShareById(id string) error {
	return errors.WithStack(db.Delete(&model.Share{ID: id}).Error)
}

func DeleteSharesByFile(fileID string) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("file_id")), fileID).
		Delete(&model.Share{}).Error)
}

func DeleteSharesByFolder(folderID string) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("folder_id")), folderID).
		Delete(&model.Share{}).Error)
}

func DeleteSharesByUser(userID uint) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Delete(&model.Share{}).Error)
}

func IncShareDownloads(id string) error {
	return errors.WithStack(db.Model(&model.Share{}).
		Where(fmt.Sprintf("%s = ?", columnName("id")), id).
		UpdateColumn("downloads", gorm.Expr(fmt.Sprintf("%s + 1", columnName("downloads")))).Error)
}
