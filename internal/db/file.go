package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

func GetFileById(id string) (*model.FileObject, error) {
	var f model.FileObject
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("id")), id).First(&f).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &f, nil
}

func GetFileByName(userID uint, folderID, name string) (*model.FileObject, error) {
	f := model.FileObject{UserID: userID, FolderID: folderID, Name: name}
	if err := db.Where(f).First(&f).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &f, nil
}

func GetFilesByFolder(userID uint, folderID, nameLike string, pageIndex, pageSize int) (files []model.FileObject, count int64, err error) {
	fileDB := db.Model(&model.FileObject{}).
		Where(fmt.Sprintf("%s = ? and %s = ?", columnName("user_id"), columnName("folder_id")), userID, folderID)
	if nameLike != "" {
		fileDB = fileDB.Where(fmt.Sprintf("%s like ?", columnName("name")), "%"+nameLike+"%")
	}
	if err := fileDB.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed get files count")
	}
	if err := fileDB.Order(columnName("name")).Offset((pageIndex - 1) * pageSize).Limit(pageSize).Find(&files).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed find files")
	}
	return files, count, nil
}

func CreateFile(f *model.FileObject) error {
	return errors.WithStack(db.Create(f).Error)
}

func UpdateFile(f *model.FileObject) error {
	return errors.WithStack(db.Save(f).Error)
}

func DeleteFileById(id string) error {
	return errors.WithStack(db.Delete(&model.FileObject{ID: id}).Error)
}

func GetFilesByUser(userID uint) ([]model.FileObject, error) {
	var files []model.FileObject
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).Find(&files).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return files, nil
}

func DeleteFilesByUser(userID uint) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Delete(&model.FileObject{}).Error)
}

func SumFileSizes(userID uint) (int64, error) {
	var total int64
	err := db.Model(&model.FileObject{}).
		Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Select(fmt.Sprintf("coalesce(sum(%s), 0)", columnName("size"))).
		Scan(&total).Error
	return total, errors.WithStack(err)
}
