package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

func GetFolderById(id string) (*model.Folder, error) {
	var f model.Folder
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("id")), id).First(&f).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &f, nil
}

func GetRootFolder(userID uint) (*model.Folder, error) {
	var f model.Folder
	if err := db.Where(fmt.Sprintf("%s = ? and %s = ''", columnName("user_id"), columnName("parent_id")), userID).
		First(&f).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &f, nil
}

func GetChildFolders(userID uint, parentID string) ([]model.Folder, error) {
	var folders []model.Folder
	if err := db.Where(fmt.Sprintf("%s = ? and %s = ?", columnName("user_id"), columnName("parent_id")), userID, parentID).
		Order(columnName("name")).Find(&folders).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return folders, nil
}

func GetFolderByName(userID uint, parentID, name string) (*model.Folder, error) {
	f := model.Folder{UserID: userID, ParentID: parentID, Name: name}
	if err := db.Where(f).First(&f).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &f, nil
}

func CreateFolder(f *model.Folder) error {
	return errors.WithStack(db.Create(f).Error)
}

func UpdateFolder(f *model.Folder) error {
	return errors.WithStack(db.Save(f).Error)
}

func DeleteFolderById(id string) error {
	return errors.WithStack(db.Delete(&model.Folder{ID: id}).Error)
}

func DeleteFoldersByUser(userID uint) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Delete(&model.Folder{}).Error)
}
