package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

func GetSettingItems() ([]model.SettingItem, error) {
	var items []model.SettingItem
	if err := db.Find(&items).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return items, nil
}

func GetSettingItemByKey(key string) (*model.SettingItem, error) {
	var item model.SettingItem
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("key")), key).First(&item).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &item, nil
}

func SaveSettingItems(items []model.SettingItem) (err error) {
	return errors.WithStack(db.Save(items).Error)
}

func SaveSettingItem(item *model.SettingItem) error {
	return errors.WithStack(db.Save(item).Error)
}

func DeleteSettingItemByKey(key string) error {
	return errors.WithStack(db.Delete(&model.SettingItem{Key: key}).Error)
}
