package op

import (
	"time"

	"github.com/Xhofe/go-cache"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/model"
)

var settingCache = cache.NewMemCache(cache.WithShards[*model.SettingItem](4))

func GetSettingItems() ([]model.SettingItem, error) {
	return db.GetSettingItems()
}

func GetSettingItemByKey(key string) (*model.SettingItem, error) {
	if item, ok := settingCache.Get(key); ok {
		return item, nil
	}
	item, err := db.GetSettingItemByKey(key)
	if err != nil {
		return nil, err
	}
	settingCache.Set(key, item, cache.WithEx[*model.SettingItem](time.Hour))
	return item, nil
}

func SaveSettingItem(item *model.SettingItem) error {
	settingCache.Del(item.Key)
	return db.SaveSettingItem(item)
}

func SaveSettingItems(items []model.SettingItem) error {
	for i := range items {
		settingCache.Del(items[i].Key)
	}
	return db.SaveSettingItems(items)
}

func DeleteSettingItemByKey(key string) error {
	settingCache.Del(key)
	return db.DeleteSettingItemByKey(key)
}
