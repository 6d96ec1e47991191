package bootstrap

import (
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/pkg/utils"
)

func InitData() {
	initUsers()
	initSettings()
}

func initUsers() {
	count, err := db.CountUsers()
	if err != nil {
		utils.Log.Fatalf("failed to count users: %+v", err)
	}
	if count > 0 {
		return
	}
	pwd := utils.RandomString(12)
	admin := &model.User{
		Username: "admin",
		Role:     model.ADMIN,
		BasePath: "/",
	}
	if err := op.RegisterUser(admin, pwd); err != nil {
		utils.Log.Fatalf("failed to create admin user: %+v", err)
	}
	utils.Log.Infof("initial admin user created, username: admin, password: %s", pwd)
}

func initSettings() {
	initialSettingItems := []model.SettingItem{
		{Key: conf.SiteTitle, Value: "drived", Flag: conf.FlagPublic},
		{Key: conf.Announcement, Value: "", Flag: conf.FlagPublic},
		{Key: conf.AllowRegister, Value: "true", Flag: conf.FlagPublic},
		{Key: conf.ExternalPort, Value: "5344", Flag: conf.FlagPrivate},
		{Key: conf.DefaultQuotaLimit, Value: "10737418240", Flag: conf.FlagPrivate},
		{Key: conf.AuditRetentionDays, Value: "90", Flag: conf.FlagPrivate},
		{Key: conf.ShareDefaultExpiry, Value: "0", Flag: conf.FlagPrivate},
	}
	for i := range initialSettingItems {
		item := &initialSettingItems[i]
		if _, err := op.GetSettingItemByKey(item.Key); err == nil {
			continue
		}
		if err := op.SaveSettingItem(item); err != nil {
			utils.Log.Fatalf("failed to save setting item %s: %+v", item.Key, err)
		}
	}
}
