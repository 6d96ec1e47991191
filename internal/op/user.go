package op

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Xhofe/go-cache"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/pkg/errors"
)

var userCache = cache.NewMemCache(cache.WithShards[*model.User](2))

// cache keys are lowercased so Alice and alice share one entry, the
// same way the unique check treats them as one name
func userCacheKey(username string) string {
	return strings.ToLower(username)
}

func GetUserByName(username string) (*model.User, error) {
	if username == "" {
		return nil, errs.EmptyUsername
	}
	if user, ok := userCache.Get(userCacheKey(username)); ok {
		return user, nil
	}
	user, err := db.GetUserByName(username)
	if err != nil {
		return nil, err
	}
	userCache.Set(userCacheKey(username), user, cache.WithEx[*model.User](time.Hour))
	return user, nil
}

func GetUserById(id uint) (*model.User, error) {
	return db.GetUserById(id)
}

func GetUsers(pageIndex, pageSize int) ([]model.User, int64, error) {
	return db.GetUsers(pageIndex, pageSize)
}

// RegisterUser creates the user together with its root folder and
// quota row so a fresh account is immediately usable.
func RegisterUser(u *model.User, plainPwd string) error {
	if plainPwd == "" {
		return errs.EmptyPassword
	}
	if _, err := db.GetUserByName(u.Username); err == nil {
		return errs.UserExists
	}
	hash, err := utils.HashPwd(plainPwd)
	if err != nil {
		return err
	}
	u.PwdHash = hash
	if err := db.CreateUser(u); err != nil {
		return err
	}
	root := &model.Folder{
		ID:     utils.NewUUID(),
		UserID: u.ID,
		Name:   "/",
	}
	if err := db.CreateFolder(root); err != nil {
		return errors.WithMessage(err, "failed create root folder")
	}
	q := &model.Quota{
		UserID:     u.ID,
		LimitBytes: defaultQuotaLimit(),
	}
	return errors.WithMessage(db.SaveQuota(q), "failed create quota")
}

func defaultQuotaLimit() int64 {
	item, err := GetSettingItemByKey(conf.DefaultQuotaLimit)
	if err != nil {
		return 0
	}
	limit, _ := strconv.ParseInt(item.Value, 10, 64)
	return limit
}

func UpdateUser(u *model.User) error {
	old, err := db.GetUserById(u.ID)
	if err != nil {
		return err
	}
	userCache.Del(userCacheKey(old.Username))
	return db.UpdateUser(u)
}

// ChangePassword invalidates every other login; keepSessionKey is the
// caller's own session and survives ("" kills them all).
func ChangePassword(u *model.User, plainPwd, keepSessionKey string) error {
	if plainPwd == "" {
		return errs.EmptyPassword
	}
	hash, err := utils.HashPwd(plainPwd)
	if err != nil {
		return err
	}
	u.PwdHash = hash
	if err := UpdateUser(u); err != nil {
		return err
	}
	if keepSessionKey == "" {
		return db.DeleteSessionsByUser(u.ID)
	}
	return db.DeleteSessionsByUserExcept(u.ID, keepSessionKey)
}

func DeleteUserById(id uint) error {
	old, err := db.GetUserById(id)
	if err != nil {
		return errors.WithMessage(err, "failed to get user")
	}
	if old.IsAdmin() {
		return errs.PermissionDenied
	}
	userCache.Del(userCacheKey(old.Username))
	if err := db.DeleteSessionsByUser(id); err != nil {
		return err
	}
	if err := db.DeleteQuotaByUser(id); err != nil {
		return err
	}
	if err := db.DeleteSharesByUser(id); err != nil {
		return err
	}
	// blobs go best effort, rows go unconditionally
	if files, err := db.GetFilesByUser(id); err == nil {
		if d, derr := CurrentDriver(); derr == nil {
			for i := range files {
				if err := d.Delete(context.Background(), files[i].ObjectKey); err != nil {
					utils.Log.Warnf("failed to delete blob %s: %+v", files[i].ObjectKey, err)
				}
			}
		}
	}
	if err := db.DeleteFilesByUser(id); err != nil {
		return err
	}
	if err := db.DeleteFoldersByUser(id); err != nil {
		return err
	}
	return db.DeleteUserById(id)
}
