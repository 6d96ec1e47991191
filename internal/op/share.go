package op

import (
	"strconv"
	"time"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/pkg/errors"
)

func CreateShare(userID uint, fileID, folderID, permission, pwd string, expiresAt *time.Time) (*model.Share, error) {
	if (fileID == "") == (folderID == "") {
		return nil, errors.New("exactly one of file_id and folder_id must be set")
	}
	if permission == "" {
		permission = model.SharePermRead
	}
	if permission != model.SharePermRead && permission != model.SharePermWrite {
		return nil, errors.Errorf("unknown permission: %s", permission)
	}
	if fileID != "" {
		if _, err := GetFile(userID, fileID); err != nil {
			return nil, err
		}
	} else {
		if _, err := GetFolder(userID, folderID); err != nil {
			return nil, err
		}
	}
	if expiresAt == nil {
		if days := defaultShareExpiryDays(); days > 0 {
			t := time.Now().AddDate(0, 0, days)
			expiresAt = &t
		}
	}
	s := &model.Share{
		ID:         utils.NewUUID(),
		UserID:     userID,
		FileID:     fileID,
		FolderID:   folderID,
		Permission: permission,
		ExpiresAt:  expiresAt,
	}
	if pwd != "" {
		hash, err := utils.HashPwd(pwd)
		if err != nil {
			return nil, err
		}
		s.PwdHash = hash
	}
	if err := db.CreateShare(s); err != nil {
		return nil, err
	}
	return s, nil
}

// defaultShareExpiryDays reads the share_default_expiry setting; 0
// means shares never expire unless the caller picks a date.
func defaultShareExpiryDays() int {
	item, err := GetSettingItemByKey(conf.ShareDefaultExpiry)
	if err != nil {
		return 0
	}
	days, _ := strconv.Atoi(item.Value)
	return days
}

func ListShares(userID uint, page model.PageReq) ([]model.Share, int64, error) {
	return db.GetSharesByUser(userID, page.Page, page.PerPage)
}

func DeleteShare(userID uint, id string, isAdmin bool) error {
	s, err := db.GetShareById(id)
	if err != nil {
		return err
	}
	if s.UserID != userID && !isAdmin {
		return errs.NotFound
	}
	return db.DeleteShareById(id)
}

// ResolveShare validates token, expiry and password. Expired and
// missing shares are indistinguishable to the caller.
func ResolveShare(id, pwd string) (*model.Share, error) {
	s, err := db.GetShareById(id)
	if err != nil {
		return nil, errs.InvalidShare
	}
	if s.Expired() {
		return nil, errs.InvalidShare
	}
	if s.Protected() && !utils.CheckPwd(s.PwdHash, pwd) {
		return nil, errs.WrongPassword
	}
	return s, nil
}

func CountShareDownload(id string) {
	if err := db.IncShareDownloads(id); err != nil {
		utils.Log.Warnf("failed to count share download %s: %+v", id, err)
	}
}
