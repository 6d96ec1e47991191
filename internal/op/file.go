package op

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/pkg/errors"
)

func GetFile(userID uint, id string) (*model.FileObject, error) {
	f, err := db.GetFileById(id)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, errs.NotFound
	}
	return f, nil
}

func ListFiles(userID uint, folderID, nameLike string, page model.PageReq) ([]model.FileObject, int64, error) {
	if _, err := GetFolder(userID, folderID); err != nil {
		return nil, 0, err
	}
	return db.GetFilesByFolder(userID, folderID, nameLike, page.Page, page.PerPage)
}

// UploadFile reserves quota first, then writes the blob, then commits
// the row. Any later failure unwinds what already happened.
func UploadFile(ctx context.Context, userID uint, folderID, name, mimeType string, r io.Reader, size int64) (*model.FileObject, error) {
	if _, err := GetFolder(userID, folderID); err != nil {
		return nil, errors.WithMessage(err, "failed to get folder")
	}
	if _, err := db.GetFileByName(userID, folderID, name); err == nil {
		return nil, errs.NameConflict
	}
	if err := Quota.Reserve(ctx, userID, size); err != nil {
		return nil, err
	}
	d, err := CurrentDriver()
	if err != nil {
		releaseQuota(ctx, userID, size)
		return nil, err
	}
	key := utils.NewUUID()
	hasher := sha256.New()
	if err := d.Put(ctx, key, io.TeeReader(r, hasher), size); err != nil {
		releaseQuota(ctx, userID, size)
		return nil, errors.WithMessage(err, "failed to store blob")
	}
	f := &model.FileObject{
		ID:        utils.NewUUID(),
		UserID:    userID,
		FolderID:  folderID,
		Name:      name,
		Size:      size,
		MimeType:  mimeType,
		Hash:      hex.EncodeToString(hasher.Sum(nil)),
		Driver:    conf.Conf.Storage.Driver,
		ObjectKey: key,
	}
	if err := db.CreateFile(f); err != nil {
		if derr := d.Delete(ctx, key); derr != nil {
			utils.Log.Warnf("failed to clean blob %s after create failure: %+v", key, derr)
		}
		releaseQuota(ctx, userID, size)
		return nil, err
	}
	return f, nil
}

func releaseQuota(ctx context.Context, userID uint, n int64) {
	if err := Quota.Release(ctx, userID, n); err != nil {
		utils.Log.Warnf("failed to release %d bytes for user %d: %+v", n, userID, err)
	}
}

func DownloadFile(ctx context.Context, userID uint, id string) (*model.FileObject, io.ReadCloser, error) {
	f, err := GetFile(userID, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := OpenFileContent(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return f, rc, nil
}

// OpenFileContent streams the blob regardless of who asks; callers are
// responsible for the permission check.
func OpenFileContent(ctx context.Context, f *model.FileObject) (io.ReadCloser, error) {
	d, err := CurrentDriver()
	if err != nil {
		return nil, err
	}
	return d.Get(ctx, f.ObjectKey)
}

func RenameFile(userID uint, id, newName string) (*model.FileObject, error) {
	f, err := GetFile(userID, id)
	if err != nil {
		return nil, err
	}
	if f.Name == newName {
		return f, nil
	}
	if _, err := db.GetFileByName(userID, f.FolderID, newName); err == nil {
		return nil, errs.NameConflict
	}
	f.Name = newName
	if err := db.UpdateFile(f); err != nil {
		return nil, err
	}
	return f, nil
}

func MoveFile(userID uint, id, folderID string) (*model.FileObject, error) {
	f, err := GetFile(userID, id)
	if err != nil {
		return nil, err
	}
	if _, err := GetFolder(userID, folderID); err != nil {
		return nil, errors.WithMessage(err, "failed to get target folder")
	}
	if _, err := db.GetFileByName(userID, folderID, f.Name); err == nil {
		return nil, errs.NameConflict
	}
	f.FolderID = folderID
	if err := db.UpdateFile(f); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFile removes the row first so quota is released exactly once
// even when the blob delete has to be retried by hand later.
func DeleteFile(ctx context.Context, userID uint, id string) error {
	f, err := GetFile(userID, id)
	if err != nil {
		return err
	}
	if err := db.DeleteSharesByFile(f.ID); err != nil {
		return err
	}
	if err := db.DeleteFileById(f.ID); err != nil {
		return err
	}
	releaseQuota(ctx, userID, f.Size)
	if d, err := CurrentDriver(); err == nil {
		if err := d.Delete(ctx, f.ObjectKey); err != nil {
			utils.Log.Warnf("failed to delete blob %s: %+v", f.ObjectKey, err)
		}
	}
	return nil
}
