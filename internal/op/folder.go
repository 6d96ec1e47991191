package op

import (
	"context"
	stdpath "path"

	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/pkg/errors"
)

// maxFolderDepth bounds every ancestor walk so a corrupted tree cannot
// loop forever.
const maxFolderDepth = 64

func GetFolder(userID uint, id string) (*model.Folder, error) {
	f, err := db.GetFolderById(id)
	if err != nil {
		return nil, err
	}
	if f.UserID != userID {
		return nil, errs.NotFound
	}
	return f, nil
}

func GetRootFolder(userID uint) (*model.Folder, error) {
	return db.GetRootFolder(userID)
}

func ListFolders(userID uint, parentID string) ([]model.Folder, error) {
	if _, err := GetFolder(userID, parentID); err != nil {
		return nil, err
	}
	return db.GetChildFolders(userID, parentID)
}

func CreateFolder(userID uint, parentID, name string) (*model.Folder, error) {
	if _, err := GetFolder(userID, parentID); err != nil {
		return nil, errors.WithMessage(err, "failed to get parent folder")
	}
	if _, err := db.GetFolderByName(userID, parentID, name); err == nil {
		return nil, errs.NameConflict
	}
	f := &model.Folder{
		ID:       utils.NewUUID(),
		UserID:   userID,
		ParentID: parentID,
		Name:     name,
	}
	if err := db.CreateFolder(f); err != nil {
		return nil, err
	}
	return f, nil
}

func RenameFolder(userID uint, id, newName string) (*model.Folder, error) {
	f, err := GetFolder(userID, id)
	if err != nil {
		return nil, err
	}
	if f.IsRoot() {
		return nil, errs.RootImmutable
	}
	if f.Name == newName {
		return f, nil
	}
	if _, err := db.GetFolderByName(userID, f.ParentID, newName); err == nil {
		return nil, errs.NameConflict
	}
	f.Name = newName
	if err := db.UpdateFolder(f); err != nil {
		return nil, err
	}
	return f, nil
}

// MoveFolder reparents a folder after checking the target is not the
// folder itself or one of its descendants.
func MoveFolder(userID uint, id, newParentID string) (*model.Folder, error) {
	f, err := GetFolder(userID, id)
	if err != nil {
		return nil, err
	}
	if f.IsRoot() {
		return nil, errs.RootImmutable
	}
	target, err := GetFolder(userID, newParentID)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get target folder")
	}
	if err := checkCycle(userID, f.ID, target); err != nil {
		return nil, err
	}
	if _, err := db.GetFolderByName(userID, newParentID, f.Name); err == nil {
		return nil, errs.NameConflict
	}
	f.ParentID = newParentID
	if err := db.UpdateFolder(f); err != nil {
		return nil, err
	}
	return f, nil
}

// checkCycle walks up from target; hitting movedID means target is
// inside the moved folder's subtree.
func checkCycle(userID uint, movedID string, target *model.Folder) error {
	cur := target
	for depth := 0; depth < maxFolderDepth; depth++ {
		if cur.ID == movedID {
			return errs.FolderCycle
		}
		if cur.IsRoot() {
			return nil
		}
		parent, err := GetFolder(userID, cur.ParentID)
		if err != nil {
			return errors.WithMessage(err, "failed to walk ancestors")
		}
		cur = parent
	}
	return errors.Errorf("folder tree deeper than %d", maxFolderDepth)
}

// FolderPath resolves the absolute path of a folder by walking up to
// the root.
func FolderPath(userID uint, id string) (string, error) {
	var parts []string
	cur, err := GetFolder(userID, id)
	if err != nil {
		return "", err
	}
	for depth := 0; depth < maxFolderDepth; depth++ {
		if cur.IsRoot() {
			p := "/"
			for i := len(parts) - 1; i >= 0; i-- {
				p = stdpath.Join(p, parts[i])
			}
			return p, nil
		}
		parts = append(parts, cur.Name)
		cur, err = GetFolder(userID, cur.ParentID)
		if err != nil {
			return "", err
		}
	}
	return "", errors.Errorf("folder tree deeper than %d", maxFolderDepth)
}

// IsInSubtree reports whether id lies under rootID (inclusive).
func IsInSubtree(userID uint, rootID, id string) (bool, error) {
	cur, err := GetFolder(userID, id)
	if err != nil {
		return false, err
	}
	for depth := 0; depth < maxFolderDepth; depth++ {
		if cur.ID == rootID {
			return true, nil
		}
		if cur.IsRoot() {
			return false, nil
		}
		cur, err = GetFolder(userID, cur.ParentID)
		if err != nil {
			return false, err
		}
	}
	return false, errors.Errorf("folder tree deeper than %d", maxFolderDepth)
}

// DeleteFolder removes the folder with everything under it. Blob and
// quota cleanup happen per file through DeleteFile.
func DeleteFolder(ctx context.Context, userID uint, id string) error {
	f, err := GetFolder(userID, id)
	if err != nil {
		return err
	}
	if f.IsRoot() {
		return errs.RootImmutable
	}
	return deleteFolderRec(ctx, userID, f, 0)
}

func deleteFolderRec(ctx context.Context, userID uint, f *model.Folder, depth int) error {
	if depth >= maxFolderDepth {
		return errors.Errorf("folder tree deeper than %d", maxFolderDepth)
	}
	children, err := db.GetChildFolders(userID, f.ID)
	if err != nil {
		return err
	}
	for i := range children {
		if err := deleteFolderRec(ctx, userID, &children[i], depth+1); err != nil {
			return err
		}
	}
	files, _, err := db.GetFilesByFolder(userID, f.ID, "", 1, model.MaxInt)
	if err != nil {
		return err
	}
	for i := range files {
		if err := DeleteFile(ctx, userID, files[i].ID); err != nil {
			return err
		}
	}
	if err := db.DeleteSharesByFolder(f.ID); err != nil {
		return err
	}
	return db.DeleteFolderById(f.ID)
}
