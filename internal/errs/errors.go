package errs

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	NotFound         = errors.New("object not found")
	EmptyUsername    = errors.New("username is empty")
	EmptyPassword    = errors.New("password is empty")
	WrongPassword    = errors.New("password is incorrect")
	UserDisabled     = errors.New("user is disabled")
	UserExists       = errors.New("user already exists")
	NameConflict     = errors.New("name already exists in this folder")
	QuotaExceeded    = errors.New("storage quota exceeded")
	FolderCycle      = errors.New("cannot move a folder into its own subtree")
	RootImmutable    = errors.New("root folder cannot be modified")
	InvalidShare     = errors.New("invalid share link")
	RegisterDisabled = errors.New("registration is disabled")
	PermissionDenied = errors.New("permission denied")
)

func IsNotFound(err error) bool {
	return errors.Is(err, NotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
