package op

import (
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

// GetSessionByKey sweeps expired rows lazily: an expired session is
// deleted on read and reported as missing.
func GetSessionByKey(key string) (*model.Session, error) {
	item, err := db.GetSessionByKey(key)
	if err != nil {
		return nil, err
	}
	if item.Expired() {
		_ = db.DeleteSessionByKey(key)
		return nil, errs.NotFound
	}
	return item, nil
}

func GetSessionsByUser(userID uint) ([]model.Session, error) {
	return db.GetSessionsByUser(userID)
}

func SaveSession(item *model.Session) (err error) {
	// update
	if err = db.SaveSession(item); err != nil {
		return err
	}
	return nil
}

func DeleteSessionByKey(key string) error {
	_, err := db.GetSessionByKey(key)
	if err != nil {
		return errors.WithMessage(err, "failed to get session")
	}
	return db.DeleteSessionByKey(key)
}

func DeleteSessionsByUser(userID uint) error {
	return db.DeleteSessionsByUser(userID)
}
