package db

import (
	"fmt"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

func GetSessionByKey(key string) (*model.Session, error) {
	var session model.Session
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("key")), key).First(&session).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return &session, nil
}

func GetSessionsByUser(userID uint) ([]model.Session, error) {
	var sessions []model.Session
	if err := db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).Find(&sessions).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	return sessions, nil
}

func SaveSession(item *model.Session) error {
	return errors.WithStack(db.Save(item).Error)
}

func DeleteSessionByKey(key string) error {
	return errors.WithStack(db.Delete(&model.Session{Key: key}).Error)
}

func DeleteSessionsByUser(userID uint) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ?", columnName("user_id")), userID).
		Delete(&model.Session{}).Error)
}

func DeleteSessionsByUserExcept(userID uint, key string) error {
	return errors.WithStack(db.Where(fmt.Sprintf("%s = ? and %s <> ?", columnName("user_id"), columnName("key")), userID, key).
		Delete(&model.Session{}).Error)
}
