package db

import (
	"fmt"
	"time"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/pkg/errors"
)

type AuditQuery struct {
	model.PageReq
	UserID uint      `json:"user_id" form:"user_id"`
	Action string    `json:"action" form:"action"`
	Since  time.Time `json:"since" form:"since"`
	Until  time.Time `json:"until" form:"until"`
}

func CreateAuditEntry(e *model.AuditEntry) error {
	return errors.WithStack(db.Create(e).Error)
}

func GetAuditEntries(q AuditQuery) (entries []model.AuditEntry, count int64, err error) {
	auditDB := db.Model(&model.AuditEntry{})
	if q.UserID != 0 {
		auditDB = auditDB.Where(fmt.Sprintf("%s = ?", columnName("user_id")), q.UserID)
	}
	if q.Action != "" {
		auditDB = auditDB.Where(fmt.Sprintf("%s = ?", columnName("action")), q.Action)
	}
	if !q.Since.IsZero() {
		auditDB = auditDB.Where(fmt.Sprintf("%s >= ?", columnName("created_at")), q.Since)
	}
	if !q.Until.IsZero() {
		auditDB = auditDB.Where(fmt.Sprintf("%s < ?", columnName("created_at")), q.Until)
	}
	if err := auditDB.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed get audit count")
	}
	if err := auditDB.Order(fmt.Sprintf("%s desc", columnName("id"))).
		Offset((q.Page - 1) * q.PerPage).Limit(q.PerPage).Find(&entries).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "failed find audit entries")
	}
	return entries, count, nil
}

func DeleteAuditEntriesBefore(t time.Time) (int64, error) {
	res := db.Where(fmt.Sprintf("%s < ?", columnName("created_at")), t).Delete(&model.AuditEntry{})
	return res.RowsAffected, errors.WithStack(res.Error)
}
