package op

import (
	"time"

	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/pkg/utils"
)

func CreateAuditEntry(e *model.AuditEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return db.CreateAuditEntry(e)
}

func GetAuditEntries(q db.AuditQuery) ([]model.AuditEntry, int64, error) {
	q.Validate()
	return db.GetAuditEntries(q)
}

// SweepAuditEntries applies the retention window, dropping everything
// older than the given number of days.
func SweepAuditEntries(retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := db.DeleteAuditEntriesBefore(cutoff)
	if err != nil {
		utils.Log.Errorf("failed to sweep audit entries: %+v", err)
		return
	}
	if n > 0 {
		utils.Log.Infof("swept %d audit entries older than %s", n, cutoff.Format(time.DateOnly))
	}
}
