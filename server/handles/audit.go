package handles

import (
	"github.com/filedrive-org/drived/internal/db"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

func ListAuditEntries(c *gin.Context) {
	var req db.AuditQuery
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	entries, total, err := op.GetAuditEntries(req)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: entries,
		Total:   total,
	})
}

// RecordAuditInternal accepts entries from other services.
func RecordAuditInternal(c *gin.Context) {
	var entry model.AuditEntry
	if err := c.ShouldBind(&entry); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	entry.ID = 0
	if err := op.CreateAuditEntry(&entry); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}
