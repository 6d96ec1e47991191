package handles

import (
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func GetMyQuota(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	q, err := op.GetQuota(user.ID)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, q)
}

type SetQuotaLimitReq struct {
	UserID uint  `json:"user_id" binding:"required"`
	Limit  int64 `json:"limit"`
}

func SetQuotaLimit(c *gin.Context) {
	var req SetQuotaLimitReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if req.Limit < 0 {
		common.ErrorStrResp(c, "limit cannot be negative", 400)
		return
	}
	if err := op.SetQuotaLimit(req.UserID, req.Limit); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}

func RecalcQuota(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	q, err := op.RecalcQuota(user.ID)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, q)
}

type quotaInternalReq struct {
	UserID uint  `json:"user_id" binding:"required"`
	Bytes  int64 `json:"bytes"`
}

// ReserveQuotaInternal serves the files service when quota runs as its
// own deployment. It sits on the internal route group, not behind JWT.
func ReserveQuotaInternal(c *gin.Context) {
	var req quotaInternalReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if err := op.ReserveQuota(req.UserID, req.Bytes); err != nil {
		if errors.Is(err, errs.QuotaExceeded) {
			common.ErrorResp(c, err, 413)
			return
		}
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}

func ReleaseQuotaInternal(c *gin.Context) {
	var req quotaInternalReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if err := op.ReleaseQuota(req.UserID, req.Bytes); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}
