package handles

import (
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

// PublicSettings exposes only the public-flagged items, no auth.
func PublicSettings(c *gin.Context) {
	items, err := op.GetSettingItems()
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	public := make(map[string]string)
	for _, item := range items {
		if item.Flag == conf.FlagPublic {
			public[item.Key] = item.Value
		}
	}
	common.SuccessResp(c, public)
}

func ListSettings(c *gin.Context) {
	items, err := op.GetSettingItems()
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, items)
}

func SaveSettings(c *gin.Context) {
	var req []model.SettingItem
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if err := op.SaveSettingItems(req); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}
