package handles

import (
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

func GetRootFolder(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	root, err := op.GetRootFolder(user.ID)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, root)
}

type CreateFolderReq struct {
	ParentID string `json:"parent_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func CreateFolder(c *gin.Context) {
	var req CreateFolderReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	f, err := op.CreateFolder(user.ID, req.ParentID, req.Name)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, f)
}

func ListFolders(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	parentID := c.Query("parent_id")
	if parentID == "" {
		root, err := op.GetRootFolder(user.ID)
		if err != nil {
			common.ErrorResp(c, err, 500, true)
			return
		}
		parentID = root.ID
	}
	folders, err := op.ListFolders(user.ID, parentID)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, folders)
}

func StatFolder(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	f, err := op.GetFolder(user.ID, c.Param("id"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	path, err := op.FolderPath(user.ID, f.ID)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, gin.H{
		"folder": f,
		"path":   path,
	})
}

type RenameFolderReq struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func RenameFolder(c *gin.Context) {
	var req RenameFolderReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	f, err := op.RenameFolder(user.ID, req.ID, req.Name)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, f)
}

type MoveFolderReq struct {
	ID       string `json:"id" binding:"required"`
	ParentID string `json:"parent_id" binding:"required"`
}

func MoveFolder(c *gin.Context) {
	var req MoveFolderReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	f, err := op.MoveFolder(user.ID, req.ID, req.ParentID)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, f)
}

func DeleteFolder(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	if err := op.DeleteFolder(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}
