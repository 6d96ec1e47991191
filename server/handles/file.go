package handles

import (
	"net/url"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

func UploadFile(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	folderID := c.PostForm("folder_id")
	if folderID == "" {
		root, err := op.GetRootFolder(user.ID)
		if err != nil {
			common.ErrorResp(c, err, 500, true)
			return
		}
		folderID = root.ID
	}
	fh, err := c.FormFile("file")
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	f, err := fh.Open()
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	defer f.Close()
	name := c.PostForm("name")
	if name == "" {
		name = fh.Filename
	}
	obj, err := op.UploadFile(c.Request.Context(), user.ID, folderID, name,
		fh.Header.Get("Content-Type"), f, fh.Size)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, obj)
}

func DownloadFile(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	obj, rc, err := op.DownloadFile(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	defer rc.Close()
	c.DataFromReader(200, obj.Size, obj.MimeType, rc, map[string]string{
		"Content-Disposition": `attachment; filename*=UTF-8''` + url.PathEscape(obj.Name),
	})
}

func StatFile(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	obj, err := op.GetFile(user.ID, c.Param("id"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, obj)
}

type ListFilesReq struct {
	model.PageReq
	FolderID string `json:"folder_id" form:"folder_id"`
	Name     string `json:"name" form:"name"`
}

func ListFiles(c *gin.Context) {
	var req ListFilesReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	req.Validate()
	user := c.MustGet("user").(*model.User)
	if req.FolderID == "" {
		root, err := op.GetRootFolder(user.ID)
		if err != nil {
			common.ErrorResp(c, err, 500, true)
			return
		}
		req.FolderID = root.ID
	}
	files, total, err := op.ListFiles(user.ID, req.FolderID, req.Name, req.PageReq)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: files,
		Total:   total,
	})
}

type RenameFileReq struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func RenameFile(c *gin.Context) {
	var req RenameFileReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	obj, err := op.RenameFile(user.ID, req.ID, req.Name)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, obj)
}

type MoveFileReq struct {
	ID       string `json:"id" binding:"required"`
	FolderID string `json:"folder_id" binding:"required"`
}

func MoveFile(c *gin.Context) {
	var req MoveFileReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	obj, err := op.MoveFile(user.ID, req.ID, req.FolderID)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, obj)
}

func DeleteFile(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	if err := op.DeleteFile(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}
