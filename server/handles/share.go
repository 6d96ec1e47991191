package handles

import (
	"net/url"
	"time"

	"github.com/filedrive-org/drived/internal/client"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

type CreateShareReq struct {
	FileID     string     `json:"file_id"`
	FolderID   string     `json:"folder_id"`
	Permission string     `json:"permission"`
	Password   string     `json:"password"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func CreateShare(c *gin.Context) {
	var req CreateShareReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	s, err := op.CreateShare(user.ID, req.FileID, req.FolderID, req.Permission, req.Password, req.ExpiresAt)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, gin.H{
		"share": s,
		"url":   common.ShareURL(c.Request, s.ID),
	})
}

func ListShares(c *gin.Context) {
	var req model.PageReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	req.Validate()
	user := c.MustGet("user").(*model.User)
	shares, total, err := op.ListShares(user.ID, req)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: shares,
		Total:   total,
	})
}

func DeleteShare(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	if err := op.DeleteShare(user.ID, c.Param("id"), user.IsAdmin()); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}

// public endpoints: no JWT, the token in the path is the credential

func GetShareInfo(c *gin.Context) {
	s, err := op.ResolveShare(c.Param("id"), c.Query("password"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	info := gin.H{
		"id":         s.ID,
		"permission": s.Permission,
		"protected":  s.Protected(),
		"expires_at": s.ExpiresAt,
	}
	if s.FileID != "" {
		f, err := op.GetFile(s.UserID, s.FileID)
		if err != nil {
			common.ErrResp(c, errs.InvalidShare)
			return
		}
		info["type"] = "file"
		info["name"] = f.Name
		info["size"] = f.Size
	} else {
		f, err := op.GetFolder(s.UserID, s.FolderID)
		if err != nil {
			common.ErrResp(c, errs.InvalidShare)
			return
		}
		info["type"] = "folder"
		info["name"] = f.Name
	}
	common.SuccessResp(c, info)
}

// ListSharedFolder lists a folder under a folder share. folder_id
// keeps navigation inside the shared subtree.
func ListSharedFolder(c *gin.Context) {
	s, err := op.ResolveShare(c.Param("id"), c.Query("password"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	if s.FolderID == "" {
		common.ErrResp(c, errs.InvalidShare)
		return
	}
	folderID := c.Query("folder_id")
	if folderID == "" {
		folderID = s.FolderID
	}
	ok, err := op.IsInSubtree(s.UserID, s.FolderID, folderID)
	if err != nil || !ok {
		common.ErrResp(c, errs.InvalidShare)
		return
	}
	folders, err := op.ListFolders(s.UserID, folderID)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	var page model.PageReq
	page.Validate()
	files, _, err := op.ListFiles(s.UserID, folderID, "", page)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, gin.H{
		"folders": folders,
		"files":   files,
	})
}

// DownloadShared streams a file from a share: the shared file itself,
// or any file inside a shared folder's subtree.
func DownloadShared(c *gin.Context) {
	s, err := op.ResolveShare(c.Param("id"), c.Query("password"))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	fileID := c.Query("file_id")
	if s.FileID != "" {
		if fileID != "" && fileID != s.FileID {
			common.ErrResp(c, errs.InvalidShare)
			return
		}
		fileID = s.FileID
	}
	f, err := op.GetFile(s.UserID, fileID)
	if err != nil {
		common.ErrResp(c, errs.InvalidShare)
		return
	}
	if s.FolderID != "" {
		ok, err := op.IsInSubtree(s.UserID, s.FolderID, f.FolderID)
		if err != nil || !ok {
			common.ErrResp(c, errs.InvalidShare)
			return
		}
	}
	rc, err := op.OpenFileContent(c.Request.Context(), f)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	defer rc.Close()
	op.CountShareDownload(s.ID)
	client.Audit().Record(&model.AuditEntry{
		UserID:   s.UserID,
		Action:   "share:download",
		Object:   f.ID,
		IP:       c.ClientIP(),
		Status:   200,
		Username: "",
	})
	c.DataFromReader(200, f.Size, f.MimeType, rc, map[string]string{
		"Content-Disposition": `attachment; filename*=UTF-8''` + url.PathEscape(f.Name),
	})
}
