package middlewares

import (
	"net/http"

	"github.com/filedrive-org/drived/internal/client"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/gin-gonic/gin"
)

// Audit records every mutating request after it completed. Recording
// is handed to the audit client, which never fails the request.
func Audit(c *gin.Context) {
	c.Next()
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return
	}
	entry := &model.AuditEntry{
		Action: c.Request.Method + " " + c.FullPath(),
		Object: c.Request.URL.Path,
		IP:     c.ClientIP(),
		Status: c.Writer.Status(),
	}
	if u, ok := c.Get("user"); ok {
		user := u.(*model.User)
		entry.UserID = user.ID
		entry.Username = user.Username
	}
	client.Audit().Record(entry)
}
