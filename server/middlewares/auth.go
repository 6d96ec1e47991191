package middlewares

import (
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

// Auth verifies the JWT and the session row behind it. A deleted
// session (logout, password change) rejects the token before the JWT
// itself expires.
func Auth(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		common.ErrorStrResp(c, "Authorization header is empty", 401)
		return
	}
	claims, err := common.ParseToken(token)
	if err != nil {
		common.ErrorResp(c, err, 401)
		return
	}
	sess, err := op.GetSessionByKey(claims.SessionKey)
	if err != nil {
		common.ErrorStrResp(c, "session is invalid", 401)
		return
	}
	user, err := op.GetUserByName(claims.Username)
	if err != nil {
		common.ErrorResp(c, err, 401)
		return
	}
	if user.Disabled {
		common.ErrorStrResp(c, "user is disabled", 403)
		return
	}
	c.Set("user", user)
	c.Set("session", sess)
	c.Next()
}

func AuthAdmin(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	if !user.IsAdmin() {
		common.ErrorStrResp(c, "only admin can access", 403)
		return
	}
	c.Next()
}

// Internal guards service-to-service endpoints with the shared backends
// secret. With no secret configured they are closed entirely.
func Internal(c *gin.Context) {
	secret := conf.Conf.Backends.Secret
	if secret == "" || c.GetHeader("X-Internal-Token") != secret {
		common.ErrorStrResp(c, "internal endpoints require the service token", 403)
		return
	}
	c.Next()
}
