package handles

import (
	"time"

	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/internal/setting"
	"github.com/filedrive-org/drived/pkg/utils"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	if !setting.GetBool(conf.AllowRegister) {
		common.ErrResp(c, errs.RegisterDisabled)
		return
	}
	var req RegisterReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := &model.User{
		Username: req.Username,
		Role:     model.GENERAL,
		BasePath: "/",
	}
	if err := op.RegisterUser(user, req.Password); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, user)
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	OtpCode  string `json:"otp_code"`
}

func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user, err := op.GetUserByName(req.Username)
	if err != nil {
		// same answer as a wrong password, no username probing
		common.ErrorStrResp(c, "username or password is incorrect", 401)
		return
	}
	if user.Disabled {
		common.ErrorStrResp(c, "user is disabled", 403)
		return
	}
	if !utils.CheckPwd(user.PwdHash, req.Password) {
		common.ErrorStrResp(c, "username or password is incorrect", 401)
		return
	}
	if user.OtpSecret != "" && !totp.Validate(req.OtpCode, user.OtpSecret) {
		common.ErrorStrResp(c, "username or password is incorrect", 401)
		return
	}
	sess := &model.Session{
		Key:       utils.RandomString(32),
		UserID:    user.ID,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
		ExpiresAt: time.Now().Add(time.Duration(conf.Conf.TokenExpiresIn) * time.Hour),
		Modified:  time.Now(),
	}
	if err := op.SaveSession(sess); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	token, err := common.GenerateToken(user, sess.Key)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, gin.H{
		"token":      token,
		"expires_at": sess.ExpiresAt,
	})
}

func Logout(c *gin.Context) {
	sess := c.MustGet("session").(*model.Session)
	if err := op.DeleteSessionByKey(sess.Key); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}

func CurrentUser(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	common.SuccessResp(c, user)
}

func ListMySessions(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	sessions, err := op.GetSessionsByUser(user.ID)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, sessions)
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func ChangePassword(c *gin.Context) {
	var req ChangePasswordReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	sess := c.MustGet("session").(*model.Session)
	if !utils.CheckPwd(user.PwdHash, req.OldPassword) {
		common.ErrorStrResp(c, "old password is incorrect", 401)
		return
	}
	if err := op.ChangePassword(user, req.NewPassword, sess.Key); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}

func Generate2FA(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      setting.GetStr(conf.SiteTitle, "drived"),
		AccountName: user.Username,
	})
	if err != nil {
		common.ErrorResp(c, err, 500)
		return
	}
	common.SuccessResp(c, gin.H{
		"secret": key.Secret(),
		"url":    key.URL(),
	})
}

type Verify2FAReq struct {
	Secret string `json:"secret" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

func Verify2FA(c *gin.Context) {
	var req Verify2FAReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if !totp.Validate(req.Code, req.Secret) {
		common.ErrorStrResp(c, "code is incorrect", 400)
		return
	}
	user := c.MustGet("user").(*model.User)
	user.OtpSecret = req.Secret
	if err := op.UpdateUser(user); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c)
}
