package common

import (
	"github.com/filedrive-org/drived/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type PageResp struct {
	Content interface{} `json:"content"`
	Total   int64       `json:"total"`
}

func ErrorResp(c *gin.Context, err error, code int, l ...bool) {
	if len(l) > 0 && l[0] {
		log.Errorf("%+v", err)
	}
	c.JSON(200, Resp{
		Code:    code,
		Message: err.Error(),
		Data:    nil,
	})
	c.Abort()
}

func ErrorStrResp(c *gin.Context, str string, code int, l ...bool) {
	if len(l) != 0 && l[0] {
		log.Error(str)
	}
	c.JSON(200, Resp{
		Code:    code,
		Message: str,
		Data:    nil,
	})
	c.Abort()
}

// ErrResp maps the well-known sentinels to their codes so handlers do
// not repeat the switch.
func ErrResp(c *gin.Context, err error) {
	switch {
	case errs.IsNotFound(err), errors.Is(err, errs.InvalidShare):
		ErrorResp(c, err, 404)
	case errors.Is(err, errs.QuotaExceeded):
		ErrorResp(c, err, 413)
	case errors.Is(err, errs.NameConflict), errors.Is(err, errs.UserExists):
		ErrorResp(c, err, 409)
	case errors.Is(err, errs.PermissionDenied), errors.Is(err, errs.UserDisabled):
		ErrorResp(c, err, 403)
	case errors.Is(err, errs.FolderCycle), errors.Is(err, errs.RootImmutable),
		errors.Is(err, errs.EmptyUsername), errors.Is(err, errs.EmptyPassword),
		errors.Is(err, errs.RegisterDisabled):
		ErrorResp(c, err, 400)
	case errors.Is(err, errs.WrongPassword):
		ErrorResp(c, err, 401)
	default:
		ErrorResp(c, err, 500, true)
	}
}

func SuccessResp(c *gin.Context, data ...interface{}) {
	if len(data) == 0 {
		c.JSON(200, Resp{
			Code:    200,
			Message: "success",
			Data:    nil,
		})
		return
	}
	c.JSON(200, Resp{
		Code:    200,
		Message: "success",
		Data:    data[0],
	})
}
