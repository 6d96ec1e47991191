package handles

import (
	"strconv"

	"github.com/filedrive-org/drived/internal/model"
	"github.com/filedrive-org/drived/internal/op"
	"github.com/filedrive-org/drived/server/common"
	"github.com/gin-gonic/gin"
)

func ListUsers(c *gin.Context) {
	var req model.PageReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	req.Validate()
	users, total, err := op.GetUsers(req.Page, req.PerPage)
	if err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, common.PageResp{
		Content: users,
		Total:   total,
	})
}

func GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user, err := op.GetUserById(uint(id))
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, user)
}

type CreateUserReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     int    `json:"role"`
	BasePath string `json:"base_path"`
}

func CreateUser(c *gin.Context) {
	var req CreateUserReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	if req.Role == model.ADMIN {
		common.ErrorStrResp(c, "cannot create admin user", 400)
		return
	}
	user := &model.User{
		Username: req.Username,
		Role:     req.Role,
		BasePath: req.BasePath,
	}
	if user.BasePath == "" {
		user.BasePath = "/"
	}
	if err := op.RegisterUser(user, req.Password); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c, user)
}

type UpdateUserReq struct {
	ID       uint   `json:"id" binding:"required"`
	Role     *int   `json:"role"`
	BasePath string `json:"base_path"`
	Disabled *bool  `json:"disabled"`
}

func UpdateUser(c *gin.Context) {
	var req UpdateUserReq
	if err := c.ShouldBind(&req); err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	user, err := op.GetUserById(req.ID)
	if err != nil {
		common.ErrResp(c, err)
		return
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.BasePath != "" {
		user.BasePath = req.BasePath
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}
	if err := op.UpdateUser(user); err != nil {
		common.ErrorResp(c, err, 500, true)
		return
	}
	common.SuccessResp(c, user)
}

func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		common.ErrorResp(c, err, 400)
		return
	}
	caller := c.MustGet("user").(*model.User)
	if caller.ID == uint(id) {
		common.ErrorStrResp(c, "cannot delete yourself", 400)
		return
	}
	if err := op.DeleteUserById(uint(id)); err != nil {
		common.ErrResp(c, err)
		return
	}
	common.SuccessResp(c)
}
