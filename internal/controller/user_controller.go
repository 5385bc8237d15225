package controller

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"fitmentor_backend/internal/service"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	UserService    *service.UserService
	AuthService    *service.AuthService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, authService *service.AuthService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		AuthService:    authService,
		StorageService: storageService,
	}
}

// GetProfile godoc
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "未登录"
// @Router /api/user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ProfileUpdateRequest true "资料"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateGoal godoc
// @Summary 调整目标配置
// @Description 修改目标体重和每周预期变化，方向须与目标类型一致
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GoalUpdateRequest true "目标"
// @Success 200 {object} util.Response{data=model.GoalConfig}
// @Failure 400 {object} util.Response "目标不一致"
// @Router /api/user/goal [put]
func (c *UserController) UpdateGoal(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.GoalUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.UserService.UpdateGoal(claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotConfigured):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidGoal):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrGoalLocked):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, goal)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param avatar formData file true "头像文件"
// @Success 200 {object} util.Response{data=object}
// @Router /api/user/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "缺少头像文件")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := "avatars/" + uuid.New().String() + ext
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if _, err := c.UserService.UpdateProfile(claims.UserID, service.ProfileUpdateRequest{Avatar: url}); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": url})
}
