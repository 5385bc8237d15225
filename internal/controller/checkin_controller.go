package controller

import (
	"errors"
	"net/http"
	"strconv"

	"fitmentor_backend/internal/service"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CheckinController struct {
	CheckinService *service.CheckinService
	StorageService *service.StorageService
}

func NewCheckinController(checkinService *service.CheckinService, storageService *service.StorageService) *CheckinController {
	return &CheckinController{
		CheckinService: checkinService,
		StorageService: storageService,
	}
}

// photoAngles 打卡照片的三个机位，表单字段名与存储文件名的角度后缀一致
var photoAngles = []string{"front", "side", "back"}

// CreateCheckin godoc
// @Summary 提交周打卡
// @Description 提交体重（必填）、围度、备注和最多三张进度照，返回区间判定、新徽章和经验值变化
// @Tags 打卡
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param weight formData number true "体重(kg)"
// @Param bodyFatPercentage formData number false "体脂率"
// @Param neckCircumference formData number false "颈围(cm)"
// @Param waistCircumference formData number false "腰围(cm)"
// @Param hipCircumference formData number false "臀围(cm)"
// @Param notes formData string false "备注"
// @Param front formData file false "正面照"
// @Param side formData file false "侧面照"
// @Param back formData file false "背面照"
// @Success 201 {object} util.Response{data=service.CheckinResult}
// @Failure 400 {object} util.Response "参数错误"
// @Failure 404 {object} util.Response "未配置目标"
// @Router /api/checkins [post]
func (c *CheckinController) CreateCheckin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	weight, err := strconv.ParseFloat(ctx.PostForm("weight"), 64)
	if err != nil || weight <= 0 {
		util.BadRequest(ctx, "体重必须为正数")
		return
	}

	req := service.CheckinRequest{
		Weight: weight,
		Notes:  ctx.PostForm("notes"),
	}
	req.BodyFatPercentage = optionalFloat(ctx.PostForm("bodyFatPercentage"))
	req.NeckCircumference = optionalFloat(ctx.PostForm("neckCircumference"))
	req.WaistCircumference = optionalFloat(ctx.PostForm("waistCircumference"))
	req.HipCircumference = optionalFloat(ctx.PostForm("hipCircumference"))

	for _, angle := range photoAngles {
		file, err := ctx.FormFile(angle)
		if err != nil {
			continue
		}
		src, err := file.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		url, err := c.StorageService.UploadProgressPhoto(
			ctx.Request.Context(), claims.UserID, angle, src, file.Size, file.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		switch angle {
		case "front":
			req.PhotoFront = url
		case "side":
			req.PhotoSide = url
		case "back":
			req.PhotoBack = url
		}
	}

	result, err := c.CheckinService.CreateCheckin(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotConfigured) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// GetHistory godoc
// @Summary 打卡历史
// @Description 按周号升序返回当前用户全部打卡记录
// @Tags 打卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.WeeklyUpdate}
// @Router /api/checkins [get]
func (c *CheckinController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	updates, err := c.CheckinService.GetHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, updates)
}

func optionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
