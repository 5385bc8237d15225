package controller

import (
	"errors"
	"net/http"

	"fitmentor_backend/internal/service"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	AuthService      *service.AuthService
	AIService        *service.AIService
}

func NewDashboardController(dashboardService *service.DashboardService, authService *service.AuthService, aiService *service.AIService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		AuthService:      authService,
		AIService:        aiService,
	}
}

// GetDashboard godoc
// @Summary 学员仪表盘
// @Description 当前区间、进度百分比、连续打卡、经验值与完成时间预估
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Failure 404 {object} util.Response "未配置目标"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetDashboard(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotConfigured) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, dashboard)
}

// GetProjection godoc
// @Summary 24周投影表
// @Description 每周下界/理想/上界，附已打卡周的实际体重和区间
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.WeekBandView}
// @Router /api/dashboard/projection [get]
func (c *DashboardController) GetProjection(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projection, err := c.DashboardService.GetProjection(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotConfigured) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, projection)
}

// GetInsight godoc
// @Summary AI 进度建议
// @Description 基于目标和打卡历史生成个性化建议，AI 不可用时返回降级文案
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/dashboard/insight [get]
func (c *DashboardController) GetInsight(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goal, history, err := c.DashboardService.InsightContext(user.ID)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotConfigured) {
			util.Error(ctx, http.StatusNotFound, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	insight := c.AIService.MenteeInsight(user, goal, history)
	util.Success(ctx, gin.H{"insight": insight})
}
