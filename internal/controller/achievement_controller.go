package controller

import (
	"strconv"

	"fitmentor_backend/internal/service"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary 成就与经验值
// @Description 已获得徽章、完整徽章目录和当前等级进度
// @Tags 成就
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.UserAchievements}
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// GetLeaderboard godoc
// @Summary 经验值排行榜
// @Description 按总经验值降序，默认前10名，Redis 缓存10分钟
// @Tags 成就
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "榜单长度" default(10)
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *AchievementController) GetLeaderboard(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	entries, err := c.AchievementService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
