package app

import (
	"fitmentor_backend/docs"
	"fitmentor_backend/internal/config"
	"fitmentor_backend/internal/middleware"
	"fitmentor_backend/internal/model"

	"fitmentor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 学员授权接口
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerMenteeRoutes(authGroup, c)
	}

	// 3. 导师/管理员接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerMenteeRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/user/profile", c.user.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.PUT("/user/goal", c.user.UpdateGoal)
	rg.POST("/user/avatar", c.user.UploadAvatar)

	// 打卡
	rg.POST("/checkins", c.checkin.CreateCheckin)
	rg.GET("/checkins", c.checkin.GetHistory)

	// 仪表盘
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/dashboard/projection", c.dashboard.GetProjection)
	rg.GET("/dashboard/insight", c.dashboard.GetInsight)

	// 成就与排行榜
	rg.GET("/achievements", c.achievement.GetAchievements)
	rg.GET("/leaderboard", c.achievement.GetLeaderboard)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	admin.Use(middleware.RoleMiddleware(model.Admin, model.Mentor))
	{
		admin.GET("/mentees", c.admin.GetRoster)
		admin.GET("/mentees/:id", c.admin.GetMenteeDetail)
		admin.GET("/mentees/:id/summary", c.admin.GetMenteeSummary)
		admin.GET("/stats", c.admin.GetStats)
		admin.GET("/alerts", c.admin.GetAlerts)

		// 备注
		admin.POST("/mentees/:id/notes", c.admin.AddNote)
		admin.GET("/mentees/:id/notes", c.admin.GetNotes)
		admin.DELETE("/notes/:noteId", c.admin.DeleteNote)

		// 标签
		admin.POST("/mentees/:id/tags", c.admin.AssignTag)
		admin.DELETE("/mentees/:id/tags/:name", c.admin.RemoveTag)
	}
}
