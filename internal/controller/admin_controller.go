package controller

import (
	"errors"
	"strconv"

	"fitmentor_backend/internal/service"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService *service.AdminService
	AIService    *service.AIService
}

func NewAdminController(adminService *service.AdminService, aiService *service.AIService) *AdminController {
	return &AdminController{
		AdminService: adminService,
		AIService:    aiService,
	}
}

// GetRoster godoc
// @Summary 学员花名册
// @Description 全部学员及其区间、进度、最近打卡和标签
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.MenteeOverview}
// @Router /api/admin/mentees [get]
func (c *AdminController) GetRoster(ctx *gin.Context) {
	roster, err := c.AdminService.GetRoster()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// GetStats godoc
// @Summary 全局统计
// @Description 活跃/不活跃人数、区间分布、平均进度
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=progress.GlobalStats}
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.AdminService.GetStats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetAlerts godoc
// @Summary 预警列表
// @Description 按紧急/高/中/低排序的学员预警，每人至多一条
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]progress.Alert}
// @Router /api/admin/alerts [get]
func (c *AdminController) GetAlerts(ctx *gin.Context) {
	alerts, err := c.AdminService.GetAlerts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, alerts)
}

// GetMenteeDetail godoc
// @Summary 学员详情
// @Description 单个学员的目标、打卡历史、成就和备注
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Success 200 {object} util.Response{data=service.MenteeDetail}
// @Failure 404 {object} util.Response "学员不存在"
// @Router /api/admin/mentees/{id} [get]
func (c *AdminController) GetMenteeDetail(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	detail, err := c.AdminService.GetMenteeDetail(menteeID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// GetMenteeSummary godoc
// @Summary 学员 AI 总结
// @Description 为导师生成单个学员的状态总结，AI 不可用时返回降级文案
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/admin/mentees/{id}/summary [get]
func (c *AdminController) GetMenteeSummary(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	mentee, status, goal, history, err := c.AdminService.InsightContext(menteeID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	summary := c.AIService.AdminMenteeSummary(mentee, status, goal, history)
	util.Success(ctx, gin.H{"summary": summary})
}

type NoteRequest struct {
	Content string `json:"content" binding:"required"`
	Pinned  bool   `json:"pinned"`
}

// AddNote godoc
// @Summary 添加学员备注
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Param body body NoteRequest true "备注内容"
// @Success 201 {object} util.Response{data=model.MenteeNote}
// @Router /api/admin/mentees/{id}/notes [post]
func (c *AdminController) AddNote(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.AdminService.AddNote(menteeID, claims.UserID, req.Content, req.Pinned)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, note)
}

// GetNotes godoc
// @Summary 学员备注列表
// @Description 置顶优先，其余按时间倒序
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Success 200 {object} util.Response{data=[]model.MenteeNote}
// @Router /api/admin/mentees/{id}/notes [get]
func (c *AdminController) GetNotes(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	notes, err := c.AdminService.GetNotes(menteeID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// DeleteNote godoc
// @Summary 删除学员备注
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param noteId path string true "备注ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "备注不存在"
// @Router /api/admin/notes/{noteId} [delete]
func (c *AdminController) DeleteNote(ctx *gin.Context) {
	noteID := ctx.Param("noteId")
	if err := c.AdminService.DeleteNote(noteID); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

type TagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// AssignTag godoc
// @Summary 给学员打标签
// @Description 同名标签幂等，不会重复创建
// @Tags 管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Param body body TagRequest true "标签"
// @Success 201 {object} util.Response{data=model.MenteeTag}
// @Router /api/admin/mentees/{id}/tags [post]
func (c *AdminController) AssignTag(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	var req TagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tag, err := c.AdminService.AssignTag(menteeID, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, tag)
}

// RemoveTag godoc
// @Summary 移除学员标签
// @Tags 管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学员ID"
// @Param name path string true "标签名"
// @Success 200 {object} util.Response
// @Router /api/admin/mentees/{id}/tags/{name} [delete]
func (c *AdminController) RemoveTag(ctx *gin.Context) {
	menteeID, ok := parseMenteeID(ctx)
	if !ok {
		return
	}

	if err := c.AdminService.RemoveTag(menteeID, ctx.Param("name")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func parseMenteeID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的学员ID")
		return 0, false
	}
	return uint(id), true
}
