package service

import (
	"context"
	"fmt"
	"time"

	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"
	"fitmentor_backend/internal/repository"
	"fitmentor_backend/internal/util"
	"fitmentor_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CheckinService 周打卡主流程：落库、发积分、评估徽章
type CheckinService struct {
	UpdateRepo      *repository.UpdateRepository
	GoalRepo        *repository.GoalRepository
	AchievementRepo *repository.AchievementRepository
	XPRepo          *repository.XPRepository
	Redis           *redis.Client
}

func NewCheckinService(
	updateRepo *repository.UpdateRepository,
	goalRepo *repository.GoalRepository,
	achievementRepo *repository.AchievementRepository,
	xpRepo *repository.XPRepository,
	rdb *redis.Client,
) *CheckinService {
	return &CheckinService{
		UpdateRepo:      updateRepo,
		GoalRepo:        goalRepo,
		AchievementRepo: achievementRepo,
		XPRepo:          xpRepo,
		Redis:           rdb,
	}
}

// CheckinRequest 打卡提交，照片路径由控制器先走存储服务上传后填入
type CheckinRequest struct {
	Weight             float64  `json:"weight" binding:"required,gt=0"`
	BodyFatPercentage  *float64 `json:"bodyFatPercentage"`
	NeckCircumference  *float64 `json:"neckCircumference"`
	WaistCircumference *float64 `json:"waistCircumference"`
	HipCircumference   *float64 `json:"hipCircumference"`
	Notes              string   `json:"notes"`
	PhotoFront         string   `json:"-"`
	PhotoSide          string   `json:"-"`
	PhotoBack          string   `json:"-"`
}

type XPSummary struct {
	TotalXP         int     `json:"totalXp"`
	CurrentLevel    int     `json:"currentLevel"`
	ProgressPercent float64 `json:"progressPercent"`
	Awarded         int     `json:"awarded"`
	LeveledUp       bool    `json:"leveledUp"`
}

type CheckinResult struct {
	Update    *model.WeeklyUpdate     `json:"update"`
	Zone      progress.Zone           `json:"zone"`
	NewBadges []model.AchievementView `json:"newBadges"`
	XP        XPSummary               `json:"xp"`
}

// CreateCheckin 创建一条周打卡。历史只追加，周号按已有记录数+1分配。
// 同一学员的并发打卡由存储层的 (user_id, week_number) 唯一索引兜底。
func (s *CheckinService) CreateCheckin(userID uint, req CheckinRequest) (*CheckinResult, error) {
	goalConfig, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, util.ErrGoalNotConfigured
	}
	goal := goalConfig.Progress()

	count, err := s.UpdateRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}

	update := &model.WeeklyUpdate{
		UserID:             userID,
		WeekNumber:         int(count) + 1,
		Weight:             req.Weight,
		BodyFatPercentage:  req.BodyFatPercentage,
		NeckCircumference:  req.NeckCircumference,
		WaistCircumference: req.WaistCircumference,
		HipCircumference:   req.HipCircumference,
		PhotoFront:         req.PhotoFront,
		PhotoSide:          req.PhotoSide,
		PhotoBack:          req.PhotoBack,
		Notes:              req.Notes,
	}
	if err := s.UpdateRepo.Create(update); err != nil {
		return nil, err
	}

	all, err := s.UpdateRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	history := model.ProgressUpdates(all)

	// 本周区间：与上一周环比，首周默认绿区
	zone := progress.ZoneGreen
	if update.WeekNumber > 1 {
		zone = progress.ClassifyWeek(update.Weight, all[len(all)-2].Weight, goal)
	}

	actions := []progress.ActionType{progress.ActionCheckin}
	if update.PhotoCount() > 0 {
		actions = append(actions, progress.ActionPhotoBonus)
	}
	if zone == progress.ZoneGreen {
		actions = append(actions, progress.ActionGreenZone)
	}
	if update.PhotoCount() == 3 && update.FullyMeasured() {
		actions = append(actions, progress.ActionPerfectWeek)
	}
	if streak := progress.ConsecutiveGreenStreak(history, goal); streak > 0 && streak%5 == 0 {
		actions = append(actions, progress.ActionGreenStreak)
	}

	newBadges, err := s.evaluateBadges(userID, history, goal)
	if err != nil {
		return nil, err
	}

	for range newBadges {
		actions = append(actions, progress.ActionBadge)
	}
	for _, b := range newBadges {
		if b.BadgeType == progress.BadgeHalfwayThere || b.BadgeType == progress.BadgeGoalAchieved {
			actions = append(actions, progress.ActionIntermediateGoal)
		}
	}

	xp, err := s.applyXP(userID, actions)
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(userID)

	return &CheckinResult{
		Update:    update,
		Zone:      zone,
		NewBadges: newBadges,
		XP:        xp,
	}, nil
}

// evaluateBadges 评估并幂等授予新徽章
func (s *CheckinService) evaluateBadges(userID uint, history []progress.Update, goal progress.Goal) ([]model.AchievementView, error) {
	earned, err := s.AchievementRepo.EarnedSet(userID)
	if err != nil {
		return nil, err
	}

	newly := progress.EvaluateBadges(history, goal, earned)
	now := time.Now()

	views := make([]model.AchievementView, 0, len(newly))
	for _, badge := range newly {
		if err := s.AchievementRepo.Award(userID, badge, now); err != nil {
			return nil, err
		}
		views = append(views, model.Achievement{UserID: userID, BadgeType: badge, EarnedAt: now}.View())
	}
	return views, nil
}

func (s *CheckinService) applyXP(userID uint, actions []progress.ActionType) (XPSummary, error) {
	state, err := s.XPRepo.FindOrCreate(userID)
	if err != nil {
		return XPSummary{}, err
	}

	ledger := state.Progress()
	awarded := 0
	leveledUp := false
	for _, action := range actions {
		var up bool
		ledger, up = progress.Grant(ledger, action)
		awarded += progress.ActionAmount(action)
		leveledUp = leveledUp || up
	}

	state.Apply(ledger)
	if err := s.XPRepo.Save(state); err != nil {
		return XPSummary{}, err
	}

	return XPSummary{
		TotalXP:         state.TotalXP,
		CurrentLevel:    state.CurrentLevel,
		ProgressPercent: progress.XPProgressPercent(ledger),
		Awarded:         awarded,
		LeveledUp:       leveledUp,
	}, nil
}

// GetHistory 学员全部打卡记录
func (s *CheckinService) GetHistory(userID uint) ([]model.WeeklyUpdate, error) {
	return s.UpdateRepo.FindByUserID(userID)
}

func (s *CheckinService) invalidateCaches(userID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	keys := []string{
		fmt.Sprintf("dashboard:%d", userID),
		"leaderboard:xp",
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("cache invalidation failed", zap.Uint("userID", userID), zap.Error(err))
	}
}
