package service

import (
	"context"
	"encoding/json"
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

const dashboardCacheTTL = 5 * time.Minute

type DashboardService struct {
	UpdateRepo *repository.UpdateRepository
	GoalRepo   *repository.GoalRepository
	XPRepo     *repository.XPRepository
	Redis      *redis.Client
}

func NewDashboardService(
	updateRepo *repository.UpdateRepository,
	goalRepo *repository.GoalRepository,
	xpRepo *repository.XPRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UpdateRepo: updateRepo,
		GoalRepo:   goalRepo,
		XPRepo:     xpRepo,
		Redis:      rdb,
	}
}

// WeekBandView 投影表展示行，边界取一位小数
type WeekBandView struct {
	Week        int           `json:"week"`
	LowerBound  float64       `json:"lowerBound"`
	IdealTarget float64       `json:"idealTarget"`
	UpperBound  float64       `json:"upperBound"`
	Actual      *float64      `json:"actual,omitempty"`
	Zone        progress.Zone `json:"zone,omitempty"`
}

type CompletionView struct {
	WeeksRemaining int    `json:"weeksRemaining"`
	EstimatedDate  string `json:"estimatedDate"`
	OnTrack        bool   `json:"onTrack"`
}

type Dashboard struct {
	Goal            *model.GoalConfig `json:"goal"`
	CurrentWeight   float64           `json:"currentWeight"`
	CurrentZone     progress.Zone     `json:"currentZone"`
	ProgressPercent float64           `json:"progressPercent"`
	WeekStreak      int               `json:"weekStreak"`
	GreenStreak     int               `json:"greenStreak"`
	TotalGreenWeeks int               `json:"totalGreenWeeks"`
	UpdateCount     int               `json:"updateCount"`
	Projection      []WeekBandView    `json:"projection"`
	Completion      *CompletionView   `json:"completion,omitempty"`
	XP              XPSummary         `json:"xp"`
}

// GetDashboard 学员仪表盘，Redis 缓存5分钟，打卡时失效
func (s *DashboardService) GetDashboard(userID uint) (*Dashboard, error) {
	cacheKey := fmt.Sprintf("dashboard:%d", userID)

	if cached := s.readCache(cacheKey); cached != nil {
		return cached, nil
	}

	dashboard, err := s.buildDashboard(userID, time.Now())
	if err != nil {
		return nil, err
	}

	s.writeCache(cacheKey, dashboard)
	return dashboard, nil
}

func (s *DashboardService) buildDashboard(userID uint, now time.Time) (*Dashboard, error) {
	goalConfig, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, util.ErrGoalNotConfigured
	}
	goal := goalConfig.Progress()

	updates, err := s.UpdateRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	history := model.ProgressUpdates(updates)

	dashboard := &Dashboard{
		Goal:            goalConfig,
		CurrentWeight:   goal.InitialWeight,
		CurrentZone:     progress.ZoneGreen,
		WeekStreak:      progress.ConsecutiveWeekStreak(history),
		GreenStreak:     progress.ConsecutiveGreenStreak(history, goal),
		TotalGreenWeeks: progress.TotalGreenWeeks(history, goal),
		UpdateCount:     len(updates),
		Projection:      s.buildProjection(goal, history),
	}

	if len(updates) > 0 {
		latest := updates[len(updates)-1]
		dashboard.CurrentWeight = latest.Weight
		dashboard.ProgressPercent = progress.OverallProgressPercent(
			goal.InitialWeight, latest.Weight, goal.TargetWeight, goal.Type)
	}
	if len(updates) >= 2 {
		previous := updates[len(updates)-2]
		dashboard.CurrentZone = progress.ClassifyWeek(
			updates[len(updates)-1].Weight, previous.Weight, goal)

		est := progress.EstimateCompletion(history, goal, now)
		dashboard.Completion = &CompletionView{
			WeeksRemaining: est.WeeksRemaining,
			EstimatedDate:  est.EstimatedDate.Format("2006-01-02"),
			OnTrack:        est.OnTrack,
		}
	}

	state, err := s.XPRepo.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}
	dashboard.XP = XPSummary{
		TotalXP:         state.TotalXP,
		CurrentLevel:    state.CurrentLevel,
		ProgressPercent: progress.XPProgressPercent(state.Progress()),
	}

	return dashboard, nil
}

// InsightContext 取出目标和打卡历史，供 AI 建议使用
func (s *DashboardService) InsightContext(userID uint) (progress.Goal, []progress.Update, error) {
	goalConfig, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return progress.Goal{}, nil, util.ErrGoalNotConfigured
	}

	updates, err := s.UpdateRepo.FindByUserID(userID)
	if err != nil {
		return progress.Goal{}, nil, err
	}
	return goalConfig.Progress(), model.ProgressUpdates(updates), nil
}

// GetProjection 24周投影表
func (s *DashboardService) GetProjection(userID uint) ([]WeekBandView, error) {
	goalConfig, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, util.ErrGoalNotConfigured
	}

	updates, err := s.UpdateRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	return s.buildProjection(goalConfig.Progress(), model.ProgressUpdates(updates)), nil
}

// buildProjection 分类用全精度边界，展示值取一位小数
func (s *DashboardService) buildProjection(goal progress.Goal, history []progress.Update) []WeekBandView {
	bands := progress.Project24Weeks(goal, history)

	views := make([]WeekBandView, len(bands))
	for i, b := range bands {
		view := WeekBandView{
			Week:        b.Week,
			LowerBound:  progress.Round1(b.LowerBound),
			IdealTarget: progress.Round1(b.IdealTarget),
			UpperBound:  progress.Round1(b.UpperBound),
			Actual:      b.Actual,
		}
		if b.Actual != nil {
			view.Zone = progress.ClassifyWeekByLimits(
				*b.Actual, b.LowerBound, b.IdealTarget, b.UpperBound, goal.Type)
		}
		views[i] = view
	}
	return views
}

func (s *DashboardService) readCache(key string) *Dashboard {
	if s.Redis == nil {
		return nil
	}

	data, err := s.Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil
	}

	var dashboard Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		return nil
	}
	return &dashboard
}

func (s *DashboardService) writeCache(key string, dashboard *Dashboard) {
	if s.Redis == nil {
		return
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, data, dashboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("dashboard cache write failed", zap.Error(err))
	}
}
