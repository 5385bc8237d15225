package service

import (
	"time"

	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"
	"fitmentor_backend/internal/repository"
	"fitmentor_backend/internal/util"
)

// AdminService 导师/管理员的学员花名册、告警、备注与标签
type AdminService struct {
	UserRepo        *repository.UserRepository
	UpdateRepo      *repository.UpdateRepository
	GoalRepo        *repository.GoalRepository
	AchievementRepo *repository.AchievementRepository
	NoteRepo        *repository.NoteRepository
	TagRepo         *repository.TagRepository
}

func NewAdminService(
	userRepo *repository.UserRepository,
	updateRepo *repository.UpdateRepository,
	goalRepo *repository.GoalRepository,
	achievementRepo *repository.AchievementRepository,
	noteRepo *repository.NoteRepository,
	tagRepo *repository.TagRepository,
) *AdminService {
	return &AdminService{
		UserRepo:        userRepo,
		UpdateRepo:      updateRepo,
		GoalRepo:        goalRepo,
		AchievementRepo: achievementRepo,
		NoteRepo:        noteRepo,
		TagRepo:         tagRepo,
	}
}

// MenteeOverview 花名册单行
type MenteeOverview struct {
	MenteeID        uint                   `json:"menteeId"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Avatar          string                 `json:"avatar,omitempty"`
	Status          progress.MenteeStatus  `json:"status"`
	ProgressPercent float64                `json:"progressPercent"`
	UpdateCount     int                    `json:"updateCount"`
	Tags            []model.MenteeTag      `json:"tags"`
}

// GetRoster 全部学员及其派生状态
func (s *AdminService) GetRoster() ([]MenteeOverview, error) {
	_, overviews, err := s.buildRoster(time.Now())
	if err != nil {
		return nil, err
	}
	return overviews, nil
}

// GetStats 花名册全局统计
func (s *AdminService) GetStats() (*progress.GlobalStats, error) {
	entries, _, err := s.buildRoster(time.Now())
	if err != nil {
		return nil, err
	}
	stats := progress.AggregateRoster(entries)
	return &stats, nil
}

// GetAlerts 按优先级排序的告警列表
func (s *AdminService) GetAlerts() ([]progress.Alert, error) {
	entries, _, err := s.buildRoster(time.Now())
	if err != nil {
		return nil, err
	}
	return progress.BuildAlerts(entries), nil
}

// buildRoster 一次装配核心聚合的输入和展示行
func (s *AdminService) buildRoster(now time.Time) ([]progress.RosterEntry, []MenteeOverview, error) {
	mentees, err := s.UserRepo.FindMentees()
	if err != nil {
		return nil, nil, err
	}

	entries := make([]progress.RosterEntry, 0, len(mentees))
	overviews := make([]MenteeOverview, 0, len(mentees))

	for _, mentee := range mentees {
		entry, overview, err := s.buildEntry(&mentee, now)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
		overviews = append(overviews, overview)
	}
	return entries, overviews, nil
}

func (s *AdminService) buildEntry(mentee *model.User, now time.Time) (progress.RosterEntry, MenteeOverview, error) {
	updates, err := s.UpdateRepo.FindByUserID(mentee.ID)
	if err != nil {
		return progress.RosterEntry{}, MenteeOverview{}, err
	}
	history := model.ProgressUpdates(updates)

	// 没有目标配置的学员按退化目标处理，进度不计入均值
	var goal progress.Goal
	progressValid := false
	if goalConfig, err := s.GoalRepo.FindByUserID(mentee.ID); err == nil {
		goal = goalConfig.Progress()
		progressValid = goal.InitialWeight != goal.TargetWeight
	}

	status := progress.ComputeMenteeStatus(history, goal, now)

	percent := 0.0
	if progressValid && len(updates) > 0 {
		percent = progress.OverallProgressPercent(
			goal.InitialWeight, updates[len(updates)-1].Weight, goal.TargetWeight, goal.Type)
	}

	entry := progress.RosterEntry{
		MenteeID:      mentee.ID,
		Name:          mentee.Name,
		Status:        status,
		Progress:      percent,
		ProgressValid: progressValid,
		RedStreak:     progress.ConsecutiveRedStreak(history, goal),
		Stagnating:    progress.IsStagnating(history),
		UpdateCount:   len(updates),
	}

	tags, err := s.TagRepo.FindByMenteeID(mentee.ID)
	if err != nil {
		return progress.RosterEntry{}, MenteeOverview{}, err
	}

	overview := MenteeOverview{
		MenteeID:        mentee.ID,
		Name:            mentee.Name,
		Email:           mentee.Email,
		Avatar:          mentee.Avatar,
		Status:          status,
		ProgressPercent: percent,
		UpdateCount:     len(updates),
		Tags:            tags,
	}
	return entry, overview, nil
}

// MenteeDetail 学员详情页
type MenteeDetail struct {
	Overview     MenteeOverview          `json:"overview"`
	Goal         *model.GoalConfig       `json:"goal,omitempty"`
	Updates      []model.WeeklyUpdate    `json:"updates"`
	Achievements []model.AchievementView `json:"achievements"`
	Notes        []model.MenteeNote      `json:"notes"`
}

func (s *AdminService) GetMenteeDetail(menteeID uint) (*MenteeDetail, error) {
	mentee, err := s.UserRepo.FindByID(menteeID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	_, overview, err := s.buildEntry(mentee, time.Now())
	if err != nil {
		return nil, err
	}

	updates, err := s.UpdateRepo.FindByUserID(menteeID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindByUserID(menteeID)
	if err != nil {
		return nil, err
	}
	views := make([]model.AchievementView, len(achievements))
	for i, a := range achievements {
		views[i] = a.View()
	}

	notes, err := s.NoteRepo.FindByMenteeID(menteeID)
	if err != nil {
		return nil, err
	}

	detail := &MenteeDetail{
		Overview:     overview,
		Updates:      updates,
		Achievements: views,
		Notes:        notes,
	}
	if goalConfig, err := s.GoalRepo.FindByUserID(menteeID); err == nil {
		detail.Goal = goalConfig
	}
	return detail, nil
}

func (s *AdminService) AddNote(menteeID, authorID uint, content string, pinned bool) (*model.MenteeNote, error) {
	if _, err := s.UserRepo.FindByID(menteeID); err != nil {
		return nil, util.ErrUserNotFound
	}

	note := &model.MenteeNote{
		MenteeID: menteeID,
		AuthorID: authorID,
		Content:  content,
		Pinned:   pinned,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *AdminService) GetNotes(menteeID uint) ([]model.MenteeNote, error) {
	return s.NoteRepo.FindByMenteeID(menteeID)
}

func (s *AdminService) DeleteNote(noteID string) error {
	if _, err := s.NoteRepo.FindByID(noteID); err != nil {
		return util.ErrNoteNotFound
	}
	return s.NoteRepo.Delete(noteID)
}

func (s *AdminService) AssignTag(menteeID uint, name, color string) (*model.MenteeTag, error) {
	if _, err := s.UserRepo.FindByID(menteeID); err != nil {
		return nil, util.ErrUserNotFound
	}

	tag := &model.MenteeTag{MenteeID: menteeID, Name: name, Color: color}
	if err := s.TagRepo.Assign(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *AdminService) RemoveTag(menteeID uint, name string) error {
	return s.TagRepo.Remove(menteeID, name)
}

// InsightContext 汇总单个学员的画像数据，供 AI 总结使用
func (s *AdminService) InsightContext(menteeID uint) (*model.User, progress.MenteeStatus, progress.Goal, []progress.Update, error) {
	mentee, err := s.UserRepo.FindByID(menteeID)
	if err != nil {
		return nil, progress.MenteeStatus{}, progress.Goal{}, nil, util.ErrUserNotFound
	}

	updates, err := s.UpdateRepo.FindByUserID(menteeID)
	if err != nil {
		return nil, progress.MenteeStatus{}, progress.Goal{}, nil, err
	}
	history := model.ProgressUpdates(updates)

	var goal progress.Goal
	if goalConfig, err := s.GoalRepo.FindByUserID(menteeID); err == nil {
		goal = goalConfig.Progress()
	}

	status := progress.ComputeMenteeStatus(history, goal, time.Now())
	return mentee, status, goal, history, nil
}
