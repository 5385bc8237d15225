package service

import (
	"context"
	"encoding/json"
	"time"

	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"
	"fitmentor_backend/internal/repository"
	"fitmentor_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheTTL = 10 * time.Minute

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	XPRepo          *repository.XPRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	xpRepo *repository.XPRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		XPRepo:          xpRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
	}
}

type UserAchievements struct {
	XP      XPSummary               `json:"xp"`
	NextXP  int                     `json:"nextLevelXp"`
	Badges  []model.AchievementView `json:"badges"`
	Catalog []progress.BadgeInfo    `json:"catalog"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	achievements, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	badges := make([]model.AchievementView, len(achievements))
	for i, a := range achievements {
		badges[i] = a.View()
	}

	state, err := s.XPRepo.FindOrCreate(userID)
	if err != nil {
		return nil, err
	}

	return &UserAchievements{
		XP: XPSummary{
			TotalXP:         state.TotalXP,
			CurrentLevel:    state.CurrentLevel,
			ProgressPercent: progress.XPProgressPercent(state.Progress()),
		},
		NextXP:  progress.LevelCost(state.CurrentLevel),
		Badges:  badges,
		Catalog: progress.Catalog,
	}, nil
}

// GetLeaderboard 经验值排行榜，Redis 缓存10分钟
func (s *AchievementService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	const cacheKey = "leaderboard:xp"

	if s.Redis != nil {
		if data, err := s.Redis.Get(context.Background(), cacheKey).Bytes(); err == nil {
			var cached []LeaderboardEntry
			if json.Unmarshal(data, &cached) == nil && len(cached) >= limit {
				return cached[:limit], nil
			}
		}
	}

	states, err := s.XPRepo.FindTop(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := buildLeaderboard(states, s.UserRepo.FindByID)

	if s.Redis != nil {
		if data, err := json.Marshal(leaderboard); err == nil {
			if err := s.Redis.Set(context.Background(), cacheKey, data, leaderboardCacheTTL).Err(); err != nil {
				logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
			}
		}
	}

	return leaderboard, nil
}

// buildLeaderboard 组装排行榜条目，查不到的用户（已注销等）跳过且名次保持连续
func buildLeaderboard(states []model.XPState, findUser func(uint) (*model.User, error)) []LeaderboardEntry {
	leaderboard := make([]LeaderboardEntry, 0, len(states))
	for _, state := range states {
		user, err := findUser(state.UserID)
		if err != nil {
			continue
		}
		leaderboard = append(leaderboard, LeaderboardEntry{
			Rank:   len(leaderboard) + 1,
			User:   user.Name,
			XP:     state.TotalXP,
			Level:  state.CurrentLevel,
			Avatar: user.Avatar,
		})
	}
	return leaderboard
}
