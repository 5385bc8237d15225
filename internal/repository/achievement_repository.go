package repository

import (
	"time"

	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("earned_at").Find(&achievements).Error
	return achievements, err
}

// Award 幂等授予：(user_id, badge_type) 唯一，已存在时不插入也不报错
func (r *AchievementRepository) Award(userID uint, badge progress.BadgeType, earnedAt time.Time) error {
	achievement := model.Achievement{
		UserID:    userID,
		BadgeType: badge,
		EarnedAt:  earnedAt,
	}
	return r.DB.Where("user_id = ? AND badge_type = ?", userID, badge).
		FirstOrCreate(&achievement).Error
}

// EarnedSet 已授予徽章集合，评估引擎输入
func (r *AchievementRepository) EarnedSet(userID uint) (map[progress.BadgeType]bool, error) {
	achievements, err := r.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	earned := make(map[progress.BadgeType]bool, len(achievements))
	for _, a := range achievements {
		earned[a.BadgeType] = true
	}
	return earned, nil
}
