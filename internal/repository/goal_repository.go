package repository

import (
	"fitmentor_backend/internal/model"

	"gorm.io/gorm"
)

// GoalRepository 目标配置的数据访问
type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.GoalConfig) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.GoalConfig) error {
	return r.DB.Save(goal).Error
}

// FindByUserID 获取学员的目标配置
func (r *GoalRepository) FindByUserID(userID uint) (*model.GoalConfig, error) {
	var goal model.GoalConfig
	err := r.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
