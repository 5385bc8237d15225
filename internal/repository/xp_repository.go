package repository

import (
	"fitmentor_backend/internal/model"

	"gorm.io/gorm"
)

type XPRepository struct {
	DB *gorm.DB
}

func NewXPRepository(db *gorm.DB) *XPRepository {
	return &XPRepository{DB: db}
}

// FindOrCreate 惰性创建经验值状态（TotalXP=0, Level=1）
func (r *XPRepository) FindOrCreate(userID uint) (*model.XPState, error) {
	state := model.XPState{UserID: userID, CurrentLevel: 1}
	err := r.DB.Where("user_id = ?", userID).FirstOrCreate(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *XPRepository) Save(state *model.XPState) error {
	return r.DB.Save(state).Error
}

// FindTop 按总经验值降序取前 limit 名，排行榜用
func (r *XPRepository) FindTop(limit int) ([]model.XPState, error) {
	var states []model.XPState
	err := r.DB.Order("total_xp DESC").Limit(limit).Find(&states).Error
	return states, err
}
