package repository

import (
	"fitmentor_backend/internal/model"

	"gorm.io/gorm"
)

// UpdateRepository 周打卡记录的数据访问，历史只追加
type UpdateRepository struct {
	DB *gorm.DB
}

func NewUpdateRepository(db *gorm.DB) *UpdateRepository {
	return &UpdateRepository{DB: db}
}

func (r *UpdateRepository) Create(update *model.WeeklyUpdate) error {
	return r.DB.Create(update).Error
}

// FindByUserID 获取学员全部打卡，按周号升序
func (r *UpdateRepository) FindByUserID(userID uint) ([]model.WeeklyUpdate, error) {
	var updates []model.WeeklyUpdate
	err := r.DB.Where("user_id = ?", userID).Order("week_number").Find(&updates).Error
	return updates, err
}

// FindLatestByUserID 获取最近一条打卡
func (r *UpdateRepository) FindLatestByUserID(userID uint) (*model.WeeklyUpdate, error) {
	var update model.WeeklyUpdate
	err := r.DB.Where("user_id = ?", userID).Order("week_number DESC").First(&update).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// CountByUserID 打卡总数，周号分配用（count+1）
func (r *UpdateRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.WeeklyUpdate{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
