package repository

import (
	"fitmentor_backend/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

// Assign 给学员打标签，同名标签只保留一个
func (r *TagRepository) Assign(tag *model.MenteeTag) error {
	existing := model.MenteeTag{}
	err := r.DB.Where("mentee_id = ? AND name = ?", tag.MenteeID, tag.Name).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(tag).Error
}

func (r *TagRepository) FindByMenteeID(menteeID uint) ([]model.MenteeTag, error) {
	var tags []model.MenteeTag
	err := r.DB.Where("mentee_id = ?", menteeID).Order("name").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Remove(menteeID uint, name string) error {
	return r.DB.Where("mentee_id = ? AND name = ?", menteeID, name).
		Delete(&model.MenteeTag{}).Error
}
