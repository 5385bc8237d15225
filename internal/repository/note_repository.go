package repository

import (
	"fitmentor_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.MenteeNote) error {
	return r.DB.Create(note).Error
}

// FindByMenteeID 置顶在前，其余按创建时间倒序
func (r *NoteRepository) FindByMenteeID(menteeID uint) ([]model.MenteeNote, error) {
	var notes []model.MenteeNote
	err := r.DB.Where("mentee_id = ?", menteeID).
		Order("pinned DESC, created_at DESC").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) FindByID(id string) (*model.MenteeNote, error) {
	var note model.MenteeNote
	err := r.DB.Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.MenteeNote{}).Error
}
