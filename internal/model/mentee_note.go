package model

// MenteeNote 导师/管理员对学员的备注
type MenteeNote struct {
	UUIDBase
	MenteeID uint   `gorm:"index;type:bigint unsigned;not null" json:"menteeId"`
	AuthorID uint   `gorm:"type:bigint unsigned;not null" json:"authorId"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Pinned   bool   `gorm:"default:false" json:"pinned"`
}

func (MenteeNote) TableName() string {
	return "mentee_notes"
}
