package model

// MenteeTag 学员标签，同一学员下标签名唯一
type MenteeTag struct {
	UUIDBase
	MenteeID uint   `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_mentee_tag" json:"menteeId"`
	Name     string `gorm:"size:50;not null;uniqueIndex:idx_mentee_tag" json:"name"`
	Color    string `gorm:"size:20" json:"color"`
}

func (MenteeTag) TableName() string {
	return "mentee_tags"
}
