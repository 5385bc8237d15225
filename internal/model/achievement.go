package model

import (
	"time"

	"fitmentor_backend/internal/progress"
)

// Achievement 已授予的徽章。(user_id, badge_type) 唯一索引保证
// 重复评估时 FirstOrCreate 幂等，不会重复授予。
type Achievement struct {
	BaseModel
	UserID    uint               `gorm:"type:bigint unsigned;not null;uniqueIndex:idx_user_badge" json:"userId"`
	BadgeType progress.BadgeType `gorm:"size:50;not null;uniqueIndex:idx_user_badge" json:"badgeType"`
	EarnedAt  time.Time          `gorm:"not null" json:"earnedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// WithMeta 附加徽章展示元数据后的视图
type AchievementView struct {
	Achievement
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Rarity      progress.Rarity `json:"rarity"`
}

// View 挂上目录里的展示元数据
func (a Achievement) View() AchievementView {
	v := AchievementView{Achievement: a}
	if meta, ok := progress.BadgeMeta(a.BadgeType); ok {
		v.Name = meta.Name
		v.Description = meta.Description
		v.Icon = meta.Icon
		v.Rarity = meta.Rarity
	}
	return v
}
