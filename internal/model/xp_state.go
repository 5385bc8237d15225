package model

import (
	"fitmentor_backend/internal/progress"
)

// XPState 学员经验值状态，首次访问时惰性创建（TotalXP=0, Level=1）。
// 只由积分发放逻辑修改，TotalXP 与 CurrentLevel 单调不减。
type XPState struct {
	BaseModel
	UserID       uint `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	TotalXP      int  `gorm:"default:0" json:"totalXp"`
	CurrentLevel int  `gorm:"default:1" json:"currentLevel"`
}

func (XPState) TableName() string {
	return "xp_states"
}

// Progress 转为核心账本状态
func (s *XPState) Progress() progress.XPState {
	return progress.XPState{TotalXP: s.TotalXP, Level: s.CurrentLevel}
}

// Apply 将账本计算结果写回
func (s *XPState) Apply(state progress.XPState) {
	s.TotalXP = state.TotalXP
	s.CurrentLevel = state.Level
}
