package model

import (
	"fitmentor_backend/internal/progress"
)

// GoalConfig 学员的目标配置，入组时创建。
// InitialWeight 在产生打卡记录后不可修改。
// swagger:model GoalConfig
type GoalConfig struct {
	BaseModel
	UserID        uint                 `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	GoalType      progress.GoalType    `gorm:"type:enum('weight_loss','muscle_gain');not null" json:"goalType"`
	GoalSubtype   progress.GoalSubtype `gorm:"type:enum('standard','moderate');default:'standard'" json:"goalSubtype"`
	InitialWeight float64              `gorm:"not null" json:"initialWeight"`
	TargetWeight  float64              `gorm:"not null" json:"targetWeight"`
	// 每周预期变化百分比，0 表示使用产品默认值
	WeeklyVariationPercent float64 `gorm:"default:0" json:"weeklyVariationPercent"`
}

func (GoalConfig) TableName() string {
	return "goal_configs"
}

// Progress 转为核心算法消费的目标视图
func (g *GoalConfig) Progress() progress.Goal {
	return progress.Goal{
		Type:                   g.GoalType,
		Subtype:                g.GoalSubtype,
		InitialWeight:          g.InitialWeight,
		TargetWeight:           g.TargetWeight,
		WeeklyVariationPercent: g.WeeklyVariationPercent,
	}
}
