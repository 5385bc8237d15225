package model

import (
	"fitmentor_backend/internal/progress"
)

// WeeklyUpdate 周打卡记录，只追加不修改。
// WeekNumber 由服务端按已有记录数+1单调分配，同一学员内唯一。
// swagger:model WeeklyUpdate
type WeeklyUpdate struct {
	BaseModel
	UserID     uint    `gorm:"index;type:bigint unsigned;not null;uniqueIndex:idx_user_week" json:"userId"`
	WeekNumber int     `gorm:"not null;uniqueIndex:idx_user_week" json:"weekNumber"`
	Weight     float64 `gorm:"not null" json:"weight"`

	BodyFatPercentage  *float64 `json:"bodyFatPercentage,omitempty"`
	NeckCircumference  *float64 `json:"neckCircumference,omitempty"`
	WaistCircumference *float64 `json:"waistCircumference,omitempty"`
	HipCircumference   *float64 `json:"hipCircumference,omitempty"`

	// 最多3张进度照片的不透明存储路径
	PhotoFront string `gorm:"size:255" json:"photoFront,omitempty"`
	PhotoSide  string `gorm:"size:255" json:"photoSide,omitempty"`
	PhotoBack  string `gorm:"size:255" json:"photoBack,omitempty"`

	Notes string `gorm:"type:text" json:"notes"`
}

func (WeeklyUpdate) TableName() string {
	return "weekly_updates"
}

// PhotoCount 已上传照片数量
func (u *WeeklyUpdate) PhotoCount() int {
	count := 0
	for _, p := range []string{u.PhotoFront, u.PhotoSide, u.PhotoBack} {
		if p != "" {
			count++
		}
	}
	return count
}

// FullyMeasured 体脂率与三围是否全部填写
func (u *WeeklyUpdate) FullyMeasured() bool {
	return u.BodyFatPercentage != nil && u.NeckCircumference != nil &&
		u.WaistCircumference != nil && u.HipCircumference != nil
}

// Progress 转为核心算法消费的打卡视图
func (u *WeeklyUpdate) Progress() progress.Update {
	return progress.Update{
		Week:      u.WeekNumber,
		Weight:    u.Weight,
		Photos:    u.PhotoCount(),
		Measured:  u.FullyMeasured(),
		CreatedAt: u.CreatedAt,
	}
}

// ProgressUpdates 批量转换
func ProgressUpdates(updates []WeeklyUpdate) []progress.Update {
	result := make([]progress.Update, len(updates))
	for i := range updates {
		result[i] = updates[i].Progress()
	}
	return result
}
