package util

import (
	"errors"

	"fitmentor_backend/internal/progress"
)

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAccountDisabled    = errors.New("账号已被禁用")
	ErrGoalNotConfigured  = errors.New("尚未设置目标配置")
	ErrInvalidGoal        = errors.New("目标体重与目标类型不一致")
	ErrGoalLocked         = errors.New("已有打卡记录，初始体重不可修改")
	ErrNoteNotFound       = errors.New("备注不存在")
	ErrPermissionDenied   = errors.New("permission denied")
)

// ValidateGoal 校验目标体重与目标类型的方向一致:减重目标必须低于初始体重,增肌目标必须高于初始体重。
func ValidateGoal(goalType progress.GoalType, initialWeight, targetWeight float64) error {
	if initialWeight <= 0 || targetWeight <= 0 {
		return ErrInvalidGoal
	}
	switch goalType {
	case progress.WeightLoss:
		if targetWeight >= initialWeight {
			return ErrInvalidGoal
		}
	case progress.MuscleGain:
		if targetWeight <= initialWeight {
			return ErrInvalidGoal
		}
	default:
		return ErrInvalidGoal
	}
	return nil
}
