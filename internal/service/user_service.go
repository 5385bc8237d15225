package service

import (
	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/repository"
	"fitmentor_backend/internal/util"
)

type UserService struct {
	UserRepo   *repository.UserRepository
	GoalRepo   *repository.GoalRepository
	UpdateRepo *repository.UpdateRepository
}

func NewUserService(userRepo *repository.UserRepository, goalRepo *repository.GoalRepository, updateRepo *repository.UpdateRepository) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		GoalRepo:   goalRepo,
		UpdateRepo: updateRepo,
	}
}

type ProfileUpdateRequest struct {
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	HeightCm float64 `json:"heightCm"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.HeightCm > 0 {
		user.HeightCm = req.HeightCm
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

type GoalUpdateRequest struct {
	InitialWeight          float64 `json:"initialWeight" binding:"gte=0"`
	TargetWeight           float64 `json:"targetWeight" binding:"required,gt=0"`
	WeeklyVariationPercent float64 `json:"weeklyVariationPercent" binding:"gte=0"`
}

// UpdateGoal 调整目标体重和每周预期。初始体重一旦有打卡记录即不可修改。
func (s *UserService) UpdateGoal(userID uint, req GoalUpdateRequest) (*model.GoalConfig, error) {
	goal, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, util.ErrGoalNotConfigured
	}

	initialWeight := goal.InitialWeight
	if req.InitialWeight > 0 && req.InitialWeight != goal.InitialWeight {
		count, err := s.UpdateRepo.CountByUserID(userID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, util.ErrGoalLocked
		}
		initialWeight = req.InitialWeight
	}

	if err := util.ValidateGoal(goal.GoalType, initialWeight, req.TargetWeight); err != nil {
		return nil, err
	}

	goal.InitialWeight = initialWeight
	goal.TargetWeight = req.TargetWeight
	goal.WeeklyVariationPercent = req.WeeklyVariationPercent

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
