package service

import (
	"fitmentor_backend/internal/config"
	"fitmentor_backend/internal/model"
	"fitmentor_backend/internal/progress"
	"fitmentor_backend/internal/repository"
	"fitmentor_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	GoalRepo *repository.GoalRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, goalRepo *repository.GoalRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		GoalRepo: goalRepo,
		Cfg:      cfg,
	}
}

// RegisterRequest 注册即入组：用户信息和目标配置一起提交
type RegisterRequest struct {
	Name          string               `json:"name" binding:"required"`
	Email         string               `json:"email" binding:"required,email"`
	Password      string               `json:"password" binding:"required,min=6"`
	GoalType      progress.GoalType    `json:"goalType" binding:"required,oneof=weight_loss muscle_gain"`
	GoalSubtype   progress.GoalSubtype `json:"goalSubtype" binding:"omitempty,oneof=standard moderate"`
	InitialWeight float64              `json:"initialWeight" binding:"required,gt=0"`
	TargetWeight  float64              `json:"targetWeight" binding:"required,gt=0"`
}

func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := util.ValidateGoal(req.GoalType, req.InitialWeight, req.TargetWeight); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     model.Mentee,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	subtype := req.GoalSubtype
	if subtype == "" {
		subtype = progress.SubtypeStandard
	}

	goal := &model.GoalConfig{
		UserID:        user.ID,
		GoalType:      req.GoalType,
		GoalSubtype:   subtype,
		InitialWeight: req.InitialWeight,
		TargetWeight:  req.TargetWeight,
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if user.Disabled {
		return "", util.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	go s.UserRepo.UpdateLastLogin(user.ID)

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
