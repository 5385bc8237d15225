package database

import (
	"fmt"
	"log"

	"fitmentor_backend/internal/config"
	"fitmentor_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.GoalConfig{},
		&model.WeeklyUpdate{},
		&model.Achievement{},
		&model.XPState{},
		&model.MenteeNote{},
		&model.MenteeTag{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认管理员账号（仅在没有任何管理员时创建）
	var adminCount int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&adminCount)
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123456"), bcrypt.DefaultCost)
		if err == nil {
			admin := &model.User{
				Name:     "管理员",
				Email:    "admin@fitmentor.local",
				Password: string(hashed),
				Role:     model.Admin,
			}
			if err := db.Create(admin).Error; err != nil {
				log.Printf("Failed to seed admin account: %v", err)
			} else {
				log.Println("Default admin account created: admin@fitmentor.local")
			}
		}
	}

	return db, nil
}
