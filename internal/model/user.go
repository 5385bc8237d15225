package model

import (
	"time"
)

type UserRole string

const (
	Mentee UserRole = "mentee"
	Mentor UserRole = "mentor"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('mentee','mentor','admin');default:'mentee'" json:"role"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	HeightCm  float64   `gorm:"default:0" json:"heightCm"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
