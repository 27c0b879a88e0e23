package model

import (
	"time"
)

type User struct {
	ID             uint64  `gorm:"primaryKey" json:"id"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_email" json:"email"`
	Nickname       string  `gorm:"type:varchar(255)" json:"nickname"`
	HashedPassword string  `gorm:"type:varchar(255);not null" json:"-"`
	IsActive       bool    `gorm:"type:tinyint(1);default:1" json:"is_active"`
	IsSuperuser    bool    `gorm:"type:tinyint(1);default:0" json:"is_superuser"`
	Gender         string  `gorm:"type:varchar(16);default:'other'" json:"gender"`
	FirstName      *string `gorm:"type:varchar(255)" json:"first_name"`
	LastName       *string `gorm:"type:varchar(255)" json:"last_name"`
	City           *string `gorm:"type:varchar(255)" json:"city"`
	State          *string `gorm:"type:varchar(255)" json:"state"`
	Country        *string `gorm:"type:varchar(255)" json:"country"`
	Address        *string `gorm:"type:varchar(255)" json:"address"`
	Phone          *string `gorm:"type:varchar(64)" json:"phone"`
	Picture        *string `gorm:"type:varchar(512)" json:"picture"`
	RoleID         uint64  `gorm:"not null;index:idx_user_role" json:"role_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Role  Role   `gorm:"foreignKey:RoleID;references:ID"`
	Posts []Post `gorm:"foreignKey:AuthorID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
