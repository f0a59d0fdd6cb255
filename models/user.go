package models

import (
	"time"
)

// 用户角色
const (
	RoleUser      = "user"
	RoleCounselor = "counselor"
	RoleAdmin     = "admin"
)

// User 用户模型
type User struct {
	ID           string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Username     string     `gorm:"type:varchar(100)" json:"username"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	Role         string     `gorm:"type:varchar(20);default:user" json:"role"`
	Avatar       string     `gorm:"type:varchar(255)" json:"avatar"`
	Bio          string     `gorm:"type:text" json:"bio"` // 咨询师简介
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
