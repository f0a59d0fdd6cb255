package services

import (
	"github.com/edm1922/mental-health-support-sub002/models"
	"gorm.io/gorm"
)

// UserDirectory 用户展示名查询接口，查询失败不应阻断业务
type UserDirectory interface {
	DisplayName(userID string) (string, error)
}

// GormUserDirectory UserDirectory 的默认实现
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) DisplayName(userID string) (string, error) {
	var user models.User
	if err := d.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return "", err
	}
	return user.GetDisplayName(), nil
}
