package models

import (
	"math/rand"
	"strings"
	"time"
)

// InviteCode 咨询师邀请码，由管理员生成，兑换后用户升级为咨询师
type InviteCode struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	Code      string     `gorm:"type:varchar(20);uniqueIndex" json:"code"`
	CreatedAt time.Time  `json:"createdAt"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`
	UserID    *string    `gorm:"type:varchar(50)" json:"userId,omitempty"`
}

const inviteCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateInviteCode 生成8位邀请码
func GenerateInviteCode() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteByte(inviteCodeChars[rand.Intn(len(inviteCodeChars))])
	}
	return sb.String()
}
