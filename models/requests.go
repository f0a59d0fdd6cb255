package models

import (
	"fmt"
	"time"
)

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChatRequest AI助手对话请求结构体
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// AppointmentRequest 创建预约请求结构体
type AppointmentRequest struct {
	CounselorID     string    `json:"counselorId" binding:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" binding:"required"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes"`
}

func (r *AppointmentRequest) Validate() error {
	// 将时间转换为 UTC
	r.ScheduledAt = r.ScheduledAt.UTC()

	if r.ScheduledAt.Before(time.Now().UTC()) {
		return fmt.Errorf("scheduled time must be in the future")
	}
	if r.DurationMinutes == 0 {
		r.DurationMinutes = 60
	}
	if r.DurationMinutes < 15 || r.DurationMinutes > 180 {
		return fmt.Errorf("duration must be between 15 and 180 minutes")
	}
	return nil
}

// AppointmentStatusRequest 更新预约状态请求结构体
type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"` // confirmed, cancelled, completed
}

// MessageRequest 发送私信请求结构体
type MessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

// ForumPostRequest 发帖请求结构体
type ForumPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// ForumCommentRequest 评论请求结构体
type ForumCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// RedeemInviteRequest 兑换咨询师邀请码请求结构体
type RedeemInviteRequest struct {
	Code string `json:"code" binding:"required"`
}

// SessionSummaryRequest 会话总结请求结构体
type SessionSummaryRequest struct {
	PatientID string    `json:"patientId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (r *SessionSummaryRequest) Validate() error {
	// 将时间转换为 UTC
	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()

	if r.StartDate.After(r.EndDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}
