package models

import "time"

// 预约状态
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment 咨询预约模型
type Appointment struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	PatientID       string    `gorm:"type:varchar(50);index" json:"patientId"`
	CounselorID     string    `gorm:"type:varchar(50);index" json:"counselorId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `gorm:"default:60" json:"durationMinutes"`
	Status          string    `gorm:"type:varchar(20);default:pending" json:"status"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	LastModified    time.Time `json:"lastModified"`
}

// ValidStatusTransition 校验预约状态流转是否合法
func ValidStatusTransition(from, to string) bool {
	switch from {
	case AppointmentPending:
		return to == AppointmentConfirmed || to == AppointmentCancelled
	case AppointmentConfirmed:
		return to == AppointmentCompleted || to == AppointmentCancelled
	default:
		return false
	}
}
