package models

import (
	"time"
)

// SessionSummary 咨询师请求生成的AI会话总结
type SessionSummary struct {
	ID          string    `gorm:"primaryKey"`
	CounselorID string    `gorm:"index:idx_counselor_patient_date,unique"`
	PatientID   string    `gorm:"index:idx_counselor_patient_date,unique"`
	StartDate   time.Time `gorm:"index:idx_counselor_patient_date,unique"`
	EndDate     time.Time `gorm:"index:idx_counselor_patient_date,unique"`
	Summary     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

func (SessionSummary) TableName() string {
	return "session_summaries"
}
