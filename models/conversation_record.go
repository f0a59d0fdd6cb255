package models

import "time"

// ConversationRecord AI助手对话记录，写入后不再修改
type ConversationRecord struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(50);index" json:"user_id"`
	Message         string    `gorm:"type:text" json:"message"`
	Response        string    `gorm:"type:text" json:"response"`
	EmotionDetected string    `gorm:"type:varchar(20)" json:"emotionDetected"`
	SentimentScore  float64   `json:"sentimentScore"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
}

func (ConversationRecord) TableName() string {
	return "conversation_records"
}
