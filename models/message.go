package models

import "time"

// Message 咨询师与来访者之间的私信
type Message struct {
	ID          string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	SenderID    string     `gorm:"type:varchar(50);index" json:"senderId"`
	RecipientID string     `gorm:"type:varchar(50);index" json:"recipientId"`
	Content     string     `gorm:"type:text" json:"content"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
}
