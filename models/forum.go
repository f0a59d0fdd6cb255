package models

import "time"

// ForumPost 社区帖子模型
type ForumPost struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title        string    `gorm:"type:varchar(200)" json:"title"`
	Content      string    `gorm:"type:text" json:"content"`
	Category     string    `gorm:"type:varchar(50)" json:"category"`
	Status       int       `gorm:"type:int;default:0" json:"status"` // 0: 正常 1: 删除
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// ForumComment 帖子评论模型
type ForumComment struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	PostID    string    `gorm:"type:varchar(50);index" json:"postId"`
	UserID    string    `gorm:"type:varchar(50)" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Status    int       `gorm:"type:int;default:0" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
