package models

import "time"

// ChatResponse AI助手对话响应结构体
type ChatResponse struct {
	Success   bool    `json:"success"`
	Response  string  `json:"response"`
	Emotion   string  `json:"emotion"`
	Sentiment float64 `json:"sentiment"`
}

// ConcerningUser 平均情绪得分持续偏低的用户
type ConcerningUser struct {
	UserID       string  `json:"userId"`
	Username     string  `json:"username"`
	AvgSentiment float64 `json:"avgSentiment"`
}

// RecentConversation 带展示名的最近对话记录
type RecentConversation struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Username        string    `json:"username"`
	Message         string    `json:"message"`
	Response        string    `json:"response"`
	EmotionDetected string    `json:"emotionDetected"`
	SentimentScore  float64   `json:"sentimentScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsightSummary 管理后台情绪统计视图，按需实时计算
type InsightSummary struct {
	TotalConversations  int                  `json:"totalConversations"`
	TotalUsers          int                  `json:"totalUsers"`
	AverageSentiment    float64              `json:"averageSentiment"`
	EmotionDistribution map[string]int       `json:"emotionDistribution"`
	ConcerningUsers     []ConcerningUser     `json:"concerningUsers"`
	RecentConversations []RecentConversation `json:"recentConversations"`
}

// MessageUpdatesResponse 私信增量同步响应结构体
type MessageUpdatesResponse struct {
	Messages []Message `json:"messages"`
}

// CounselorResponse 咨询师列表项
type CounselorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}
