package services

import (
	"sort"
	"time"

	"github.com/edm1922/mental-health-support-sub002/models"
	"gorm.io/gorm"
)

// 平均情绪得分低于该阈值的用户进入关注列表
const concerningThreshold = -0.3

// 统计视图中展示的最近对话条数上限
const recentConversationLimit = 20

// InsightStore 聚合统计所需的只读接口
type InsightStore interface {
	// FetchConversations 按创建时间倒序返回对话记录，since为nil时返回全部
	FetchConversations(since *time.Time) ([]models.ConversationRecord, error)
	// DisplayNames 批量查询用户展示名
	DisplayNames(userIDs []string) (map[string]string, error)
}

// GormInsightStore InsightStore 的默认实现
type GormInsightStore struct {
	db *gorm.DB
}

func NewGormInsightStore(db *gorm.DB) *GormInsightStore {
	return &GormInsightStore{db: db}
}

func (s *GormInsightStore) FetchConversations(since *time.Time) ([]models.ConversationRecord, error) {
	query := s.db.Order("created_at desc")
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var records []models.ConversationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormInsightStore) DisplayNames(userIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	var users []models.User
	if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		names[user.ID] = user.GetDisplayName()
	}
	return names, nil
}

// InsightService 管理后台情绪统计，只读、按需计算、不缓存
type InsightService struct {
	store InsightStore
}

func NewInsightService(store InsightStore) *InsightService {
	return &InsightService{store: store}
}

// Summarize 汇总对话记录的分布统计。since为nil时统计全量。
// 空集返回全零结果，查询失败向调用方返回错误。
func (s *InsightService) Summarize(since *time.Time) (*models.InsightSummary, error) {
	records, err := s.store.FetchConversations(since)
	if err != nil {
		return nil, err
	}

	summary := &models.InsightSummary{
		EmotionDistribution: make(map[string]int),
		ConcerningUsers:     []models.ConcerningUser{},
		RecentConversations: []models.RecentConversation{},
	}

	summary.TotalConversations = len(records)
	if len(records) == 0 {
		return summary, nil
	}

	// 按用户累计情绪得分
	type userStats struct {
		total float64
		count int
	}
	perUser := make(map[string]*userStats)
	var userIDs []string
	var sentimentSum float64

	for _, record := range records {
		sentimentSum += record.SentimentScore
		summary.EmotionDistribution[record.EmotionDetected]++

		stats, ok := perUser[record.UserID]
		if !ok {
			stats = &userStats{}
			perUser[record.UserID] = stats
			userIDs = append(userIDs, record.UserID)
		}
		stats.total += record.SentimentScore
		stats.count++
	}

	summary.TotalUsers = len(perUser)
	summary.AverageSentiment = sentimentSum / float64(len(records))

	names, err := s.store.DisplayNames(userIDs)
	if err != nil {
		return nil, err
	}

	// 平均情绪得分低于阈值的用户，最负的排最前
	for _, userID := range userIDs {
		stats := perUser[userID]
		avg := stats.total / float64(stats.count)
		if avg < concerningThreshold {
			summary.ConcerningUsers = append(summary.ConcerningUsers, models.ConcerningUser{
				UserID:       userID,
				Username:     names[userID],
				AvgSentiment: avg,
			})
		}
	}
	sort.Slice(summary.ConcerningUsers, func(i, j int) bool {
		a, b := summary.ConcerningUsers[i], summary.ConcerningUsers[j]
		if a.AvgSentiment != b.AvgSentiment {
			return a.AvgSentiment < b.AvgSentiment
		}
		return a.UserID < b.UserID
	})

	// 最近对话，倒序截断
	limit := recentConversationLimit
	if len(records) < limit {
		limit = len(records)
	}
	for _, record := range records[:limit] {
		summary.RecentConversations = append(summary.RecentConversations, models.RecentConversation{
			ID:              record.ID,
			UserID:          record.UserID,
			Username:        names[record.UserID],
			Message:         record.Message,
			Response:        record.Response,
			EmotionDetected: record.EmotionDetected,
			SentimentScore:  record.SentimentScore,
			CreatedAt:       record.CreatedAt,
		})
	}

	return summary, nil
}
