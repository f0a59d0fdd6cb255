package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInsightStore 内存版只读存储，按创建时间倒序返回
type fakeInsightStore struct {
	records []models.ConversationRecord
	names   map[string]string
	err     error
}

func (s *fakeInsightStore) FetchConversations(since *time.Time) ([]models.ConversationRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ConversationRecord
	for _, record := range s.records {
		if since == nil || !record.CreatedAt.Before(*since) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *fakeInsightStore) DisplayNames(userIDs []string) (map[string]string, error) {
	names := make(map[string]string)
	for _, id := range userIDs {
		if name, ok := s.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func makeRecord(id, userID, emotion string, score float64, createdAt time.Time) models.ConversationRecord {
	return models.ConversationRecord{
		ID:              id,
		UserID:          userID,
		Message:         "message " + id,
		Response:        "response " + id,
		EmotionDetected: emotion,
		SentimentScore:  score,
		CreatedAt:       createdAt,
	}
}

func TestSummarizeEmptySet(t *testing.T) {
	service := NewInsightService(&fakeInsightStore{})

	summary, err := service.Summarize(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalConversations)
	assert.Equal(t, 0, summary.TotalUsers)
	assert.Equal(t, 0.0, summary.AverageSentiment)
	assert.Empty(t, summary.EmotionDistribution)
	assert.Empty(t, summary.ConcerningUsers)
	assert.Empty(t, summary.RecentConversations)
}

func TestSummarizeDistributionAndAverage(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{
		records: []models.ConversationRecord{
			makeRecord("r3", "u2", "sad", -0.7, base.Add(2*time.Hour)),
			makeRecord("r2", "u1", "happy", 0.8, base.Add(time.Hour)),
			makeRecord("r1", "u1", "happy", 0.8, base),
		},
		names: map[string]string{"u1": "Alice", "u2": "Bob"},
	}
	service := NewInsightService(store)

	summary, err := service.Summarize(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalConversations)
	assert.Equal(t, 2, summary.TotalUsers)
	assert.InDelta(t, (0.8+0.8-0.7)/3, summary.AverageSentiment, 1e-9)
	assert.Equal(t, map[string]int{"happy": 2, "sad": 1}, summary.EmotionDistribution)

	// 最近对话倒序，带展示名
	require.Len(t, summary.RecentConversations, 3)
	assert.Equal(t, "r3", summary.RecentConversations[0].ID)
	assert.Equal(t, "Bob", summary.RecentConversations[0].Username)
}

func TestSummarizeConcerningUsersSortedAscending(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{
		records: []models.ConversationRecord{
			makeRecord("r1", "crisis-user", "crisis", -1.0, base.Add(3*time.Hour)),
			makeRecord("r2", "sad-user", "sad", -0.7, base.Add(2*time.Hour)),
			makeRecord("r3", "happy-user", "happy", 0.8, base.Add(time.Hour)),
			makeRecord("r4", "confused-user", "confused", -0.2, base),
		},
		names: map[string]string{"crisis-user": "C", "sad-user": "S", "happy-user": "H", "confused-user": "M"},
	}
	service := NewInsightService(store)

	summary, err := service.Summarize(nil)
	require.NoError(t, err)

	// -0.2 高于阈值 -0.3，不进入关注列表
	require.Len(t, summary.ConcerningUsers, 2)
	assert.Equal(t, "crisis-user", summary.ConcerningUsers[0].UserID)
	assert.InDelta(t, -1.0, summary.ConcerningUsers[0].AvgSentiment, 1e-9)
	assert.Equal(t, "sad-user", summary.ConcerningUsers[1].UserID)
}

func TestSummarizeRecentConversationsBounded(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{names: map[string]string{"u1": "Alice"}}
	// 倒序构造25条记录
	for i := 24; i >= 0; i-- {
		store.records = append(store.records,
			makeRecord(fmt.Sprintf("r%d", i), "u1", "neutral", 0.0, base.Add(time.Duration(i)*time.Minute)))
	}
	service := NewInsightService(store)

	summary, err := service.Summarize(nil)
	require.NoError(t, err)

	assert.Equal(t, 25, summary.TotalConversations)
	require.Len(t, summary.RecentConversations, recentConversationLimit)
	assert.Equal(t, "r24", summary.RecentConversations[0].ID)
}

func TestSummarizeWindowFilter(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeInsightStore{
		records: []models.ConversationRecord{
			makeRecord("recent", "u1", "happy", 0.8, base.Add(time.Hour)),
			makeRecord("old", "u1", "sad", -0.7, base.Add(-48*time.Hour)),
		},
		names: map[string]string{"u1": "Alice"},
	}
	service := NewInsightService(store)

	since := base
	summary, err := service.Summarize(&since)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalConversations)
	assert.Equal(t, map[string]int{"happy": 1}, summary.EmotionDistribution)
}

func TestSummarizePropagatesStoreError(t *testing.T) {
	store := &fakeInsightStore{err: assert.AnError}
	service := NewInsightService(store)

	summary, err := service.Summarize(nil)
	assert.Error(t, err)
	assert.Nil(t, summary)
}
