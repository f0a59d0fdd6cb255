package services

import (
	"errors"
	"testing"

	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConversationStore 可控制两级写入是否失败
type fakeConversationStore struct {
	insertErr    error
	insertRawErr error

	inserted    []*models.ConversationRecord
	rawInserted []*models.ConversationRecord
}

func (s *fakeConversationStore) Insert(record *models.ConversationRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, record)
	return nil
}

func (s *fakeConversationStore) InsertRaw(record *models.ConversationRecord) error {
	if s.insertRawErr != nil {
		return s.insertRawErr
	}
	s.rawInserted = append(s.rawInserted, record)
	return nil
}

func TestRecorderStructuredInsert(t *testing.T) {
	store := &fakeConversationStore{}
	recorder := NewRecorder(store, nil)

	result := ClassifyEmotion("I feel sad today")
	id, ok := recorder.Record("user-1", "I feel sad today", "Hi there. I'm sorry...", result)

	require.True(t, ok)
	assert.NotEmpty(t, id)
	require.Len(t, store.inserted, 1)
	assert.Empty(t, store.rawInserted)

	record := store.inserted[0]
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "sad", record.EmotionDetected)
	assert.Equal(t, -0.7, record.SentimentScore)
	assert.False(t, record.CreatedAt.IsZero())
}

// 结构化写入失败时回退到原生SQL写入
func TestRecorderFallsBackToRawInsert(t *testing.T) {
	store := &fakeConversationStore{
		insertErr: errors.New("unknown column 'emotion_detected'"),
	}
	recorder := NewRecorder(store, nil)

	id, ok := recorder.Record("user-1", "hello", "Hi there...", ClassifyEmotion("hello"))

	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Empty(t, store.inserted)
	require.Len(t, store.rawInserted, 1)
}

// 两级写入都失败时放弃本条记录，不panic也不返回错误
func TestRecorderAbandonsAfterBothFail(t *testing.T) {
	store := &fakeConversationStore{
		insertErr:    errors.New("connection refused"),
		insertRawErr: errors.New("connection refused"),
	}
	recorder := NewRecorder(store, nil)

	assert.NotPanics(t, func() {
		id, ok := recorder.Record("user-1", "hello", "Hi there...", ClassifyEmotion("hello"))
		assert.False(t, ok)
		assert.Empty(t, id)
	})
}
