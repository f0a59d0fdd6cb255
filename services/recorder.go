package services

import (
	"context"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ConversationStore 对话记录落库的窄接口
type ConversationStore interface {
	Insert(record *models.ConversationRecord) error
	InsertRaw(record *models.ConversationRecord) error
}

// GormConversationStore ConversationStore 的默认实现
type GormConversationStore struct {
	db *gorm.DB
}

func NewGormConversationStore(db *gorm.DB) *GormConversationStore {
	return &GormConversationStore{db: db}
}

func (s *GormConversationStore) Insert(record *models.ConversationRecord) error {
	return s.db.Create(record).Error
}

// InsertRaw 结构化写入失败时的原生SQL回退，使用参数绑定
func (s *GormConversationStore) InsertRaw(record *models.ConversationRecord) error {
	return s.db.Exec(
		"INSERT INTO conversation_records (id, user_id, message, response, emotion_detected, sentiment_score, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.UserID, record.Message, record.Response,
		record.EmotionDetected, record.SentimentScore, record.CreatedAt,
	).Error
}

// Recorder 对话审计写入器。写入失败只记日志，绝不影响已生成的回复。
type Recorder struct {
	store ConversationStore
	cache *redis.Client
}

func NewRecorder(store ConversationStore, cache *redis.Client) *Recorder {
	return &Recorder{store: store, cache: cache}
}

// Record 持久化一条对话记录。回退顺序：结构化写入 -> 原生SQL写入，
// 两者都失败时放弃本条记录并返回 ok=false，不做重试。
func (r *Recorder) Record(userID, message, response string, result EmotionResult) (string, bool) {
	record := &models.ConversationRecord{
		ID:              utils.GenerateID(),
		UserID:          userID,
		Message:         message,
		Response:        response,
		EmotionDetected: string(result.Emotion),
		SentimentScore:  result.SentimentScore,
		CreatedAt:       time.Now().UTC(),
	}

	if err := r.store.Insert(record); err != nil {
		config.Logger.Errorw("对话记录写入失败，尝试原生SQL回退",
			"error", err,
			"uid", userID,
		)
		if err := r.store.InsertRaw(record); err != nil {
			config.Logger.Errorw("对话记录回退写入失败，放弃本条记录",
				"error", err,
				"uid", userID,
			)
			return "", false
		}
	}

	r.cacheLastEmotion(userID, result)
	return record.ID, true
}

// cacheLastEmotion 将最近一次情绪写入Redis，供用户端快速查询，失败只记日志
func (r *Recorder) cacheLastEmotion(userID string, result EmotionResult) {
	if r.cache == nil {
		return
	}
	err := r.cache.Set(context.Background(), "last_emotion:"+userID, string(result.Emotion), 24*time.Hour).Err()
	if err != nil {
		config.Logger.Errorw("最近情绪缓存写入失败",
			"error", err,
			"uid", userID,
		)
	}
}
