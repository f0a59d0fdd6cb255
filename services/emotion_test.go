package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmotionHappyScenario(t *testing.T) {
	result := ClassifyEmotion("I am so happy and excited today!")
	assert.Equal(t, EmotionHappy, result.Emotion)
	assert.Equal(t, 0.8, result.SentimentScore)
}

func TestClassifyEmotionAnxiousScenario(t *testing.T) {
	result := ClassifyEmotion("I feel so anxious and overwhelmed about everything")
	assert.Equal(t, EmotionAnxious, result.Emotion)
	assert.Equal(t, -0.5, result.SentimentScore)
}

func TestClassifyEmotionCrisisScenario(t *testing.T) {
	result := ClassifyEmotion("sometimes I just want to die")
	assert.Equal(t, EmotionCrisis, result.Emotion)
	assert.Equal(t, -1.0, result.SentimentScore)
}

func TestClassifyEmotionEmptyMessage(t *testing.T) {
	result := ClassifyEmotion("")
	assert.Equal(t, EmotionNeutral, result.Emotion)
	assert.Equal(t, 0.0, result.SentimentScore)
}

func TestClassifyEmotionNoKeywordsIsNeutral(t *testing.T) {
	result := ClassifyEmotion("The weather report said it might rain on Tuesday.")
	assert.Equal(t, EmotionNeutral, result.Emotion)
	assert.Equal(t, 0.0, result.SentimentScore)
}

func TestClassifyEmotionCaseInsensitive(t *testing.T) {
	result := ClassifyEmotion("I AM SO HAPPY")
	assert.Equal(t, EmotionHappy, result.Emotion)
}

// 非零计数并列时，遍历顺序靠前的分类胜出
func TestClassifyEmotionTieBreakPrefersEarlierCategory(t *testing.T) {
	result := ClassifyEmotion("happy but also sad")
	assert.Equal(t, EmotionHappy, result.Emotion)
}

// 危机优先级：只要命中危机关键词且无其他分类计数严格更高，判定为 crisis
func TestClassifyEmotionCrisisWinsTies(t *testing.T) {
	result := ClassifyEmotion("I feel sad and suicidal")
	assert.Equal(t, EmotionCrisis, result.Emotion)
	assert.Equal(t, -1.0, result.SentimentScore)
}

// 其他分类计数严格更高时仍然胜过危机关键词
func TestClassifyEmotionHigherCountBeatsCrisis(t *testing.T) {
	result := ClassifyEmotion("I am happy and excited even though I once felt suicidal")
	assert.Equal(t, EmotionHappy, result.Emotion)
}

// 同一关键词重复出现只计一次
func TestClassifyEmotionRepeatedKeywordCountsOnce(t *testing.T) {
	// "sad" 出现三次只计1，"anxious"+"worried" 计2
	result := ClassifyEmotion("sad sad sad, and I'm anxious and worried")
	assert.Equal(t, EmotionAnxious, result.Emotion)
}

func TestClassifyEmotionDeterministic(t *testing.T) {
	message := "I'm worried and confused about my future"
	first := ClassifyEmotion(message)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyEmotion(message))
	}
}

func TestSentimentScoreTable(t *testing.T) {
	expected := map[EmotionCategory]float64{
		EmotionHappy:    0.8,
		EmotionSad:      -0.7,
		EmotionAngry:    -0.9,
		EmotionAnxious:  -0.5,
		EmotionConfused: -0.2,
		EmotionCrisis:   -1.0,
		EmotionNeutral:  0.0,
	}
	for category, score := range expected {
		assert.Equal(t, score, SentimentScore(category), "category %s", category)
	}
}

// 除 neutral 外每个分类都必须有关键词
func TestEveryCategoryHasKeywords(t *testing.T) {
	for _, category := range categoryOrder {
		assert.NotEmpty(t, Keywords(category), "category %s", category)
	}
}
