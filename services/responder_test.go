package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateResponseCrisisContainsHotlines(t *testing.T) {
	response := GenerateResponse("I want to die", EmotionCrisis, "Sam")
	assert.Contains(t, response, "988")
	assert.Contains(t, response, "741741")
	assert.Contains(t, response, "professional")
}

// 危机回复不做个性化，不包含用户名和问候语
func TestGenerateResponseCrisisNotPersonalized(t *testing.T) {
	response := GenerateResponse("I want to die", EmotionCrisis, "Sam")
	assert.NotContains(t, response, "Sam")
	assert.False(t, strings.HasPrefix(response, "Hi "))
}

func TestGenerateResponseHappyGreetsWithName(t *testing.T) {
	response := GenerateResponse("I am so happy and excited today!", EmotionHappy, "Sam")
	assert.True(t, strings.HasPrefix(response, "Hi Sam"))
	assert.Contains(t, response, "hear more")
}

func TestGenerateResponseAnxiousSuggestsBreathing(t *testing.T) {
	response := GenerateResponse("I feel so anxious", EmotionAnxious, "")
	assert.True(t, strings.HasPrefix(response, "Hi there"))
	assert.Contains(t, response, "breathing exercise")
}

func TestGenerateResponseEmptyNameFallsBack(t *testing.T) {
	for _, emotion := range []EmotionCategory{EmotionHappy, EmotionSad, EmotionAngry, EmotionAnxious, EmotionConfused, EmotionNeutral} {
		response := GenerateResponse("anything", emotion, "")
		assert.True(t, strings.HasPrefix(response, "Hi there"), "emotion %s", emotion)
	}
}

// 未识别的分类走默认分支，不报错
func TestGenerateResponseUnknownEmotionUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		response := GenerateResponse("hello", EmotionCategory("jubilant"), "Sam")
		assert.True(t, strings.HasPrefix(response, "Hi Sam"))
		assert.Contains(t, response, "I'm your assistant")
	})
}

func TestGenerateResponseDeterministic(t *testing.T) {
	first := GenerateResponse("I feel sad", EmotionSad, "Alex")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateResponse("I feel sad", EmotionSad, "Alex"))
	}
}
