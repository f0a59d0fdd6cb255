package services

import (
	"strings"
)

// EmotionCategory AI助手的情绪分类标签，固定闭集
type EmotionCategory string

const (
	EmotionHappy    EmotionCategory = "happy"
	EmotionSad      EmotionCategory = "sad"
	EmotionAngry    EmotionCategory = "angry"
	EmotionAnxious  EmotionCategory = "anxious"
	EmotionConfused EmotionCategory = "confused"
	EmotionNeutral  EmotionCategory = "neutral"
	EmotionCrisis   EmotionCategory = "crisis"
)

// EmotionResult 单条消息的分类结果
type EmotionResult struct {
	Emotion        EmotionCategory `json:"emotion"`
	SentimentScore float64         `json:"sentimentScore"`
}

// categoryOrder 固定遍历顺序，计数相同时排前的分类胜出
var categoryOrder = []EmotionCategory{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionAnxious,
	EmotionConfused,
	EmotionCrisis,
}

// emotionKeywords 情绪关键词表，全部小写，按子串匹配
var emotionKeywords = map[EmotionCategory][]string{
	EmotionHappy: {
		"happy", "excited", "great", "glad", "joy", "wonderful",
		"amazing", "grateful", "thankful", "proud", "better today",
	},
	EmotionSad: {
		"sad", "depressed", "unhappy", "miserable", "crying", "cried",
		"lonely", "heartbroken", "empty inside", "down lately", "grief",
	},
	EmotionAngry: {
		"angry", "furious", "mad at", "hate", "annoyed", "irritated",
		"frustrated", "fed up", "rage",
	},
	EmotionAnxious: {
		"anxious", "anxiety", "worried", "nervous", "overwhelmed",
		"panic", "stressed", "scared", "afraid", "can't sleep",
	},
	EmotionConfused: {
		"confused", "don't understand", "not sure", "unsure", "lost",
		"don't know what to do", "stuck", "mixed up",
	},
	EmotionCrisis: {
		"want to die", "kill myself", "suicide", "suicidal", "end my life",
		"end it all", "self harm", "hurt myself", "no reason to live",
		"better off dead",
	},
}

// sentimentScores 分类到情绪极性得分的静态映射，取值范围[-1, 1]
var sentimentScores = map[EmotionCategory]float64{
	EmotionHappy:    0.8,
	EmotionSad:      -0.7,
	EmotionAngry:    -0.9,
	EmotionAnxious:  -0.5,
	EmotionConfused: -0.2,
	EmotionCrisis:   -1.0,
	EmotionNeutral:  0.0,
}

// Keywords 返回某个分类的关键词表
func Keywords(category EmotionCategory) []string {
	return emotionKeywords[category]
}

// SentimentScore 返回某个分类对应的情绪得分
func SentimentScore(category EmotionCategory) float64 {
	return sentimentScores[category]
}

// ClassifyEmotion 对单条消息做关键词情绪分类。
// 纯函数：小写后统计各分类命中的关键词个数（同一关键词重复出现只计一次），
// 取计数严格最高的分类；计数并列时按固定遍历顺序取排前者；全部为零时回落到 neutral。
// crisis 例外：只要命中危机关键词且计数不低于最高计数，直接判定为 crisis。
func ClassifyEmotion(message string) EmotionResult {
	lowered := strings.ToLower(message)

	best := EmotionNeutral
	bestCount := 0
	crisisCount := 0

	for _, category := range categoryOrder {
		count := 0
		for _, keyword := range emotionKeywords[category] {
			if strings.Contains(lowered, keyword) {
				count++
			}
		}
		if category == EmotionCrisis {
			crisisCount = count
		}
		if count > bestCount {
			best = category
			bestCount = count
		}
	}

	// 危机优先：命中任何危机关键词且没有其他分类计数严格更高时，判定为 crisis
	if crisisCount > 0 && crisisCount >= bestCount {
		best = EmotionCrisis
	}

	return EmotionResult{
		Emotion:        best,
		SentimentScore: sentimentScores[best],
	}
}
