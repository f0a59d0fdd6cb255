package services

import (
	"fmt"
)

// crisisResponse 危机回复不做任何个性化，固定输出求助渠道
const crisisResponse = "I'm really concerned about what you just shared. You don't have to face this alone. " +
	"Please reach out to a mental health professional right now. " +
	"You can call or text 988 (Suicide & Crisis Lifeline) at any time, or text HOME to 741741 to reach the Crisis Text Line. " +
	"Your life matters, and there are people who want to help you through this."

// GenerateResponse 根据分类结果生成AI助手回复。
// 除 crisis 外每个分支都以问候语开头；未识别的分类走默认分支。永不panic。
func GenerateResponse(message string, emotion EmotionCategory, displayName string) string {
	// 危机分支优先级最高，跳过问候和个性化
	if emotion == EmotionCrisis {
		return crisisResponse
	}

	greeting := "Hi there"
	if displayName != "" {
		greeting = fmt.Sprintf("Hi %s", displayName)
	}

	switch emotion {
	case EmotionHappy:
		return fmt.Sprintf("%s! It's wonderful to hear that you're feeling good. Moments like these are worth holding on to. I'd love to hear more about what's been going well for you.", greeting)
	case EmotionSad:
		return fmt.Sprintf("%s. I'm sorry you're feeling down right now. It's okay to feel this way, and sharing it here is already a step forward. If the sadness stays with you, talking to one of our counselors might help.", greeting)
	case EmotionAngry:
		return fmt.Sprintf("%s. It sounds like something has really upset you, and that frustration is completely valid. Sometimes stepping away for a short walk or writing the feeling down can take the edge off. What happened?", greeting)
	case EmotionAnxious:
		return fmt.Sprintf("%s. Feeling anxious can be exhausting. Let's slow things down together: try a simple breathing exercise, breathe in for four seconds, hold for four, and breathe out for four. What's weighing on you the most right now?", greeting)
	case EmotionConfused:
		return fmt.Sprintf("%s. It sounds like things feel unclear at the moment, and that's a hard place to be. Sometimes naming one small piece of the confusion helps. What part feels most tangled?", greeting)
	case EmotionNeutral:
		return fmt.Sprintf("%s. Thanks for checking in. I'm here whenever you want to talk. How are you feeling today?", greeting)
	default:
		return fmt.Sprintf("%s. I'm your assistant, and I'm here for you. Feel free to share whatever is on your mind.", greeting)
	}
}
