package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// SummaryService 为咨询师生成会话总结
type SummaryService struct {
	client *DeepseekClient
	wg     sync.WaitGroup
}

func NewSummaryService(client *DeepseekClient) *SummaryService {
	return &SummaryService{
		client: client,
	}
}

const sessionSummaryPrompt = `You are a clinical documentation assistant for a counseling platform.
You will receive a transcript of messages between a counselor and a client.

Write a concise session summary for the counselor's records:
1. Summarize the client's main concerns and emotional state
2. Note any progress, recurring themes, or changes since the previous summary (if one is provided)
3. Flag any statements suggesting risk of self-harm at the very top, prefixed with "RISK:"
4. Use neutral, professional language; do not diagnose
5. Keep the summary under 300 words
6. Plain text only, no markdown`

// GenerateSessionSummary 基于私信窗口流式生成会话总结
func (s *SummaryService) GenerateSessionSummary(ctx context.Context, counselorID string, messagesWindow []models.Message, previousSummary string) (<-chan string, error) {
	config.Logger.Debugw("生成会话总结",
		"counselorID", counselorID,
		"messageCount", len(messagesWindow),
	)

	outputChan := make(chan string)

	s.wg.Add(1) // 增加 WaitGroup 计数
	go func() {
		defer s.wg.Done() // 完成后减少计数
		defer close(outputChan)

		messages := []llms.MessageContent{
			{
				Role:  schema.ChatMessageTypeSystem,
				Parts: []llms.ContentPart{llms.TextPart(sessionSummaryPrompt)},
			},
		}

		// 如果有上一次总结，添加到消息中
		if previousSummary != "" {
			messages = append(messages, llms.MessageContent{
				Role:  schema.ChatMessageTypeSystem,
				Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Previous summary for reference:\n%s", previousSummary))},
			})
		}

		messages = append(messages, llms.MessageContent{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(formatSessionTranscript(messagesWindow, counselorID))},
		})

		options := []llms.CallOption{
			llms.WithTemperature(0.3),
			llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
				outputChan <- string(chunk)
				return nil
			}),
		}

		if _, err := s.client.Chat.GenerateContent(ctx, messages, options...); err != nil {
			config.Logger.Errorw("生成会话总结失败", "error", err)
			outputChan <- fmt.Sprintf("生成会话总结时出错: %v", err)
			return
		}
	}()

	return outputChan, nil
}

// formatSessionTranscript 将私信窗口整理为带角色标注的文字记录
func formatSessionTranscript(messagesWindow []models.Message, counselorID string) string {
	if len(messagesWindow) == 0 {
		return "No messages were exchanged in this period."
	}

	var sb strings.Builder
	for _, msg := range messagesWindow {
		role := "Client"
		if msg.SenderID == counselorID {
			role = "Counselor"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", msg.CreatedAt.Format("2006-01-02 15:04"), role, msg.Content))
	}
	return sb.String()
}

// Wait 等待所有后台总结任务完成，用于优雅关闭
func (s *SummaryService) Wait() {
	s.wg.Wait()
}
