package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DeepseekClient 会话总结使用的大模型客户端
type DeepseekClient struct {
	Chat llms.Model
}

func NewDeepseekClient(apiKey, apiEndpoint string) (*DeepseekClient, error) {
	v3, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("deepseek/deepseek-v3"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Deepseek client: %w", err)
	}

	return &DeepseekClient{
		Chat: v3,
	}, nil
}
