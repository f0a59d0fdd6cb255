package controllers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/services"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ChatRecorder 对话审计写入接口，失败由实现方内部消化
type ChatRecorder interface {
	Record(userID, message, response string, result services.EmotionResult) (string, bool)
}

type ChatController struct {
	recorder       ChatRecorder
	directory      services.UserDirectory
	summaryService *services.SummaryService
	wg             sync.WaitGroup
}

func NewChatController(recorder ChatRecorder, directory services.UserDirectory, summaryService *services.SummaryService) *ChatController {
	return &ChatController{
		recorder:       recorder,
		directory:      directory,
		summaryService: summaryService,
	}
}

// SendMessage AI助手对话接口。先同步生成回复，审计写入放入后台，
// 写入失败不影响用户收到的回复。
func (c *ChatController) SendMessage(ctx *gin.Context) {
	// 获取用户信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "未获取到用户ID"})
		return
	}

	var chatRequest models.ChatRequest
	if err := ctx.ShouldBindJSON(&chatRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request: " + err.Error(),
		})
		return
	}

	if strings.TrimSpace(chatRequest.Message) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "消息内容不能为空"})
		return
	}

	// 关键词情绪分类
	result := services.ClassifyEmotion(chatRequest.Message)

	// 展示名查询失败时退回匿名问候，不阻断回复
	displayName, err := c.directory.DisplayName(uid.(string))
	if err != nil {
		config.Logger.Errorw("获取用户展示名失败", "error", err, "uid", uid)
		displayName = ""
	}

	response := services.GenerateResponse(chatRequest.Message, result.Emotion, displayName)

	// 审计写入在后台进行
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.recorder.Record(uid.(string), chatRequest.Message, response, result)
	}()

	ctx.JSON(http.StatusOK, models.ChatResponse{
		Success:   true,
		Response:  response,
		Emotion:   string(result.Emotion),
		Sentiment: result.SentimentScore,
	})
}

// SummarizeSessions 咨询师请求生成会话总结，流式返回
func (c *ChatController) SummarizeSessions(ctx *gin.Context) {
	// 获取咨询师信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var request models.SessionSummaryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 验证并转换时区
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 查询该时间窗口内与来访者的私信
	var messagesWindow []models.Message
	if err := config.DB.Where(
		"((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)) AND created_at BETWEEN ? AND ?",
		uid, request.PatientID, request.PatientID, uid, request.StartDate, request.EndDate).
		Order("created_at asc").Find(&messagesWindow).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取私信记录失败"})
		return
	}
	config.Logger.Debugw("查询到的私信记录", "count", len(messagesWindow))

	// 查询上一次的会话总结
	var previousSummary string
	var previous models.SessionSummary
	err := config.DB.Where("counselor_id = ? AND patient_id = ? AND start_date < ?",
		uid.(string), request.PatientID, request.StartDate).
		Order("start_date desc").
		First(&previous).Error
	if err == nil {
		previousSummary = previous.Summary
	}

	// 设置流式响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	stream, err := c.summaryService.GenerateSessionSummary(ctx, uid.(string), messagesWindow, previousSummary)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate session summary: " + err.Error(),
		})
		return
	}

	// 发送流式响应
	var fullSummary strings.Builder
	for chunk := range stream {
		if _, err := ctx.Writer.Write([]byte(chunk)); err != nil {
			config.Logger.Errorw("写入流式响应失败", "error", err)
			return
		}
		ctx.Writer.Flush()
		fullSummary.WriteString(chunk)
	}

	// 在协程中存储总结结果
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		// 检查是否已存在相同窗口的总结
		var existing models.SessionSummary
		err := config.DB.Where("counselor_id = ? AND patient_id = ? AND start_date = ? AND end_date = ?",
			uid.(string), request.PatientID, request.StartDate, request.EndDate).First(&existing).Error

		if err == nil {
			// 如果记录已存在，更新 Summary
			if err := config.DB.Model(&existing).Update("summary", fullSummary.String()).Error; err != nil {
				config.Logger.Errorw("更新会话总结失败",
					"error", err,
					"counselorID", uid,
					"patientID", request.PatientID,
				)
			}
		} else if err == gorm.ErrRecordNotFound {
			// 如果记录不存在，创建新记录
			summary := models.SessionSummary{
				ID:          utils.GenerateID(),
				CounselorID: uid.(string),
				PatientID:   request.PatientID,
				StartDate:   request.StartDate,
				EndDate:     request.EndDate,
				Summary:     fullSummary.String(),
				CreatedAt:   time.Now(),
			}

			if err := config.DB.Create(&summary).Error; err != nil {
				config.Logger.Errorw("存储会话总结失败",
					"error", err,
					"counselorID", uid,
					"patientID", request.PatientID,
				)
			}
		} else {
			// 其他错误
			config.Logger.Errorw("查询会话总结失败",
				"error", err,
				"counselorID", uid,
				"patientID", request.PatientID,
			)
		}
	}()
}

// GetSessionSummaries 查询已生成的会话总结
func (c *ChatController) GetSessionSummaries(ctx *gin.Context) {
	// 获取咨询师信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 查询参数
	patientID := ctx.Query("patientId")
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")

	// 验证参数
	if patientID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少来访者ID参数"})
		return
	}
	if startDate == "" || endDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少时间范围参数"})
		return
	}

	// 定义 ISO 8601 时间格式
	layout := "2006-01-02T15:04:05Z07:00"

	// 解析时间字符串为 time.Time
	startTimeParsed, err := time.Parse(layout, startDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的开始时间格式"})
		return
	}
	endTimeParsed, err := time.Parse(layout, endDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的结束时间格式"})
		return
	}

	// 查询结果
	var summary models.SessionSummary
	err = config.DB.Where("counselor_id = ? AND patient_id = ? AND start_date = ? AND end_date = ?",
		uid, patientID, startTimeParsed, endTimeParsed).First(&summary).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "未找到对应的会话总结"})
		} else {
			config.Logger.Errorw("获取会话总结失败", "error", err, "counselorID", uid)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取会话总结失败"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": summary,
	})
}

// Wait 等待所有后台任务完成，用于优雅关闭
func (c *ChatController) Wait() {
	c.wg.Wait()
	if c.summaryService != nil {
		c.summaryService.Wait()
	}
}
