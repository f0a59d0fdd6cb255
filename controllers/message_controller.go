package controllers

import (
	"net/http"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
)

type MessageController struct{}

// SendMessage 发送私信
func (mc *MessageController) SendMessage(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 校验接收方
	var recipient models.User
	if err := config.DB.Where("id = ?", req.RecipientID).First(&recipient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "接收方不存在"})
		return
	}

	message := models.Message{
		ID:          utils.GenerateID(),
		SenderID:    uid.(string),
		RecipientID: req.RecipientID,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}

	if err := config.DB.Create(&message).Error; err != nil {
		config.Logger.Errorw("发送私信失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "发送私信失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetConversation 获取与某个对象的私信会话，并将收到的未读消息标记为已读
func (mc *MessageController) GetConversation(c *gin.Context) {
	uid := c.GetString("uid")

	partnerID := c.Query("partner")
	if partnerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少会话对象参数"})
		return
	}

	var messages []models.Message
	if err := config.DB.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		uid, partnerID, partnerID, uid).
		Order("created_at asc").Find(&messages).Error; err != nil {
		config.Logger.Errorw("获取私信会话失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取私信会话失败"})
		return
	}

	// 标记收到的未读消息为已读，失败只记日志
	now := time.Now()
	if err := config.DB.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read_at IS NULL", partnerID, uid).
		Update("read_at", &now).Error; err != nil {
		config.Logger.Errorw("标记已读失败", "error", err, "uid", uid)
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetUpdates 获取自上次同步以来收到的新私信
func (mc *MessageController) GetUpdates(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 获取上次同步时间
	lastSyncDateStr := c.Query("lastSyncDate")
	var lastSyncDate time.Time
	var err error

	if lastSyncDateStr != "" {
		lastSyncDate, err = time.Parse(time.RFC3339, lastSyncDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时间格式"})
			return
		}
	} else {
		// 如果没有提供上次同步时间，则使用很久以前的时间
		lastSyncDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	var messages []models.Message
	if err := config.DB.Where("recipient_id = ? AND created_at > ?",
		uid, lastSyncDate).Order("created_at asc").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取私信更新失败"})
		return
	}

	c.JSON(http.StatusOK, models.MessageUpdatesResponse{
		Messages: messages,
	})
}
