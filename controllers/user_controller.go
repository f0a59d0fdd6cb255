package controllers

import (
	"context"
	"net/http"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type UserController struct{}

// GetUser 获取当前用户信息
func (uc *UserController) GetUser(c *gin.Context) {
	userID, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户未认证"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败",
			"error", err,
			"userID", userID,
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"avatar":   user.Avatar,
			"bio":      user.Bio,
		},
	})
}

// GetLatestEmotion 读取Redis中缓存的最近一次情绪分类
func (uc *UserController) GetLatestEmotion(c *gin.Context) {
	uid := c.GetString("uid")

	emotion, err := config.RedisClient.Get(context.Background(), "last_emotion:"+uid).Result()
	if err == redis.Nil {
		// 尚未有对话记录
		c.JSON(http.StatusOK, gin.H{"emotion": "neutral"})
		return
	}
	if err != nil {
		config.Logger.Errorw("读取最近情绪缓存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取最近情绪失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emotion": emotion})
}

// GetCounselors 获取咨询师列表
func (uc *UserController) GetCounselors(c *gin.Context) {
	var counselors []models.User
	if err := config.DB.Where("role = ?", models.RoleCounselor).Find(&counselors).Error; err != nil {
		config.Logger.Errorw("获取咨询师列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取咨询师列表失败"})
		return
	}

	responses := make([]models.CounselorResponse, len(counselors))
	for i, counselor := range counselors {
		responses[i] = models.CounselorResponse{
			ID:       counselor.ID,
			Username: counselor.GetDisplayName(),
			Avatar:   counselor.Avatar,
			Bio:      counselor.Bio,
		}
	}

	c.JSON(http.StatusOK, gin.H{"counselors": responses})
}
