package controllers

import (
	"net/http"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
)

type InviteController struct{}

// CreateInviteCode 生成咨询师邀请码（内部接口）
func (ic *InviteController) CreateInviteCode(c *gin.Context) {
	// 记录内部接口调用
	config.Logger.Infow("内部接口调用：生成咨询师邀请码",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	inviteCode := models.InviteCode{
		ID:        utils.GenerateID(),
		Code:      models.GenerateInviteCode(),
		CreatedAt: time.Now(),
	}

	// 保存到数据库
	if err := config.DB.Create(&inviteCode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建邀请码失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":      inviteCode.Code,
		"createdAt": inviteCode.CreatedAt,
	})
}

// RedeemInvite 兑换邀请码，升级为咨询师
func (ic *InviteController) RedeemInvite(c *gin.Context) {
	var req models.RedeemInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求"})
		return
	}

	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未认证用户"})
		return
	}

	// 查找邀请码
	var inviteCode models.InviteCode
	if err := config.DB.Where("code = ?", req.Code).First(&inviteCode).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "邀请码不存在"})
		return
	}

	// 检查是否已使用
	if inviteCode.UsedAt != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "邀请码已使用"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户不存在"})
		return
	}

	if user.Role == models.RoleCounselor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "已是咨询师"})
		return
	}

	// 更新邀请码状态
	now := time.Now()
	inviteCode.UsedAt = &now
	inviteCode.UserID = &user.ID

	// 开启事务
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 升级用户角色
	if err := tx.Model(&user).Update("role", models.RoleCounselor).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新用户角色失败"})
		return
	}

	// 更新邀请码状态
	if err := tx.Save(&inviteCode).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新邀请码状态失败"})
		return
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "兑换失败"})
		return
	}

	config.Logger.Infow("咨询师邀请码兑换成功",
		"userID", user.ID,
		"code", req.Code,
	)

	// 角色已变化，签发新令牌
	token, err := utils.GenerateToken(user.ID, models.RoleCounselor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "兑换成功",
		"role":    models.RoleCounselor,
		"token":   token,
	})
}
