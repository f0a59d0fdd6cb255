package controllers

import (
	"net/http"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthController 认证控制器
type AuthController struct{}

// Register 邮箱注册
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 检查邮箱是否已注册
	var existing models.User
	err := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "邮箱已被注册"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		config.Logger.Errorw("查询用户失败", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "注册失败"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Errorw("密码哈希失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "注册失败"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("用户创建失败",
			"error", err,
			"email", req.Email,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
		return
	}
	config.Logger.Infow("用户创建成功",
		"userID", user.ID,
	)

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Login 邮箱登录
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// 不区分邮箱不存在和密码错误
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "邮箱或密码错误"})
		return
	}

	// 更新最近登录时间，失败不阻断登录
	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		config.Logger.Errorw("更新登录时间失败", "error", err, "uid", user.ID)
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.GetDisplayName(),
			"email":    user.Email,
			"role":     user.Role,
			"avatar":   user.Avatar,
		},
	})
}
