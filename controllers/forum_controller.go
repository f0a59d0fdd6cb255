package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ForumController struct{}

// CreatePost 发布帖子
func (fc *ForumController) CreatePost(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.ForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.ForumPost{
		ID:           utils.GenerateID(),
		UserID:       uid.(string),
		Title:        req.Title,
		Content:      req.Content,
		Category:     req.Category,
		CreatedAt:    time.Now(),
		LastModified: time.Now(),
	}

	if err := config.DB.Create(&post).Error; err != nil {
		config.Logger.Errorw("发布帖子失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "发布帖子失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// GetPosts 分页获取帖子列表
func (fc *ForumController) GetPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	category := c.Query("category")
	applyFilter := func(db *gorm.DB) *gorm.DB {
		db = db.Where("status = 0")
		if category != "" {
			db = db.Where("category = ?", category)
		}
		return db
	}

	var total int64
	if err := applyFilter(config.DB.Model(&models.ForumPost{})).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取帖子列表失败"})
		return
	}

	var posts []models.ForumPost
	if err := applyFilter(config.DB).Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		config.Logger.Errorw("获取帖子列表失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取帖子列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// GetPost 获取帖子详情和评论
func (fc *ForumController) GetPost(c *gin.Context) {
	postID := c.Param("id")

	var post models.ForumPost
	if err := config.DB.Where("id = ? AND status = 0", postID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "帖子不存在"})
		return
	}

	var comments []models.ForumComment
	if err := config.DB.Where("post_id = ? AND status = 0", postID).
		Order("created_at asc").Find(&comments).Error; err != nil {
		config.Logger.Errorw("获取评论失败", "error", err, "postID", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取评论失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// CreateComment 发表评论
func (fc *ForumController) CreateComment(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	postID := c.Param("id")

	var post models.ForumPost
	if err := config.DB.Where("id = ? AND status = 0", postID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "帖子不存在"})
		return
	}

	var req models.ForumCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.ForumComment{
		ID:        utils.GenerateID(),
		PostID:    postID,
		UserID:    uid.(string),
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&comment).Error; err != nil {
		config.Logger.Errorw("发表评论失败", "error", err, "uid", uid, "postID", postID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "发表评论失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}
