package controllers

import (
	"net/http"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	insightService *services.InsightService
}

func NewAdminController(insightService *services.InsightService) *AdminController {
	return &AdminController{
		insightService: insightService,
	}
}

// GetInsights 管理后台情绪统计。since参数可选，RFC3339格式。
// 与对话审计写入不同，聚合失败直接返回错误。
func (ac *AdminController) GetInsights(c *gin.Context) {
	var since *time.Time
	if sinceStr := c.Query("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时间格式"})
			return
		}
		since = &parsed
	}

	summary, err := ac.insightService.Summarize(since)
	if err != nil {
		config.Logger.Errorw("情绪统计计算失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "情绪统计计算失败"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
