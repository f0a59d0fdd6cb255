package controllers

import (
	"net/http"
	"time"

	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/utils"
	"github.com/gin-gonic/gin"
)

type AppointmentController struct{}

// CreateAppointment 来访者创建预约
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 校验咨询师
	var counselor models.User
	if err := config.DB.Where("id = ? AND role = ?", req.CounselorID, models.RoleCounselor).First(&counselor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "咨询师不存在"})
		return
	}

	appointment := models.Appointment{
		ID:              utils.GenerateID(),
		PatientID:       uid.(string),
		CounselorID:     req.CounselorID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Status:          models.AppointmentPending,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
		LastModified:    time.Now(),
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		config.Logger.Errorw("创建预约失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建预约失败"})
		return
	}

	config.Logger.Infow("预约创建成功",
		"appointmentID", appointment.ID,
		"patientID", uid,
		"counselorID", req.CounselorID,
	)

	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// GetAppointments 获取当前用户的预约列表，咨询师看到的是名下预约
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	uid := c.GetString("uid")
	role := c.GetString("role")

	query := config.DB.Order("scheduled_at asc")
	if role == models.RoleCounselor {
		query = query.Where("counselor_id = ?", uid)
	} else {
		query = query.Where("patient_id = ?", uid)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		config.Logger.Errorw("获取预约列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取预约列表失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// UpdateAppointmentStatus 更新预约状态。咨询师可确认/取消/完成，来访者只能取消。
func (ac *AppointmentController) UpdateAppointmentStatus(c *gin.Context) {
	uid := c.GetString("uid")
	appointmentID := c.Param("id")

	var req models.AppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ?", appointmentID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "预约不存在"})
		return
	}

	// 权限校验
	switch uid {
	case appointment.CounselorID:
		// 咨询师可做全部合法流转
	case appointment.PatientID:
		if req.Status != models.AppointmentCancelled {
			c.JSON(http.StatusForbidden, gin.H{"error": "来访者只能取消预约"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "无权操作该预约"})
		return
	}

	if !models.ValidStatusTransition(appointment.Status, req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法的状态流转"})
		return
	}

	updates := map[string]interface{}{
		"status":        req.Status,
		"last_modified": time.Now(),
	}
	if err := config.DB.Model(&appointment).Updates(updates).Error; err != nil {
		config.Logger.Errorw("更新预约状态失败", "error", err, "appointmentID", appointmentID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新预约状态失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "预约状态更新成功",
		"status":  req.Status,
	})
}
