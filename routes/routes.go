package routes

import (
	"github.com/edm1922/mental-health-support-sub002/config"
	"github.com/edm1922/mental-health-support-sub002/controllers"
	"github.com/edm1922/mental-health-support-sub002/middleware"
	"github.com/edm1922/mental-health-support-sub002/models"
	"github.com/edm1922/mental-health-support-sub002/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册全部路由，返回ChatController供优雅关闭时等待后台任务
func RegisterRoutes(r *gin.Engine, client *services.DeepseekClient) *controllers.ChatController {
	recorder := services.NewRecorder(services.NewGormConversationStore(config.DB), config.RedisClient)
	directory := services.NewGormUserDirectory(config.DB)
	insightService := services.NewInsightService(services.NewGormInsightStore(config.DB))
	summaryService := services.NewSummaryService(client)

	authController := controllers.AuthController{}
	chatController := controllers.NewChatController(recorder, directory, summaryService)
	adminController := controllers.NewAdminController(insightService)
	userController := controllers.UserController{}
	appointmentController := controllers.AppointmentController{}
	messageController := controllers.MessageController{}
	forumController := controllers.ForumController{}
	inviteController := controllers.InviteController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// AI助手对话
		private.POST("/chat", chatController.SendMessage)

		// 用户相关接口
		private.GET("/user", userController.GetUser)
		private.GET("/user/emotion", userController.GetLatestEmotion)
		private.GET("/counselors", userController.GetCounselors)

		// 预约相关接口
		private.POST("/appointments", appointmentController.CreateAppointment)
		private.GET("/appointments", appointmentController.GetAppointments)
		private.PATCH("/appointments/:id/status", appointmentController.UpdateAppointmentStatus)

		// 私信相关接口
		private.POST("/messages", messageController.SendMessage)
		private.GET("/messages", messageController.GetConversation)
		private.GET("/messages/updates", messageController.GetUpdates)

		// 社区相关接口
		private.POST("/forum/posts", forumController.CreatePost)
		private.GET("/forum/posts", forumController.GetPosts)
		private.GET("/forum/posts/:id", forumController.GetPost)
		private.POST("/forum/posts/:id/comments", forumController.CreateComment)

		// 邀请码兑换
		private.POST("/invites/redeem", inviteController.RedeemInvite)
	}

	// 咨询师路由
	counselor := r.Group("/api/v1")
	counselor.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleCounselor, models.RoleAdmin))
	{
		counselor.POST("/session-summaries", chatController.SummarizeSessions)
		counselor.GET("/session-summaries", chatController.GetSessionSummaries)
	}

	// 管理员路由
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/insights", adminController.GetInsights)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/invites/generate", inviteController.CreateInviteCode)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	return chatController
}
