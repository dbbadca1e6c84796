package routes

import (
	"github.com/Anky1388/SFIRN/controllers"
	"github.com/Anky1388/SFIRN/middlewares"
	"github.com/Anky1388/SFIRN/models"
	"github.com/Anky1388/SFIRN/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	rt := controllers.NewRealtimeController(hub)
	dc := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Any authenticated user
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/dashboard-config", controllers.DashboardConfig)
		user.GET("/alerts", controllers.ListAlerts)
		user.GET("/alerts/ws", rt.AlertsWS)
		user.POST("/devices", dc.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/attendance", controllers.CheckIn)
		user.GET("/attendance", controllers.MyAttendance)
		user.GET("/menus", controllers.ListMenus)
		user.GET("/menu", controllers.GetMenu)
	}

	// Mess operators and admins
	operator := r.Group("/operator")
	operator.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleOperator, models.RoleAdmin))
	{
		operator.POST("/meal-logs", controllers.LogMeal)
		operator.GET("/meal-logs", controllers.ListMealLogs)
		operator.GET("/meal-logs/:id", controllers.GetMealLog)
		operator.GET("/meal-logs/:id/pickups", controllers.PickupsForMealLog)
		operator.POST("/surplus-photo", controllers.UploadSurplusPhoto)
		operator.POST("/menus", controllers.UpsertMenu)
		operator.GET("/attendance/headcounts", controllers.Headcounts)
		operator.POST("/forecast/train", controllers.TrainForecast)
		operator.POST("/forecast/refresh", controllers.RefreshForecast)
		operator.GET("/forecast", controllers.GetForecast)
	}

	// NGO directory: reads for everyone signed in, writes for admins
	ngos := r.Group("/ngos")
	ngos.Use(middlewares.AuthMiddleware())
	{
		ngos.GET("", controllers.ListNGOs)
		ngos.GET("/nearby", controllers.NearbyNGOs)
	}
	ngoAdmin := r.Group("/ngos")
	ngoAdmin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		ngoAdmin.POST("", controllers.CreateNGO)
		ngoAdmin.PUT("/:id", controllers.UpdateNGO)
	}

	// Pickup lifecycle: NGO accounts confirm/cancel their own pickups
	redistribution := r.Group("/redistribution")
	redistribution.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleNGO, models.RoleAdmin))
	{
		redistribution.GET("/my-pickups", controllers.MyPickups)
		redistribution.POST("/confirm", controllers.ConfirmPickup)
		redistribution.POST("/cancel", controllers.CancelPickup)
	}

	// Reporting
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/dashboard", controllers.Dashboard)
		analytics.GET("/summary", controllers.SustainabilitySummary)
		analytics.GET("/surplus-trend", controllers.SurplusTrend)
	}

	return r
}
