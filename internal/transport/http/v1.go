package http

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/handler"
	"github.com/skillswap/skillswap-backend/internal/transport/http/middleware"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, ctrl controller.IController) {
	v1 := r.Group("/api/v1")

	authed := middleware.Authenticated(ctrl)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/refresh", h.AuthHandler.Refresh)
		auth.POST("/logout", authed, h.AuthHandler.Logout)
		auth.GET("/me", authed, h.AuthHandler.Me)
	}

	profiles := v1.Group("/profiles", authed)
	{
		profiles.POST("", h.ProfileHandler.Create)
		profiles.GET("", h.ProfileHandler.List)
		profiles.GET("/me", h.ProfileHandler.Mine)
		profiles.POST("/flag-skill", h.ProfileHandler.FlagSkill)
		profiles.GET("/:id", h.ProfileHandler.Get)
		profiles.PUT("/:id", h.ProfileHandler.Update)
		profiles.DELETE("/:id", h.ProfileHandler.Delete)
	}

	swaps := v1.Group("/swaps", authed)
	{
		swaps.POST("", h.SwapHandler.Create)
		swaps.GET("", h.SwapHandler.List)
		swaps.PUT("/:id/accept", h.SwapHandler.Accept)
		swaps.PUT("/:id/reject", h.SwapHandler.Reject)
		swaps.DELETE("/:id", h.SwapHandler.Cancel)
		swaps.POST("/:id/feedback", h.SwapHandler.SubmitFeedback)
	}

	admin := v1.Group("/admin", authed, middleware.AdminOnly())
	{
		admin.GET("/flagged-skills", h.AdminHandler.ListFlaggedSkills)
		admin.PUT("/flagged-skills/:id", h.AdminHandler.ResolveFlaggedSkill)
		admin.PUT("/users/:id/ban", h.AdminHandler.ToggleUserBan)
		admin.POST("/broadcasts", h.AdminHandler.SendBroadcast)
		admin.GET("/broadcasts", h.AdminHandler.ListBroadcasts)
		admin.GET("/stats", h.AdminHandler.DashboardStats)
		admin.GET("/reports/activity", h.AdminHandler.ActivityReport)
		admin.GET("/reports/feedback", h.AdminHandler.FeedbackReport)
		admin.GET("/reports/swaps", h.AdminHandler.SwapReport)
	}

	v1.GET("/health/db", h.HealthHandler.Database)

	r.GET("/healthz", h.HealthHandler.Basic)
	r.GET("/metrics", h.MetricsHandler.Handler())
}
