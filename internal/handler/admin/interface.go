package admin

import "github.com/gin-gonic/gin"

type IHandler interface {
	ListFlaggedSkills(c *gin.Context)
	ResolveFlaggedSkill(c *gin.Context)
	ToggleUserBan(c *gin.Context)
	SendBroadcast(c *gin.Context)
	ListBroadcasts(c *gin.Context)
	DashboardStats(c *gin.Context)
	ActivityReport(c *gin.Context)
	FeedbackReport(c *gin.Context)
	SwapReport(c *gin.Context)
}
