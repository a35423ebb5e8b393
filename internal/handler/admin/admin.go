package admin

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/transport/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
	"github.com/skillswap/skillswap-backend/internal/view"
)

type ResolveFlagRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type BanRequest struct {
	Banned *bool `json:"banned" binding:"required"`
}

type BroadcastRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=2000"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
}

func New(controller controller.IController, logger *logger.Logger) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
	}
}

// ListFlaggedSkills godoc
// @Summary List flagged skills
// @Description Returns flagged skills, optionally filtered by status.
// @id listFlaggedSkills
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, approved, rejected)
// @Success 200 {object} view.Response[[]model.FlaggedSkill]
// @Failure 403 {object} view.ErrorResponse
// @Router /admin/flagged-skills [get]
func (h *handler) ListFlaggedSkills(c *gin.Context) {
	var status *model.FlaggedSkillStatus
	if raw := c.Query("status"); raw != "" {
		s := model.FlaggedSkillStatus(raw)
		status = &s
	}

	flags, err := h.controller.ListFlaggedSkills(status)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(flags, nil, ""))
}

// ResolveFlaggedSkill godoc
// @Summary Resolve a flagged skill
// @Description Moves a pending flag to approved or rejected.
// @id resolveFlaggedSkill
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Flag ID"
// @Param request body ResolveFlagRequest true "Resolution"
// @Success 200 {object} view.Response[model.FlaggedSkill]
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /admin/flagged-skills/{id} [put]
func (h *handler) ResolveFlaggedSkill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	var req ResolveFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	flag, err := h.controller.ResolveFlaggedSkill(id, model.FlaggedSkillStatus(req.Status))
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(flag, nil, "flag resolved"))
}

// ToggleUserBan godoc
// @Summary Ban or unban a user
// @Description Sets the ban flag on a user and shadows it onto their profile. Admins cannot be banned.
// @id toggleUserBan
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body BanRequest true "Ban flag"
// @Success 200 {object} view.Response[model.User]
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /admin/users/{id}/ban [put]
func (h *handler) ToggleUserBan(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	var req BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	user, err := h.controller.ToggleUserBan(id, *req.Banned)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	message := "user unbanned"
	if user.IsBanned {
		message = "user banned"
	}
	c.JSON(http.StatusOK, view.CreateResponse(user, nil, message))
}

// SendBroadcast godoc
// @Summary Send a broadcast message
// @Description Publishes a platform-wide announcement attributed to the caller.
// @id sendBroadcast
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BroadcastRequest true "Broadcast payload"
// @Success 201 {object} view.Response[model.BroadcastMessage]
// @Failure 400 {object} view.ErrorResponse
// @Router /admin/broadcasts [post]
func (h *handler) SendBroadcast(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	message, err := h.controller.SendBroadcastMessage(principal, req.Title, req.Content)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(message, nil, "broadcast sent"))
}

// ListBroadcasts godoc
// @Summary List broadcast messages
// @Description Returns all announcements, newest first.
// @id listBroadcasts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Response[[]model.BroadcastMessage]
// @Router /admin/broadcasts [get]
func (h *handler) ListBroadcasts(c *gin.Context) {
	messages, err := h.controller.ListBroadcastMessages()
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(messages, nil, ""))
}

// DashboardStats godoc
// @Summary Dashboard statistics
// @Description Returns aggregate platform counters.
// @id dashboardStats
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Response[controller.DashboardStats]
// @Router /admin/stats [get]
func (h *handler) DashboardStats(c *gin.Context) {
	stats, err := h.controller.GetDashboardStats()
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(stats, nil, ""))
}

// ActivityReport godoc
// @Summary User activity report
// @Description Downloads registered users in the window as CSV.
// @id activityReport
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "Window start, RFC 3339"
// @Param to query string false "Window end, RFC 3339"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} view.ErrorResponse
// @Router /admin/reports/activity [get]
func (h *handler) ActivityReport(c *gin.Context) {
	h.csvReport(c, "user-activity", h.controller.ActivityReportRows)
}

// FeedbackReport godoc
// @Summary Swap feedback report
// @Description Downloads accepted swaps carrying feedback as CSV.
// @id feedbackReport
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "Window start, RFC 3339"
// @Param to query string false "Window end, RFC 3339"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} view.ErrorResponse
// @Router /admin/reports/feedback [get]
func (h *handler) FeedbackReport(c *gin.Context) {
	h.csvReport(c, "swap-feedback", h.controller.FeedbackReportRows)
}

// SwapReport godoc
// @Summary Swap lifecycle report
// @Description Downloads swap requests created in the window as CSV.
// @id swapReport
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "Window start, RFC 3339"
// @Param to query string false "Window end, RFC 3339"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} view.ErrorResponse
// @Router /admin/reports/swaps [get]
func (h *handler) SwapReport(c *gin.Context) {
	h.csvReport(c, "swap-requests", h.controller.SwapReportRows)
}

func (h *handler) csvReport(c *gin.Context, name string, rows func(from, to *time.Time) ([][]string, error)) {
	from, err := timeQuery(c, "from")
	if err != nil {
		view.RespondError(c, err)
		return
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		view.RespondError(c, err)
		return
	}

	records, err := rows(from, to)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	if err := writer.WriteAll(records); err != nil {
		h.logger.Error("[csvReport][WriteAll]", map[string]string{
			"report": name,
			"error":  err.Error(),
		})
	}
}

func timeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, apperror.Validation(key + " must be an RFC 3339 timestamp")
	}
	return &t, nil
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperror.Validation("id must be a positive integer")
	}
	return uint(id), nil
}
