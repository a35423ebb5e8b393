package swap

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/transport/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
	"github.com/skillswap/skillswap-backend/internal/view"
)

type CreateRequest struct {
	ToUserID        uint     `json:"to_user_id" binding:"required"`
	SkillsOffered   []string `json:"skills_offered" binding:"required,min=1"`
	SkillsRequested []string `json:"skills_requested" binding:"required,min=1"`
}

type FeedbackRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
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

// Create godoc
// @Summary Create a swap request
// @Description Opens a pending swap request toward another user. At most one pending request may exist per user pair.
// @id createSwapRequest
// @Tags Swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Swap request payload"
// @Success 201 {object} view.Response[model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /swaps [post]
func (h *handler) Create(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	// validate req
	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[Create][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	swap, err := h.controller.CreateSwapRequest(principal, controller.CreateSwapInput{
		ToUserID:        req.ToUserID,
		SkillsOffered:   req.SkillsOffered,
		SkillsRequested: req.SkillsRequested,
	})
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(swap, nil, "swap request created"))
}

// List godoc
// @Summary List my swap requests
// @Description Returns swap requests the caller sent or received, newest first, optionally filtered by status.
// @id listSwapRequests
// @Tags Swap
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, accepted, rejected, cancelled)
// @Success 200 {object} view.Response[[]model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Router /swaps [get]
func (h *handler) List(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var status *model.SwapStatus
	if raw := c.Query("status"); raw != "" {
		s := model.SwapStatus(raw)
		status = &s
	}

	swaps, err := h.controller.ListSwapRequests(principal, status)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(swaps, nil, ""))
}

// Accept godoc
// @Summary Accept a swap request
// @Description Recipient-only transition of a pending request to accepted.
// @id acceptSwapRequest
// @Tags Swap
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swaps/{id}/accept [put]
func (h *handler) Accept(c *gin.Context) {
	h.respond(c, h.controller.AcceptSwapRequest)
}

// Reject godoc
// @Summary Reject a swap request
// @Description Recipient-only transition of a pending request to rejected.
// @id rejectSwapRequest
// @Tags Swap
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swaps/{id}/reject [put]
func (h *handler) Reject(c *gin.Context) {
	h.respond(c, h.controller.RejectSwapRequest)
}

// Cancel godoc
// @Summary Cancel a swap request
// @Description Sender-only transition of a pending request to cancelled. The record is kept.
// @id cancelSwapRequest
// @Tags Swap
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Success 200 {object} view.Response[model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swaps/{id} [delete]
func (h *handler) Cancel(c *gin.Context) {
	h.respond(c, h.controller.CancelSwapRequest)
}

// SubmitFeedback godoc
// @Summary Submit feedback on an accepted swap
// @Description Stores or partially updates rating and comment. Omitted fields keep stored values.
// @id submitSwapFeedback
// @Tags Swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Param request body FeedbackRequest true "Feedback payload"
// @Success 200 {object} view.Response[model.SwapRequest]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swaps/{id}/feedback [post]
func (h *handler) SubmitFeedback(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := swapID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	swap, err := h.controller.SubmitFeedback(principal, id, req.Rating, req.Comment)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(swap, nil, "feedback saved"))
}

func (h *handler) respond(c *gin.Context, action func(model.Principal, uint) (*model.SwapRequest, error)) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := swapID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	swap, err := action(principal, id)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(swap, nil, ""))
}

func swapID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperror.Validation("id must be a positive integer")
	}
	return uint(id), nil
}
