package profile

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/consts"
	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/model"
	profilestore "github.com/skillswap/skillswap-backend/internal/store/profile"
	"github.com/skillswap/skillswap-backend/internal/transport/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
	"github.com/skillswap/skillswap-backend/internal/view"
)

type CreateRequest struct {
	Name          string             `json:"name" binding:"required,min=2,max=50"`
	Bio           string             `json:"bio" binding:"max=500"`
	Location      string             `json:"location" binding:"max=100"`
	SkillsOffered []string           `json:"skills_offered" binding:"max=10,dive,max=30"`
	SkillsWanted  []string           `json:"skills_wanted" binding:"max=10,dive,max=30"`
	Availability  string             `json:"availability" binding:"omitempty,oneof=weekdays weekends flexible"`
	Visibility    string             `json:"visibility" binding:"omitempty,oneof=public private"`
	AvatarURL     string             `json:"avatar_url" binding:"omitempty,url"`
	SocialLinks   *model.SocialLinks `json:"social_links"`
}

type UpdateRequest struct {
	Name          *string            `json:"name" binding:"omitempty,min=2,max=50"`
	Bio           *string            `json:"bio" binding:"omitempty,max=500"`
	Location      *string            `json:"location" binding:"omitempty,max=100"`
	SkillsOffered []string           `json:"skills_offered" binding:"omitempty,max=10,dive,max=30"`
	SkillsWanted  []string           `json:"skills_wanted" binding:"omitempty,max=10,dive,max=30"`
	Availability  *string            `json:"availability" binding:"omitempty,oneof=weekdays weekends flexible"`
	Visibility    *string            `json:"visibility" binding:"omitempty,oneof=public private"`
	AvatarURL     *string            `json:"avatar_url" binding:"omitempty,url"`
	SocialLinks   *model.SocialLinks `json:"social_links"`
}

type FlagSkillRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Skill  string `json:"skill" binding:"required,max=30"`
	Reason string `json:"reason" binding:"required,max=500"`
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
// @Summary Create my profile
// @Description Creates the caller's profile. One profile per account.
// @id createProfile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRequest true "Profile payload"
// @Success 201 {object} view.Response[model.Profile]
// @Failure 400 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /profiles [post]
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

	input := controller.ProfileInput{
		Name:          req.Name,
		Bio:           req.Bio,
		Location:      req.Location,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  model.Availability(req.Availability),
		Visibility:    model.ProfileVisibility(req.Visibility),
		AvatarURL:     req.AvatarURL,
	}
	if req.SocialLinks != nil {
		input.SocialLinks = *req.SocialLinks
	}

	created, err := h.controller.CreateProfile(principal, input)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(created, nil, "profile created"))
}

// Mine godoc
// @Summary My profile
// @Description Returns the caller's own profile, banned or not.
// @id myProfile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Response[model.Profile]
// @Failure 404 {object} view.ErrorResponse
// @Router /profiles/me [get]
func (h *handler) Mine(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	p, err := h.controller.GetMyProfile(principal)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(p, nil, ""))
}

// Get godoc
// @Summary Get a profile
// @Description Returns a profile by ID. Banned profiles are hidden.
// @id getProfile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} view.Response[model.Profile]
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /profiles/{id} [get]
func (h *handler) Get(c *gin.Context) {
	id, err := profileID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	p, err := h.controller.GetProfileByID(id)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(p, nil, ""))
}

// Update godoc
// @Summary Update my profile
// @Description Partial update of the caller's profile. Omitted fields keep stored values.
// @id updateProfile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Param request body UpdateRequest true "Profile patch"
// @Success 200 {object} view.Response[model.Profile]
// @Failure 400 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /profiles/{id} [put]
func (h *handler) Update(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := profileID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	input := controller.UpdateProfileInput{
		Name:          req.Name,
		Bio:           req.Bio,
		Location:      req.Location,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		AvatarURL:     req.AvatarURL,
		SocialLinks:   req.SocialLinks,
	}
	if req.Availability != nil {
		availability := model.Availability(*req.Availability)
		input.Availability = &availability
	}
	if req.Visibility != nil {
		visibility := model.ProfileVisibility(*req.Visibility)
		input.Visibility = &visibility
	}

	updated, err := h.controller.UpdateProfile(principal, id, input)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(updated, nil, "profile updated"))
}

// Delete godoc
// @Summary Delete my profile
// @Description Removes the caller's profile. The account stays.
// @id deleteProfile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} view.MessageResponse
// @Failure 403 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /profiles/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	id, err := profileID(c)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	if err := h.controller.DeleteProfile(principal, id); err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.MessageResponse{Message: "profile deleted"})
}

// List godoc
// @Summary Browse public profiles
// @Description Paginated listing of public, non-banned profiles with optional filters.
// @id listProfiles
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param skill query string false "Filter by offered skill"
// @Param location query string false "Filter by location"
// @Param availability query string false "Filter by availability" Enums(weekdays, weekends, flexible)
// @Param search query string false "Free-text search over name and bio"
// @Param page query int false "Page number, 1-based"
// @Param page_size query int false "Page size, capped at 100"
// @Success 200 {object} view.PageResponse[model.Profile]
// @Router /profiles [get]
func (h *handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}

	filter := profilestore.ListFilter{
		Skill:        c.Query("skill"),
		Location:     c.Query("location"),
		Availability: model.Availability(c.Query("availability")),
		Search:       c.Query("search"),
		Page:         page,
		PageSize:     pageSize,
	}

	profiles, total, err := h.controller.ListPublicProfiles(filter)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewPageResponse(profiles, total, filter.Page, filter.PageSize, ""))
}

// FlagSkill godoc
// @Summary Flag a skill
// @Description Reports a skill on another user's profile for admin review.
// @id flagSkill
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FlagSkillRequest true "Flag payload"
// @Success 201 {object} view.Response[model.FlaggedSkill]
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /profiles/flag-skill [post]
func (h *handler) FlagSkill(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req FlagSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	flag, err := h.controller.FlagSkill(principal, req.UserID, req.Skill, req.Reason)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(flag, nil, "skill flagged for review"))
}

func profileID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperror.Validation("id must be a positive integer")
	}
	return uint(id), nil
}
