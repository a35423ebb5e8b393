package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/transport/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
	"github.com/skillswap/skillswap-backend/internal/view"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`
	SecretKey string `json:"secret_key"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
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

// Register godoc
// @Summary Register a new account
// @Description Creates a user account. Admin accounts require the configured secret key.
// @id register
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} view.Response[model.User]
// @Failure 400 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /auth/register [post]
func (h *handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Register][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	user, err := h.controller.Register(controller.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      model.UserRole(req.Role),
		SecretKey: req.SecretKey,
	})
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(user, nil, "account created"))
}

// Login godoc
// @Summary Log in
// @Description Exchanges credentials for an access and refresh token pair.
// @id login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} view.Response[controller.AuthResult]
// @Failure 401 {object} view.ErrorResponse
// @Failure 403 {object} view.ErrorResponse
// @Router /auth/login [post]
func (h *handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	result, err := h.controller.Login(req.Email, req.Password)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(result, nil, ""))
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token.
// @id logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.MessageResponse
// @Failure 401 {object} view.ErrorResponse
// @Router /auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	if err := h.controller.Logout(principal); err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.MessageResponse{Message: "logged out"})
}

// Refresh godoc
// @Summary Rotate the token pair
// @Description Exchanges a valid refresh token for a new access and refresh token pair.
// @id refreshToken
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh payload"
// @Success 200 {object} view.Response[controller.AuthResult]
// @Failure 401 {object} view.ErrorResponse
// @Router /auth/refresh [post]
func (h *handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.ErrorResponse{Error: err.Error(), Message: "invalid request"})
		return
	}

	result, err := h.controller.RefreshToken(req.RefreshToken)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(result, nil, ""))
}

// Me godoc
// @Summary Current account
// @Description Returns the account behind the access token.
// @id me
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} view.Response[model.User]
// @Failure 401 {object} view.ErrorResponse
// @Router /auth/me [get]
func (h *handler) Me(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	user, err := h.controller.Me(principal)
	if err != nil {
		view.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(user, nil, ""))
}
