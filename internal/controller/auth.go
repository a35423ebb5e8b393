package controller

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/utils/jwtauth"
)

func (c *Controller) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, apperror.Validation("username, email and password are required")
	}

	role := input.Role
	if role == "" {
		role = model.UserRoleUser
	}
	if role == model.UserRoleAdmin {
		if strings.TrimSpace(input.SecretKey) == "" {
			return nil, apperror.Validation("secret key is required for admin registration")
		}
		if input.SecretKey != c.config.Auth.AdminSecretKey {
			return nil, apperror.Forbidden("invalid admin secret key")
		}
	}

	existing, err := c.store.User.GetByEmailOrUsername(c.db, email, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.logger.Error("[Register][GetByEmailOrUsername]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, apperror.Conflict("user already exists with this email")
		}
		return nil, apperror.Conflict("user already exists with this username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.logger.Error("[Register][HashPassword]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := c.store.User.Create(c.db, &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("user already exists")
		}
		c.logger.Error("[Register][CreateUser]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	return user, nil
}

func (c *Controller) Login(email, password string) (*AuthResult, error) {
	user, err := c.store.User.GetByEmail(c.db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// generic message so probing stays uninformative
			return nil, apperror.Unauthorized("invalid credentials")
		}
		c.logger.Error("[Login][GetByEmail]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if user.IsBanned {
		return nil, apperror.Forbidden("account is banned")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	return c.issueTokens(user)
}

func (c *Controller) Logout(principal model.Principal) error {
	if err := c.store.User.UpdateRefreshToken(c.db, principal.UserID, nil); err != nil {
		c.logger.Error("[Logout][UpdateRefreshToken]", map[string]string{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// RefreshToken rotates the token pair. The incoming token must match the one
// stored on the user row, so a stolen-then-rotated token cannot be replayed.
func (c *Controller) RefreshToken(refreshToken string) (*AuthResult, error) {
	claims, err := c.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	if claims.TokenType != jwtauth.TokenTypeRefresh {
		return nil, apperror.Unauthorized("invalid refresh token")
	}

	user, err := c.store.User.GetByID(c.db, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		c.logger.Error("[RefreshToken][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if user.IsBanned {
		return nil, apperror.Forbidden("account is banned")
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("refresh token is expired or already used")
	}

	return c.issueTokens(user)
}

// Authenticate resolves a bearer access token into a principal. Called by the
// auth middleware on every request; ban state is re-checked here so a ban
// takes effect before the access token expires.
func (c *Controller) Authenticate(accessToken string) (*model.Principal, error) {
	claims, err := c.jwtMgr.ParseToken(accessToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrTokenExpired) {
			return nil, apperror.Unauthorized("access token has expired")
		}
		return nil, apperror.Unauthorized("invalid access token")
	}
	if claims.TokenType != jwtauth.TokenTypeAccess {
		return nil, apperror.Unauthorized("invalid access token")
	}

	user, err := c.store.User.GetByID(c.db, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("invalid access token")
		}
		c.logger.Error("[Authenticate][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if user.IsBanned {
		return nil, apperror.Forbidden("account is banned")
	}

	return &model.Principal{
		UserID:   user.ID,
		Role:     user.Role,
		IsBanned: user.IsBanned,
	}, nil
}

func (c *Controller) Me(principal model.Principal) (*model.User, error) {
	user, err := c.store.User.GetByID(c.db, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		c.logger.Error("[Me][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return user, nil
}

func (c *Controller) issueTokens(user *model.User) (*AuthResult, error) {
	accessToken, err := c.jwtMgr.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		c.logger.Error("[issueTokens][GenerateAccessToken]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	refreshToken, err := c.jwtMgr.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		c.logger.Error("[issueTokens][GenerateRefreshToken]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := c.store.User.UpdateRefreshToken(c.db, user.ID, &refreshToken); err != nil {
		c.logger.Error("[issueTokens][UpdateRefreshToken]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	user.RefreshToken = &refreshToken
	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
