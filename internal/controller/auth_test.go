package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
)

func hashedUser(id uint, email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		Username:     "alice",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.UserRoleUser,
	}
	user.ID = id
	return user
}

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByEmailOrUsername", mock.Anything, "alice@example.com", "alice").
			Return(nil, gorm.ErrRecordNotFound)
		stores.user.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			if u.Username != "alice" || u.Email != "alice@example.com" || u.Role != model.UserRoleUser {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")) == nil
		})).Return(hashedUser(1, "alice@example.com", "hunter22"), nil)

		user, err := c.Register(RegisterInput{
			Username: " alice ",
			Email:    "Alice@Example.com",
			Password: "hunter22",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		c, _ := newTestController()

		_, err := c.Register(RegisterInput{Username: "alice"})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("conflicts on existing email", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByEmailOrUsername", mock.Anything, "alice@example.com", "alice").
			Return(hashedUser(1, "alice@example.com", "x"), nil)

		_, err := c.Register(RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("admin registration requires secret key", func(t *testing.T) {
		c, _ := newTestController()

		_, err := c.Register(RegisterInput{
			Username: "root",
			Email:    "root@example.com",
			Password: "hunter22",
			Role:     model.UserRoleAdmin,
		})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("admin registration rejects wrong secret key", func(t *testing.T) {
		c, _ := newTestController()

		_, err := c.Register(RegisterInput{
			Username:  "root",
			Email:     "root@example.com",
			Password:  "hunter22",
			Role:      model.UserRoleAdmin,
			SecretKey: "wrong",
		})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("admin registration accepts configured key", func(t *testing.T) {
		c, stores := newTestController()

		admin := hashedUser(2, "root@example.com", "hunter22")
		admin.Role = model.UserRoleAdmin

		stores.user.On("GetByEmailOrUsername", mock.Anything, "root@example.com", "root").
			Return(nil, gorm.ErrRecordNotFound)
		stores.user.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.UserRoleAdmin
		})).Return(admin, nil)

		user, err := c.Register(RegisterInput{
			Username:  "root",
			Email:     "root@example.com",
			Password:  "hunter22",
			Role:      model.UserRoleAdmin,
			SecretKey: "admin-secret",
		})

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues token pair and persists refresh token", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(hashedUser(1, "alice@example.com", "hunter22"), nil)
		stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), mock.AnythingOfType("*string")).Return(nil)

		result, err := c.Login("alice@example.com", "hunter22")

		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.NotEqual(t, result.AccessToken, result.RefreshToken)
		stores.user.AssertExpectations(t)
	})

	t.Run("unknown email yields generic unauthorized", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := c.Login("ghost@example.com", "hunter22")

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("wrong password yields the same generic unauthorized", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(hashedUser(1, "alice@example.com", "hunter22"), nil)

		_, err := c.Login("alice@example.com", "wrong")

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("banned account cannot log in", func(t *testing.T) {
		c, stores := newTestController()

		banned := hashedUser(1, "alice@example.com", "hunter22")
		banned.IsBanned = true
		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").Return(banned, nil)

		_, err := c.Login("alice@example.com", "hunter22")

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestRefreshToken(t *testing.T) {
	login := func(t *testing.T, c *Controller, stores *testStores) *AuthResult {
		t.Helper()
		user := hashedUser(1, "alice@example.com", "hunter22")
		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), mock.AnythingOfType("*string")).Return(nil)

		result, err := c.Login("alice@example.com", "hunter22")
		require.NoError(t, err)
		return result
	}

	t.Run("rotates the pair when stored token matches", func(t *testing.T) {
		c, stores := newTestController()

		result := login(t, c, stores)
		user := hashedUser(1, "alice@example.com", "hunter22")
		user.RefreshToken = &result.RefreshToken
		stores.user.On("GetByID", mock.Anything, uint(1)).Return(user, nil)

		rotated, err := c.RefreshToken(result.RefreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, rotated.AccessToken)
	})

	t.Run("rejects a token that was already rotated", func(t *testing.T) {
		c, stores := newTestController()

		result := login(t, c, stores)
		newer := "some-newer-token"
		user := hashedUser(1, "alice@example.com", "hunter22")
		user.RefreshToken = &newer
		stores.user.On("GetByID", mock.Anything, uint(1)).Return(user, nil)

		_, err := c.RefreshToken(result.RefreshToken)

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("rejects an access token used as refresh token", func(t *testing.T) {
		c, stores := newTestController()

		result := login(t, c, stores)

		_, err := c.RefreshToken(result.AccessToken)

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		c, _ := newTestController()

		_, err := c.RefreshToken("not-a-jwt")

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("resolves access token into principal", func(t *testing.T) {
		c, stores := newTestController()

		user := hashedUser(1, "alice@example.com", "hunter22")
		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), mock.AnythingOfType("*string")).Return(nil)
		stores.user.On("GetByID", mock.Anything, uint(1)).Return(user, nil)

		result, err := c.Login("alice@example.com", "hunter22")
		require.NoError(t, err)

		principal, err := c.Authenticate(result.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, uint(1), principal.UserID)
		assert.Equal(t, model.UserRoleUser, principal.Role)
	})

	t.Run("rejects a refresh token on the access path", func(t *testing.T) {
		c, stores := newTestController()

		user := hashedUser(1, "alice@example.com", "hunter22")
		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), mock.AnythingOfType("*string")).Return(nil)

		result, err := c.Login("alice@example.com", "hunter22")
		require.NoError(t, err)

		_, err = c.Authenticate(result.RefreshToken)

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("ban takes effect before token expiry", func(t *testing.T) {
		c, stores := newTestController()

		user := hashedUser(1, "alice@example.com", "hunter22")
		stores.user.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
		stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), mock.AnythingOfType("*string")).Return(nil)

		result, err := c.Login("alice@example.com", "hunter22")
		require.NoError(t, err)

		banned := hashedUser(1, "alice@example.com", "hunter22")
		banned.IsBanned = true
		stores.user.On("GetByID", mock.Anything, uint(1)).Return(banned, nil)

		_, err = c.Authenticate(result.AccessToken)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestLogout(t *testing.T) {
	c, stores := newTestController()

	stores.user.On("UpdateRefreshToken", mock.Anything, uint(1), (*string)(nil)).Return(nil)

	err := c.Logout(principalFor(1))

	require.NoError(t, err)
	stores.user.AssertExpectations(t)
}
