package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/consts"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/store/profile"
)

func storedProfile(id, userID uint) *model.Profile {
	p := &model.Profile{
		UserID:        userID,
		Name:          "Alice",
		Bio:           "I teach guitar",
		SkillsOffered: []string{"guitar"},
		SkillsWanted:  []string{"spanish"},
		Availability:  model.AvailabilityFlexible,
		Visibility:    model.ProfileVisibilityPublic,
	}
	p.ID = id
	return p
}

func TestCreateProfile(t *testing.T) {
	t.Run("creates profile with defaults", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
		stores.profile.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.UserID == 1 &&
				p.Availability == model.AvailabilityFlexible &&
				p.Visibility == model.ProfileVisibilityPublic
		})).Return(storedProfile(5, 1), nil)

		created, err := c.CreateProfile(principalFor(1), ProfileInput{
			Name:          " Alice ",
			SkillsOffered: []string{"guitar"},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(1), created.UserID)
	})

	t.Run("one profile per user", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(storedProfile(5, 1), nil)

		_, err := c.CreateProfile(principalFor(1), ProfileInput{Name: "Alice"})

		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("rejects short name", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := c.CreateProfile(principalFor(1), ProfileInput{Name: "A"})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("rejects oversized bio", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := c.CreateProfile(principalFor(1), ProfileInput{
			Name: "Alice",
			Bio:  strings.Repeat("x", consts.MaxBioLength+1),
		})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("rejects too many skills", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		skills := make([]string, consts.MaxSkillsPerList+1)
		for i := range skills {
			skills[i] = "skill"
		}

		_, err := c.CreateProfile(principalFor(1), ProfileInput{Name: "Alice", SkillsOffered: skills})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("rejects unknown availability", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := c.CreateProfile(principalFor(1), ProfileInput{
			Name:         "Alice",
			Availability: model.Availability("whenever"),
		})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestGetProfileByID(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)

		p, err := c.GetProfileByID(5)

		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Name)
	})

	t.Run("banned profile is forbidden", func(t *testing.T) {
		c, stores := newTestController()

		banned := storedProfile(5, 1)
		banned.IsBanned = true
		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(banned, nil)

		_, err := c.GetProfileByID(5)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("unknown profile", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := c.GetProfileByID(404)

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	strPtr := func(v string) *string { return &v }

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)
		stores.profile.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.Name == "Alice B" && p.Bio == "I teach guitar"
		})).Return(storedProfile(5, 1), nil)

		_, err := c.UpdateProfile(principalFor(1), 5, UpdateProfileInput{Name: strPtr("Alice B")})

		require.NoError(t, err)
		stores.profile.AssertExpectations(t)
	})

	t.Run("only the owner can update", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)

		_, err := c.UpdateProfile(principalFor(2), 5, UpdateProfileInput{Name: strPtr("Eve")})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("update is validated like create", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)

		_, err := c.UpdateProfile(principalFor(1), 5, UpdateProfileInput{Name: strPtr("A")})

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestDeleteProfile(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)
		stores.profile.On("Delete", mock.Anything, uint(5)).Return(nil)

		err := c.DeleteProfile(principalFor(1), 5)

		require.NoError(t, err)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("GetByID", mock.Anything, uint(5)).Return(storedProfile(5, 1), nil)

		err := c.DeleteProfile(principalFor(2), 5)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		stores.profile.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestListPublicProfiles(t *testing.T) {
	t.Run("applies paging defaults", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("ListPublic", mock.Anything, profile.ListFilter{
			Page:     1,
			PageSize: consts.DefaultPageSize,
		}).Return([]model.Profile{*storedProfile(5, 1)}, int64(1), nil)

		profiles, total, err := c.ListPublicProfiles(profile.ListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, profiles, 1)
	})

	t.Run("caps page size", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("ListPublic", mock.Anything, profile.ListFilter{
			Page:     1,
			PageSize: consts.MaxPageSize,
		}).Return([]model.Profile{}, int64(0), nil)

		_, _, err := c.ListPublicProfiles(profile.ListFilter{Page: 1, PageSize: 5000})

		require.NoError(t, err)
		stores.profile.AssertExpectations(t)
	})

	t.Run("drops unknown availability filter", func(t *testing.T) {
		c, stores := newTestController()

		stores.profile.On("ListPublic", mock.Anything, profile.ListFilter{
			Page:     1,
			PageSize: consts.DefaultPageSize,
		}).Return([]model.Profile{}, int64(0), nil)

		_, _, err := c.ListPublicProfiles(profile.ListFilter{Availability: model.Availability("sometimes")})

		require.NoError(t, err)
		stores.profile.AssertExpectations(t)
	})
}

func TestFlagSkill(t *testing.T) {
	t.Run("creates pending flag", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByID", mock.Anything, uint(2)).Return(&model.User{}, nil)
		stores.flaggedSkill.On("Create", mock.Anything, mock.MatchedBy(func(f *model.FlaggedSkill) bool {
			return f.UserID == 2 && f.Skill == "lockpicking" && f.Status == model.FlaggedSkillStatusPending
		})).Return(&model.FlaggedSkill{}, nil)

		_, err := c.FlagSkill(principalFor(1), 2, " lockpicking ", "inappropriate")

		require.NoError(t, err)
		stores.flaggedSkill.AssertExpectations(t)
	})

	t.Run("requires skill and reason", func(t *testing.T) {
		c, _ := newTestController()

		_, err := c.FlagSkill(principalFor(1), 2, "lockpicking", "  ")

		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("unknown target user", func(t *testing.T) {
		c, stores := newTestController()

		stores.user.On("GetByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := c.FlagSkill(principalFor(1), 99, "lockpicking", "inappropriate")

		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
