package controller

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/store/profile"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(tx *gorm.DB, user *model.User) (*model.User, error) {
	args := m.Called(tx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) GetByID(tx *gorm.DB, id uint) (*model.User, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(tx *gorm.DB, email string) (*model.User, error) {
	args := m.Called(tx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) GetByEmailOrUsername(tx *gorm.DB, email, username string) (*model.User, error) {
	args := m.Called(tx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserStore) UpdateRefreshToken(tx *gorm.DB, id uint, refreshToken *string) error {
	args := m.Called(tx, id, refreshToken)
	return args.Error(0)
}

func (m *mockUserStore) SetBanned(tx *gorm.DB, id uint, banned bool) error {
	args := m.Called(tx, id, banned)
	return args.Error(0)
}

func (m *mockUserStore) Count(tx *gorm.DB) (int64, error) {
	args := m.Called(tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) CountByRole(tx *gorm.DB, role model.UserRole) (int64, error) {
	args := m.Called(tx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) CountBanned(tx *gorm.DB) (int64, error) {
	args := m.Called(tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.User, error) {
	args := m.Called(tx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type mockSwapRequestStore struct {
	mock.Mock
}

func (m *mockSwapRequestStore) Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error) {
	args := m.Called(tx, swapRequest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SwapRequest), args.Error(1)
}

func (m *mockSwapRequestStore) GetByID(tx *gorm.DB, id uint) (*model.SwapRequest, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SwapRequest), args.Error(1)
}

func (m *mockSwapRequestStore) ListByUser(tx *gorm.DB, userID uint, status *model.SwapStatus) ([]model.SwapRequest, error) {
	args := m.Called(tx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SwapRequest), args.Error(1)
}

func (m *mockSwapRequestStore) HasPendingBetween(tx *gorm.DB, userA, userB uint) (bool, error) {
	args := m.Called(tx, userA, userB)
	return args.Bool(0), args.Error(1)
}

func (m *mockSwapRequestStore) TransitionStatus(tx *gorm.DB, id uint, from, to model.SwapStatus) (bool, error) {
	args := m.Called(tx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockSwapRequestStore) UpdateFeedback(tx *gorm.DB, id uint, feedback model.SwapFeedback) error {
	args := m.Called(tx, id, feedback)
	return args.Error(0)
}

func (m *mockSwapRequestStore) CountAll(tx *gorm.DB) (int64, error) {
	args := m.Called(tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSwapRequestStore) CountByStatus(tx *gorm.DB, status model.SwapStatus) (int64, error) {
	args := m.Called(tx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSwapRequestStore) ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error) {
	args := m.Called(tx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SwapRequest), args.Error(1)
}

func (m *mockSwapRequestStore) ListWithFeedbackBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error) {
	args := m.Called(tx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SwapRequest), args.Error(1)
}

type mockProfileStore struct {
	mock.Mock
}

func (m *mockProfileStore) Create(tx *gorm.DB, p *model.Profile) (*model.Profile, error) {
	args := m.Called(tx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileStore) GetByID(tx *gorm.DB, id uint) (*model.Profile, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileStore) GetByUserID(tx *gorm.DB, userID uint) (*model.Profile, error) {
	args := m.Called(tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileStore) Save(tx *gorm.DB, p *model.Profile) (*model.Profile, error) {
	args := m.Called(tx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *mockProfileStore) Delete(tx *gorm.DB, id uint) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *mockProfileStore) ListPublic(tx *gorm.DB, filter profile.ListFilter) ([]model.Profile, int64, error) {
	args := m.Called(tx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *mockProfileStore) SetBannedByUserID(tx *gorm.DB, userID uint, banned bool) error {
	args := m.Called(tx, userID, banned)
	return args.Error(0)
}

type mockFlaggedSkillStore struct {
	mock.Mock
}

func (m *mockFlaggedSkillStore) Create(tx *gorm.DB, flaggedSkill *model.FlaggedSkill) (*model.FlaggedSkill, error) {
	args := m.Called(tx, flaggedSkill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlaggedSkill), args.Error(1)
}

func (m *mockFlaggedSkillStore) GetByID(tx *gorm.DB, id uint) (*model.FlaggedSkill, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlaggedSkill), args.Error(1)
}

func (m *mockFlaggedSkillStore) List(tx *gorm.DB, status *model.FlaggedSkillStatus) ([]model.FlaggedSkill, error) {
	args := m.Called(tx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FlaggedSkill), args.Error(1)
}

func (m *mockFlaggedSkillStore) TransitionStatus(tx *gorm.DB, id uint, from, to model.FlaggedSkillStatus) (bool, error) {
	args := m.Called(tx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockFlaggedSkillStore) CountByStatus(tx *gorm.DB, status model.FlaggedSkillStatus) (int64, error) {
	args := m.Called(tx, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockBroadcastMessageStore struct {
	mock.Mock
}

func (m *mockBroadcastMessageStore) Create(tx *gorm.DB, message *model.BroadcastMessage) (*model.BroadcastMessage, error) {
	args := m.Called(tx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BroadcastMessage), args.Error(1)
}

func (m *mockBroadcastMessageStore) List(tx *gorm.DB) ([]model.BroadcastMessage, error) {
	args := m.Called(tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BroadcastMessage), args.Error(1)
}
