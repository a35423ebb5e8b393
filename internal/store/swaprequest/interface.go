package swaprequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error)
	GetByID(tx *gorm.DB, id uint) (*model.SwapRequest, error)
	ListByUser(tx *gorm.DB, userID uint, status *model.SwapStatus) ([]model.SwapRequest, error)
	HasPendingBetween(tx *gorm.DB, userA, userB uint) (bool, error)
	TransitionStatus(tx *gorm.DB, id uint, from, to model.SwapStatus) (bool, error)
	UpdateFeedback(tx *gorm.DB, id uint, feedback model.SwapFeedback) error
	CountAll(tx *gorm.DB) (int64, error)
	CountByStatus(tx *gorm.DB, status model.SwapStatus) (int64, error)
	ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error)
	ListWithFeedbackBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error)
}
