package swaprequest

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

// Create persists a new request. The partial unique index on the unordered
// pending pair is the hard guard against duplicate requests; a violation is
// surfaced as a conflict.
func (s *Store) Create(tx *gorm.DB, swapRequest *model.SwapRequest) (*model.SwapRequest, error) {
	err := tx.Create(swapRequest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("a pending swap request already exists between these users")
		}
		return nil, err
	}
	return swapRequest, nil
}

func (s *Store) GetByID(tx *gorm.DB, id uint) (*model.SwapRequest, error) {
	var swapRequest model.SwapRequest
	err := tx.Preload("FromUser").Preload("ToUser").First(&swapRequest, id).Error
	if err != nil {
		return nil, err
	}
	return &swapRequest, nil
}

func (s *Store) ListByUser(tx *gorm.DB, userID uint, status *model.SwapStatus) ([]model.SwapRequest, error) {
	q := tx.Preload("FromUser").Preload("ToUser").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var swapRequests []model.SwapRequest
	err := q.Order("created_at DESC, id DESC").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}

func (s *Store) HasPendingBetween(tx *gorm.DB, userA, userB uint) (bool, error) {
	var count int64
	err := tx.Model(&model.SwapRequest{}).
		Where("status = ?", model.SwapStatusPending).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TransitionStatus applies a compare-and-swap style update: the write only
// lands if the stored status still equals from. Returns false when the row
// was already moved by a concurrent transition.
func (s *Store) TransitionStatus(tx *gorm.DB, id uint, from, to model.SwapStatus) (bool, error) {
	res := tx.Model(&model.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) UpdateFeedback(tx *gorm.DB, id uint, feedback model.SwapFeedback) error {
	return tx.Model(&model.SwapRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"feedback_rating":  feedback.Rating,
			"feedback_comment": feedback.Comment,
			"updated_at":       time.Now(),
		}).Error
}

func (s *Store) CountAll(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.Model(&model.SwapRequest{}).Count(&count).Error
	return count, err
}

func (s *Store) CountByStatus(tx *gorm.DB, status model.SwapStatus) (int64, error) {
	var count int64
	err := tx.Model(&model.SwapRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (s *Store) ListCreatedBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error) {
	q := tx.Model(&model.SwapRequest{})
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}

	var swapRequests []model.SwapRequest
	err := q.Order("created_at ASC").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}

func (s *Store) ListWithFeedbackBetween(tx *gorm.DB, from, to *time.Time) ([]model.SwapRequest, error) {
	q := tx.Preload("FromUser").Preload("ToUser").
		Where("status = ?", model.SwapStatusAccepted).
		Where("feedback_rating IS NOT NULL")
	if from != nil {
		q = q.Where("updated_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("updated_at <= ?", *to)
	}

	var swapRequests []model.SwapRequest
	err := q.Order("updated_at ASC").Find(&swapRequests).Error
	if err != nil {
		return nil, err
	}
	return swapRequests, nil
}
