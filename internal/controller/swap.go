package controller

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
)

// CreateSwapRequest opens a new pending request from the principal to the
// target user. The unordered pair may hold at most one pending request at a
// time; the pre-check below is advisory, the partial unique index in the
// store is the guard that survives concurrent creates.
func (c *Controller) CreateSwapRequest(principal model.Principal, input CreateSwapInput) (*model.SwapRequest, error) {
	skillsOffered, err := normalizeSkills(input.SkillsOffered, "skills_offered")
	if err != nil {
		return nil, err
	}
	skillsRequested, err := normalizeSkills(input.SkillsRequested, "skills_requested")
	if err != nil {
		return nil, err
	}

	if input.ToUserID == principal.UserID {
		return nil, errors.Wrap(apperror.ErrSelfTarget, "cannot send swap request to yourself")
	}

	target, err := c.store.User.GetByID(c.db, input.ToUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("target user not found")
		}
		c.logger.Error("[CreateSwapRequest][GetTargetUser]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if target.IsBanned {
		return nil, apperror.Forbidden("cannot send swap request to banned user")
	}

	exists, err := c.store.SwapRequest.HasPendingBetween(c.db, principal.UserID, input.ToUserID)
	if err != nil {
		c.logger.Error("[CreateSwapRequest][HasPendingBetween]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("a pending swap request already exists between these users")
	}

	swapRequest, err := c.store.SwapRequest.Create(c.db, &model.SwapRequest{
		FromUserID:      principal.UserID,
		ToUserID:        input.ToUserID,
		SkillsOffered:   skillsOffered,
		SkillsRequested: skillsRequested,
		Status:          model.SwapStatusPending,
	})
	if err != nil {
		if !errors.Is(err, apperror.ErrConflict) {
			c.logger.Error("[CreateSwapRequest][Create]", map[string]string{
				"error": err.Error(),
			})
		}
		return nil, err
	}

	return swapRequest, nil
}

func (c *Controller) ListSwapRequests(principal model.Principal, status *model.SwapStatus) ([]model.SwapRequest, error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.Validation("unknown status filter")
	}

	swapRequests, err := c.store.SwapRequest.ListByUser(c.db, principal.UserID, status)
	if err != nil {
		c.logger.Error("[ListSwapRequests][ListByUser]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return swapRequests, nil
}

func (c *Controller) AcceptSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error) {
	return c.respondToSwapRequest(principal, id, model.SwapStatusAccepted)
}

func (c *Controller) RejectSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error) {
	return c.respondToSwapRequest(principal, id, model.SwapStatusRejected)
}

// respondToSwapRequest applies a recipient-side transition out of pending.
func (c *Controller) respondToSwapRequest(principal model.Principal, id uint, to model.SwapStatus) (*model.SwapRequest, error) {
	swapRequest, err := c.getSwapRequest(id)
	if err != nil {
		return nil, err
	}

	if !swapRequest.IsRecipient(principal.UserID) {
		return nil, apperror.Forbidden("only the recipient can respond to a swap request")
	}
	if swapRequest.Status != model.SwapStatusPending {
		return nil, apperror.InvalidState("swap request is not pending")
	}

	return c.transition(id, model.SwapStatusPending, to)
}

// CancelSwapRequest is sender-only. Cancelled requests are retained as a
// terminal record rather than deleted, so reporting keeps its audit trail.
func (c *Controller) CancelSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error) {
	swapRequest, err := c.getSwapRequest(id)
	if err != nil {
		return nil, err
	}

	if !swapRequest.IsSender(principal.UserID) {
		return nil, apperror.Forbidden("only the sender can cancel a swap request")
	}
	if swapRequest.Status != model.SwapStatusPending {
		return nil, apperror.InvalidState("swap request is not pending")
	}

	return c.transition(id, model.SwapStatusPending, model.SwapStatusCancelled)
}

func (c *Controller) SubmitFeedback(principal model.Principal, id uint, rating *int, comment *string) (*model.SwapRequest, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, apperror.Validation("rating must be between 1 and 5")
	}

	swapRequest, err := c.getSwapRequest(id)
	if err != nil {
		return nil, err
	}

	if !swapRequest.IsParticipant(principal.UserID) {
		return nil, apperror.Forbidden("only participants can submit feedback")
	}
	if swapRequest.Status != model.SwapStatusAccepted {
		return nil, apperror.InvalidState("feedback is only allowed on accepted swaps")
	}

	swapRequest.MergeFeedback(rating, comment)

	if err := c.store.SwapRequest.UpdateFeedback(c.db, id, swapRequest.Feedback); err != nil {
		c.logger.Error("[SubmitFeedback][UpdateFeedback]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	return swapRequest, nil
}

func (c *Controller) getSwapRequest(id uint) (*model.SwapRequest, error) {
	swapRequest, err := c.store.SwapRequest.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("swap request not found")
		}
		c.logger.Error("[getSwapRequest][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return swapRequest, nil
}

// transition performs the conditional status update. A lost race (the row
// moved between the read and the write) surfaces as an invalid-state error,
// so two concurrent accepts yield exactly one success.
func (c *Controller) transition(id uint, from, to model.SwapStatus) (*model.SwapRequest, error) {
	ok, err := c.store.SwapRequest.TransitionStatus(c.db, id, from, to)
	if err != nil {
		c.logger.Error("[transition][TransitionStatus]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("swap request is not pending")
	}

	return c.getSwapRequest(id)
}

func normalizeSkills(skills []string, field string) ([]string, error) {
	if len(skills) == 0 {
		return nil, apperror.Validation(field + " must be a non-empty list")
	}

	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return nil, apperror.Validation(field + " must not contain blank entries")
		}
		normalized = append(normalized, skill)
	}
	return normalized, nil
}
