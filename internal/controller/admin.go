package controller

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/store"
)

func (c *Controller) ListFlaggedSkills(status *model.FlaggedSkillStatus) ([]model.FlaggedSkill, error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.Validation("unknown status filter")
	}

	flags, err := c.store.FlaggedSkill.List(c.db, status)
	if err != nil {
		c.logger.Error("[ListFlaggedSkills][List]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return flags, nil
}

// ResolveFlaggedSkill moves a pending flag to approved or rejected. The
// conditional update makes two concurrent resolutions settle on one winner.
func (c *Controller) ResolveFlaggedSkill(id uint, status model.FlaggedSkillStatus) (*model.FlaggedSkill, error) {
	if !status.IsResolution() {
		return nil, apperror.Validation("status must be approved or rejected")
	}

	flag, err := c.store.FlaggedSkill.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("flagged skill not found")
		}
		c.logger.Error("[ResolveFlaggedSkill][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if flag.Status != model.FlaggedSkillStatusPending {
		return nil, apperror.InvalidState("flagged skill is already resolved")
	}

	ok, err := c.store.FlaggedSkill.TransitionStatus(c.db, id, model.FlaggedSkillStatusPending, status)
	if err != nil {
		c.logger.Error("[ResolveFlaggedSkill][TransitionStatus]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if !ok {
		return nil, apperror.InvalidState("flagged skill is already resolved")
	}

	flag.Status = status
	return flag, nil
}

// ToggleUserBan flips the ban flag on a user and shadows it onto their
// profile in the same transaction, so public search drops banned profiles
// without a join.
func (c *Controller) ToggleUserBan(id uint, banned bool) (*model.User, error) {
	user, err := c.store.User.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user not found")
		}
		c.logger.Error("[ToggleUserBan][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if user.Role == model.UserRoleAdmin {
		return nil, apperror.Forbidden("cannot ban an admin user")
	}

	err = store.DoInTx(c.db, func(tx *gorm.DB) error {
		if err := c.store.User.SetBanned(tx, id, banned); err != nil {
			return err
		}
		return c.store.Profile.SetBannedByUserID(tx, id, banned)
	})
	if err != nil {
		c.logger.Error("[ToggleUserBan][DoInTx]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	user.IsBanned = banned
	return user, nil
}

func (c *Controller) SendBroadcastMessage(principal model.Principal, title, content string) (*model.BroadcastMessage, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, apperror.Validation("title and content are required")
	}

	message, err := c.store.BroadcastMessage.Create(c.db, &model.BroadcastMessage{
		Title:    title,
		Content:  content,
		SentByID: principal.UserID,
	})
	if err != nil {
		c.logger.Error("[SendBroadcastMessage][Create]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return message, nil
}

func (c *Controller) ListBroadcastMessages() ([]model.BroadcastMessage, error) {
	messages, err := c.store.BroadcastMessage.List(c.db)
	if err != nil {
		c.logger.Error("[ListBroadcastMessages][List]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return messages, nil
}

func (c *Controller) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		dst   *int64
		count func() (int64, error)
	}{
		{&stats.TotalUsers, func() (int64, error) { return c.store.User.Count(c.db) }},
		{&stats.TotalAdmins, func() (int64, error) { return c.store.User.CountByRole(c.db, model.UserRoleAdmin) }},
		{&stats.BannedUsers, func() (int64, error) { return c.store.User.CountBanned(c.db) }},
		{&stats.TotalSwaps, func() (int64, error) { return c.store.SwapRequest.CountAll(c.db) }},
		{&stats.PendingSwaps, func() (int64, error) { return c.store.SwapRequest.CountByStatus(c.db, model.SwapStatusPending) }},
		{&stats.AcceptedSwaps, func() (int64, error) { return c.store.SwapRequest.CountByStatus(c.db, model.SwapStatusAccepted) }},
		{&stats.RejectedSwaps, func() (int64, error) { return c.store.SwapRequest.CountByStatus(c.db, model.SwapStatusRejected) }},
		{&stats.CancelledSwaps, func() (int64, error) { return c.store.SwapRequest.CountByStatus(c.db, model.SwapStatusCancelled) }},
		{&stats.PendingFlaggedSkills, func() (int64, error) { return c.store.FlaggedSkill.CountByStatus(c.db, model.FlaggedSkillStatusPending) }},
	}

	for _, item := range counts {
		value, err := item.count()
		if err != nil {
			c.logger.Error("[GetDashboardStats][Count]", map[string]string{
				"error": err.Error(),
			})
			return nil, err
		}
		*item.dst = value
	}

	return stats, nil
}
