package controller

import (
	"strconv"
	"strings"
	"time"
)

// Report rows are returned header-first, ready for CSV encoding at the
// transport layer.

func (c *Controller) ActivityReportRows(from, to *time.Time) ([][]string, error) {
	users, err := c.store.User.ListCreatedBetween(c.db, from, to)
	if err != nil {
		c.logger.Error("[ActivityReportRows][ListCreatedBetween]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	rows := [][]string{
		{"id", "username", "email", "role", "banned", "registered_at"},
	}
	for _, user := range users {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(user.ID), 10),
			user.Username,
			user.Email,
			string(user.Role),
			strconv.FormatBool(user.IsBanned),
			user.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (c *Controller) FeedbackReportRows(from, to *time.Time) ([][]string, error) {
	swaps, err := c.store.SwapRequest.ListWithFeedbackBetween(c.db, from, to)
	if err != nil {
		c.logger.Error("[FeedbackReportRows][ListWithFeedbackBetween]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	rows := [][]string{
		{"swap_id", "from_user", "to_user", "rating", "comment", "updated_at"},
	}
	for _, swap := range swaps {
		rating := ""
		if swap.Feedback.Rating != nil {
			rating = strconv.Itoa(*swap.Feedback.Rating)
		}
		comment := ""
		if swap.Feedback.Comment != nil {
			comment = *swap.Feedback.Comment
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(swap.ID), 10),
			swap.FromUser.Username,
			swap.ToUser.Username,
			rating,
			comment,
			swap.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}

func (c *Controller) SwapReportRows(from, to *time.Time) ([][]string, error) {
	swaps, err := c.store.SwapRequest.ListCreatedBetween(c.db, from, to)
	if err != nil {
		c.logger.Error("[SwapReportRows][ListCreatedBetween]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	rows := [][]string{
		{"id", "from_user", "to_user", "skills_offered", "skills_requested", "status", "created_at"},
	}
	for _, swap := range swaps {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(swap.ID), 10),
			swap.FromUser.Username,
			swap.ToUser.Username,
			strings.Join(swap.SkillsOffered, "; "),
			strings.Join(swap.SkillsRequested, "; "),
			string(swap.Status),
			swap.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows, nil
}
