package controller

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/apperror"
	"github.com/skillswap/skillswap-backend/internal/consts"
	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/store/profile"
)

func (c *Controller) CreateProfile(principal model.Principal, input ProfileInput) (*model.Profile, error) {
	existing, err := c.store.Profile.GetByUserID(c.db, principal.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.logger.Error("[CreateProfile][GetByUserID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("user already has a profile")
	}

	availability := input.Availability
	if availability == "" {
		availability = model.AvailabilityFlexible
	}
	visibility := input.Visibility
	if visibility == "" {
		visibility = model.ProfileVisibilityPublic
	}

	p := &model.Profile{
		UserID:        principal.UserID,
		Name:          strings.TrimSpace(input.Name),
		Bio:           strings.TrimSpace(input.Bio),
		Location:      strings.TrimSpace(input.Location),
		SkillsOffered: trimSkills(input.SkillsOffered),
		SkillsWanted:  trimSkills(input.SkillsWanted),
		Availability:  availability,
		Visibility:    visibility,
		AvatarURL:     strings.TrimSpace(input.AvatarURL),
		SocialLinks:   input.SocialLinks,
	}

	if err := validateProfile(p); err != nil {
		return nil, err
	}

	created, err := c.store.Profile.Create(c.db, p)
	if err != nil {
		if !errors.Is(err, apperror.ErrConflict) {
			c.logger.Error("[CreateProfile][Create]", map[string]string{
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return created, nil
}

func (c *Controller) GetMyProfile(principal model.Principal) (*model.Profile, error) {
	p, err := c.store.Profile.GetByUserID(c.db, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("profile not found")
		}
		c.logger.Error("[GetMyProfile][GetByUserID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return p, nil
}

func (c *Controller) GetProfileByID(id uint) (*model.Profile, error) {
	p, err := c.getProfile(id)
	if err != nil {
		return nil, err
	}
	if p.IsBanned {
		return nil, apperror.Forbidden("profile is banned")
	}
	return p, nil
}

func (c *Controller) UpdateProfile(principal model.Principal, id uint, input UpdateProfileInput) (*model.Profile, error) {
	p, err := c.getProfile(id)
	if err != nil {
		return nil, err
	}
	if p.UserID != principal.UserID {
		return nil, apperror.Forbidden("not allowed to update this profile")
	}

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Bio != nil {
		p.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.Location != nil {
		p.Location = strings.TrimSpace(*input.Location)
	}
	if input.SkillsOffered != nil {
		p.SkillsOffered = trimSkills(input.SkillsOffered)
	}
	if input.SkillsWanted != nil {
		p.SkillsWanted = trimSkills(input.SkillsWanted)
	}
	if input.Availability != nil {
		p.Availability = *input.Availability
	}
	if input.Visibility != nil {
		p.Visibility = *input.Visibility
	}
	if input.AvatarURL != nil {
		p.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.SocialLinks != nil {
		p.SocialLinks = *input.SocialLinks
	}

	if err := validateProfile(p); err != nil {
		return nil, err
	}

	updated, err := c.store.Profile.Save(c.db, p)
	if err != nil {
		c.logger.Error("[UpdateProfile][Save]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return updated, nil
}

func (c *Controller) DeleteProfile(principal model.Principal, id uint) error {
	p, err := c.getProfile(id)
	if err != nil {
		return err
	}
	if p.UserID != principal.UserID {
		return apperror.Forbidden("not allowed to delete this profile")
	}

	if err := c.store.Profile.Delete(c.db, id); err != nil {
		c.logger.Error("[DeleteProfile][Delete]", map[string]string{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (c *Controller) ListPublicProfiles(filter profile.ListFilter) ([]model.Profile, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = consts.DefaultPageSize
	}
	if filter.PageSize > consts.MaxPageSize {
		filter.PageSize = consts.MaxPageSize
	}
	// silently drop unknown availability filters, matching the search UI
	if filter.Availability != "" && !filter.Availability.IsValid() {
		filter.Availability = ""
	}

	profiles, total, err := c.store.Profile.ListPublic(c.db, filter)
	if err != nil {
		c.logger.Error("[ListPublicProfiles][ListPublic]", map[string]string{
			"error": err.Error(),
		})
		return nil, 0, err
	}
	return profiles, total, nil
}

func (c *Controller) FlagSkill(principal model.Principal, targetUserID uint, skill, reason string) (*model.FlaggedSkill, error) {
	skill = strings.TrimSpace(skill)
	reason = strings.TrimSpace(reason)
	if skill == "" || reason == "" {
		return nil, apperror.Validation("skill and reason are required")
	}

	if _, err := c.store.User.GetByID(c.db, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("target user not found")
		}
		c.logger.Error("[FlagSkill][GetTargetUser]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	flag, err := c.store.FlaggedSkill.Create(c.db, &model.FlaggedSkill{
		UserID: targetUserID,
		Skill:  skill,
		Reason: reason,
		Status: model.FlaggedSkillStatusPending,
	})
	if err != nil {
		c.logger.Error("[FlagSkill][Create]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return flag, nil
}

func (c *Controller) getProfile(id uint) (*model.Profile, error) {
	p, err := c.store.Profile.GetByID(c.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("profile not found")
		}
		c.logger.Error("[getProfile][GetByID]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}
	return p, nil
}

func validateProfile(p *model.Profile) error {
	if len(p.Name) < consts.MinNameLength || len(p.Name) > consts.MaxNameLength {
		return apperror.Validation(fmt.Sprintf("name must be between %d and %d characters", consts.MinNameLength, consts.MaxNameLength))
	}
	if len(p.Bio) > consts.MaxBioLength {
		return apperror.Validation(fmt.Sprintf("bio cannot exceed %d characters", consts.MaxBioLength))
	}
	if len(p.Location) > consts.MaxLocationLength {
		return apperror.Validation(fmt.Sprintf("location cannot exceed %d characters", consts.MaxLocationLength))
	}
	if !p.Availability.IsValid() {
		return apperror.Validation("availability must be weekdays, weekends or flexible")
	}
	if !p.Visibility.IsValid() {
		return apperror.Validation("visibility must be public or private")
	}
	if err := validateSkillList(p.SkillsOffered, "skills_offered"); err != nil {
		return err
	}
	return validateSkillList(p.SkillsWanted, "skills_wanted")
}

func validateSkillList(skills []string, field string) error {
	if len(skills) > consts.MaxSkillsPerList {
		return apperror.Validation(fmt.Sprintf("%s cannot have more than %d entries", field, consts.MaxSkillsPerList))
	}
	for _, skill := range skills {
		if skill == "" {
			return apperror.Validation(field + " must not contain blank entries")
		}
		if len(skill) > consts.MaxSkillLength {
			return apperror.Validation(fmt.Sprintf("each %s entry cannot exceed %d characters", field, consts.MaxSkillLength))
		}
	}
	return nil
}

func trimSkills(skills []string) []string {
	trimmed := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			trimmed = append(trimmed, skill)
		}
	}
	return trimmed
}
