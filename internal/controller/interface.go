package controller

import (
	"time"

	"github.com/skillswap/skillswap-backend/internal/model"
	"github.com/skillswap/skillswap-backend/internal/store/profile"
)

type IController interface {
	// auth
	Register(input RegisterInput) (*model.User, error)
	Login(email, password string) (*AuthResult, error)
	Logout(principal model.Principal) error
	RefreshToken(refreshToken string) (*AuthResult, error)
	Authenticate(accessToken string) (*model.Principal, error)
	Me(principal model.Principal) (*model.User, error)

	// swap lifecycle
	CreateSwapRequest(principal model.Principal, input CreateSwapInput) (*model.SwapRequest, error)
	ListSwapRequests(principal model.Principal, status *model.SwapStatus) ([]model.SwapRequest, error)
	AcceptSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error)
	RejectSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error)
	CancelSwapRequest(principal model.Principal, id uint) (*model.SwapRequest, error)
	SubmitFeedback(principal model.Principal, id uint, rating *int, comment *string) (*model.SwapRequest, error)

	// profiles
	CreateProfile(principal model.Principal, input ProfileInput) (*model.Profile, error)
	GetMyProfile(principal model.Principal) (*model.Profile, error)
	GetProfileByID(id uint) (*model.Profile, error)
	UpdateProfile(principal model.Principal, id uint, input UpdateProfileInput) (*model.Profile, error)
	DeleteProfile(principal model.Principal, id uint) error
	ListPublicProfiles(filter profile.ListFilter) ([]model.Profile, int64, error)
	FlagSkill(principal model.Principal, targetUserID uint, skill, reason string) (*model.FlaggedSkill, error)

	// moderation & reporting
	ListFlaggedSkills(status *model.FlaggedSkillStatus) ([]model.FlaggedSkill, error)
	ResolveFlaggedSkill(id uint, status model.FlaggedSkillStatus) (*model.FlaggedSkill, error)
	ToggleUserBan(id uint, banned bool) (*model.User, error)
	SendBroadcastMessage(principal model.Principal, title, content string) (*model.BroadcastMessage, error)
	ListBroadcastMessages() ([]model.BroadcastMessage, error)
	GetDashboardStats() (*DashboardStats, error)
	ActivityReportRows(from, to *time.Time) ([][]string, error)
	FeedbackReportRows(from, to *time.Time) ([][]string, error)
	SwapReportRows(from, to *time.Time) ([][]string, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      model.UserRole
	SecretKey string
}

type AuthResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

type CreateSwapInput struct {
	ToUserID        uint
	SkillsOffered   []string
	SkillsRequested []string
}

type ProfileInput struct {
	Name          string
	Bio           string
	Location      string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  model.Availability
	Visibility    model.ProfileVisibility
	AvatarURL     string
	SocialLinks   model.SocialLinks
}

// UpdateProfileInput is a partial update: nil fields keep stored values.
type UpdateProfileInput struct {
	Name          *string
	Bio           *string
	Location      *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  *model.Availability
	Visibility    *model.ProfileVisibility
	AvatarURL     *string
	SocialLinks   *model.SocialLinks
}

type DashboardStats struct {
	TotalUsers           int64 `json:"total_users"`
	TotalAdmins          int64 `json:"total_admins"`
	BannedUsers          int64 `json:"banned_users"`
	TotalSwaps           int64 `json:"total_swaps"`
	PendingSwaps         int64 `json:"pending_swaps"`
	AcceptedSwaps        int64 `json:"accepted_swaps"`
	RejectedSwaps        int64 `json:"rejected_swaps"`
	CancelledSwaps       int64 `json:"cancelled_swaps"`
	PendingFlaggedSkills int64 `json:"pending_flagged_skills"`
}
