package model

import (
	"gorm.io/gorm"
)

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCancelled SwapStatus = "cancelled"

	// SwapStatusCompleted is referenced by reporting but no transition
	// produces it yet. Reserved until both-party completion ships.
	SwapStatusCompleted SwapStatus = "completed"
)

// IsValid reports whether s is a status the API accepts as a filter.
func (s SwapStatus) IsValid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled, SwapStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is defined from s.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCancelled || s == SwapStatusCompleted
}

type SwapFeedback struct {
	Rating  *int    `gorm:"column:feedback_rating" json:"rating,omitempty"`
	Comment *string `gorm:"column:feedback_comment;type:text" json:"comment,omitempty"`
}

type SwapRequest struct {
	gorm.Model
	FromUserID      uint         `gorm:"column:from_user_id;not null;index" json:"from_user_id"`
	ToUserID        uint         `gorm:"column:to_user_id;not null;index" json:"to_user_id"`
	SkillsOffered   []string     `gorm:"column:skills_offered;serializer:json;type:jsonb;not null" json:"skills_offered"`
	SkillsRequested []string     `gorm:"column:skills_requested;serializer:json;type:jsonb;not null" json:"skills_requested"`
	Status          SwapStatus   `gorm:"column:status;type:varchar(20);not null;default:'pending';index" json:"status"`
	Feedback        SwapFeedback `gorm:"embedded" json:"feedback"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IsParticipant reports whether userID is the sender or the recipient.
func (r *SwapRequest) IsParticipant(userID uint) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// IsSender reports whether userID created the request.
func (r *SwapRequest) IsSender(userID uint) bool {
	return r.FromUserID == userID
}

// IsRecipient reports whether the request targets userID.
func (r *SwapRequest) IsRecipient(userID uint) bool {
	return r.ToUserID == userID
}

// MergeFeedback applies a partial feedback update. Omitted fields keep the
// previously stored values, so resubmitting the same payload is idempotent.
func (r *SwapRequest) MergeFeedback(rating *int, comment *string) {
	if rating != nil {
		r.Feedback.Rating = rating
	}
	if comment != nil {
		r.Feedback.Comment = comment
	}
}
