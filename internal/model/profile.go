package model

import (
	"gorm.io/gorm"
)

type Availability string

const (
	AvailabilityWeekdays Availability = "weekdays"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityFlexible Availability = "flexible"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityWeekdays, AvailabilityWeekends, AvailabilityFlexible:
		return true
	}
	return false
}

type ProfileVisibility string

const (
	ProfileVisibilityPublic  ProfileVisibility = "public"
	ProfileVisibilityPrivate ProfileVisibility = "private"
)

func (v ProfileVisibility) IsValid() bool {
	return v == ProfileVisibilityPublic || v == ProfileVisibilityPrivate
}

type SocialLinks struct {
	Website  string `json:"website,omitempty"`
	Github   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

type Profile struct {
	gorm.Model
	UserID        uint              `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	Name          string            `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Bio           string            `gorm:"column:bio;type:varchar(500)" json:"bio,omitempty"`
	Location      string            `gorm:"column:location;type:varchar(100)" json:"location,omitempty"`
	SkillsOffered []string          `gorm:"column:skills_offered;serializer:json;type:jsonb" json:"skills_offered"`
	SkillsWanted  []string          `gorm:"column:skills_wanted;serializer:json;type:jsonb" json:"skills_wanted"`
	Availability  Availability      `gorm:"column:availability;type:varchar(20);not null;default:'flexible'" json:"availability"`
	Visibility    ProfileVisibility `gorm:"column:visibility;type:varchar(20);not null;default:'public'" json:"visibility"`
	AvatarURL     string            `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	SocialLinks   SocialLinks       `gorm:"column:social_links;serializer:json;type:jsonb" json:"social_links"`
	IsBanned      bool              `gorm:"column:is_banned;not null;default:false" json:"is_banned"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}
