package model

import (
	"gorm.io/gorm"
)

type BroadcastMessage struct {
	gorm.Model
	Title    string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content  string `gorm:"column:content;type:text;not null" json:"content"`
	SentByID uint   `gorm:"column:sent_by_id;not null" json:"sent_by_id"`

	SentBy *User `gorm:"foreignKey:SentByID" json:"sent_by,omitempty"`
}

func (BroadcastMessage) TableName() string {
	return "broadcast_messages"
}
