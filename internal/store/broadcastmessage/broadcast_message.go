package broadcastmessage

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(tx *gorm.DB, message *model.BroadcastMessage) (*model.BroadcastMessage, error) {
	return message, tx.Create(message).Error
}

func (s *Store) List(tx *gorm.DB) ([]model.BroadcastMessage, error) {
	var messages []model.BroadcastMessage
	err := tx.Preload("SentBy").Order("created_at DESC, id DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
