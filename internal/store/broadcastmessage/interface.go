package broadcastmessage

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/model"
)

type IStore interface {
	Create(tx *gorm.DB, message *model.BroadcastMessage) (*model.BroadcastMessage, error)
	List(tx *gorm.DB) ([]model.BroadcastMessage, error)
}
