package store

import (
	"github.com/skillswap/skillswap-backend/internal/store/broadcastmessage"
	"github.com/skillswap/skillswap-backend/internal/store/flaggedskill"
	"github.com/skillswap/skillswap-backend/internal/store/profile"
	"github.com/skillswap/skillswap-backend/internal/store/swaprequest"
	"github.com/skillswap/skillswap-backend/internal/store/user"
)

type Store struct {
	User             user.IStore
	Profile          profile.IStore
	SwapRequest      swaprequest.IStore
	FlaggedSkill     flaggedskill.IStore
	BroadcastMessage broadcastmessage.IStore
}

func New() *Store {
	return &Store{
		User:             user.New(),
		Profile:          profile.New(),
		SwapRequest:      swaprequest.New(),
		FlaggedSkill:     flaggedskill.New(),
		BroadcastMessage: broadcastmessage.New(),
	}
}
