package controller

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/store"
	"github.com/skillswap/skillswap-backend/internal/utils/config"
	"github.com/skillswap/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
)

type Controller struct {
	db     *gorm.DB
	store  *store.Store
	jwtMgr *jwtauth.Manager
	logger *logger.Logger
	config *config.AppConfig
}

func New(
	db *gorm.DB,
	store *store.Store,
	jwtMgr *jwtauth.Manager,
	logger *logger.Logger,
	config *config.AppConfig,
) IController {
	return &Controller{
		db:     db,
		store:  store,
		jwtMgr: jwtMgr,
		logger: logger,
		config: config,
	}
}
