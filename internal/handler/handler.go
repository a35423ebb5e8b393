package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/handler/admin"
	"github.com/skillswap/skillswap-backend/internal/handler/auth"
	"github.com/skillswap/skillswap-backend/internal/handler/health"
	"github.com/skillswap/skillswap-backend/internal/handler/metrics"
	"github.com/skillswap/skillswap-backend/internal/handler/profile"
	"github.com/skillswap/skillswap-backend/internal/handler/swap"
	"github.com/skillswap/skillswap-backend/internal/utils/config"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
)

type Handler struct {
	AuthHandler    auth.IHandler
	ProfileHandler profile.IHandler
	SwapHandler    swap.IHandler
	AdminHandler   admin.IHandler
	HealthHandler  health.IHealthHandler
	MetricsHandler *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		AuthHandler:    auth.New(ctrl, logger),
		ProfileHandler: profile.New(ctrl, logger),
		SwapHandler:    swap.New(ctrl, logger),
		AdminHandler:   admin.New(ctrl, logger),
		HealthHandler:  health.New(appConfig, logger, db),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
