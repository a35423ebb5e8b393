package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/skillswap/skillswap-backend/internal/controller"
	"github.com/skillswap/skillswap-backend/internal/monitoring"
	"github.com/skillswap/skillswap-backend/internal/store"
	pgstore "github.com/skillswap/skillswap-backend/internal/store/postgres"
	"github.com/skillswap/skillswap-backend/internal/transport/http"
	"github.com/skillswap/skillswap-backend/internal/utils/config"
	"github.com/skillswap/skillswap-backend/internal/utils/jwtauth"
	"github.com/skillswap/skillswap-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	s := store.New()
	jwtMgr := jwtauth.New(&appConfig.Auth)
	ctrl := controller.New(db, s, jwtMgr, logger, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	platformStats := monitoring.NewPlatformStats()
	platformStats.MustRegister(metricsRegistry)

	refreshStats := func() {
		stats, err := ctrl.GetDashboardStats()
		if err != nil {
			logger.Error("[Init][refreshStats]", map[string]string{
				"error": err.Error(),
			})
			return
		}
		platformStats.SetUserCounts(stats.TotalUsers, stats.TotalAdmins, stats.BannedUsers)
		platformStats.SetSwapCounts(stats.TotalSwaps, stats.PendingSwaps, stats.AcceptedSwaps, stats.RejectedSwaps, stats.CancelledSwaps)
		platformStats.SetPendingFlags(stats.PendingFlaggedSkills)
	}

	c := cron.New()
	if _, err := c.AddFunc(appConfig.StatsPeriod, refreshStats); err != nil {
		logger.Error("[Init][AddFunc]", map[string]string{
			"error": err.Error(),
		})
	}
	refreshStats()
	c.Start()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, db, metricsRegistry, httpMetrics)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}
