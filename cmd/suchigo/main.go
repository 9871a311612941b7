package main

import (
	"fmt"
	"os"

	"github.com/NABEEL165/suchigo-project/internal/auth"
	"github.com/NABEEL165/suchigo-project/internal/config"
	"github.com/NABEEL165/suchigo-project/internal/db"
	"github.com/NABEEL165/suchigo-project/internal/excel"
	httphandler "github.com/NABEEL165/suchigo-project/internal/http"
	"github.com/NABEEL165/suchigo-project/internal/http/middleware"
	"github.com/NABEEL165/suchigo-project/internal/logger"
	"github.com/NABEEL165/suchigo-project/internal/pdf"
	"github.com/NABEEL165/suchigo-project/internal/repository"
	"github.com/NABEEL165/suchigo-project/internal/service"
	"github.com/NABEEL165/suchigo-project/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	photoStore, err := storage.NewPhotoStore(cfg.Storage.PhotoDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init photo storage")
	}

	profileRepo := repository.NewProfileRepository(database)
	scheduleRepo := repository.NewScheduleRepository(database)
	localityRepo := repository.NewLocalityRepository(database)
	collectionRepo := repository.NewCollectionRepository(database)

	profileService := service.NewProfileService(profileRepo, scheduleRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	localityService := service.NewLocalityService(localityRepo)
	collectionService := service.NewCollectionService(
		collectionRepo,
		localityRepo,
		localityRepo,
		profileRepo,
		photoStore,
		cfg.Billing.DefaultRatePerKG,
		log,
	)
	reportService := service.NewReportService(collectionRepo, excel.NewGenerator(), pdf.NewGenerator())

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(
		profileService,
		scheduleService,
		localityService,
		collectionService,
		reportService,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting suchigo service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
