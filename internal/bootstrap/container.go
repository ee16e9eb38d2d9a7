package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"mm-voicenote-be/internal/config"
	"mm-voicenote-be/internal/controller"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/implementation"
	"mm-voicenote-be/internal/repository/memory"
	"mm-voicenote-be/internal/service"
	"mm-voicenote-be/pkg/gemini"
	"mm-voicenote-be/pkg/kv"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	NoteController   controller.INoteController
	ReportController controller.IReportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Session service exposed so main can restore state at startup
	SessionService service.ISessionService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Persistence Store (provider selected by config)
	var store kv.Store
	if cfg.Storage.Provider == "redis" {
		redisStore, err := kv.NewRedisStore(context.Background(), cfg.Storage.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Failed to connect storage provider REDIS: %v", err)
		}
		store = redisStore
		log.Printf("[INFO] Using Storage Provider: REDIS (%s)", cfg.Storage.RedisURL)
	} else {
		fileStore, err := kv.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			log.Fatalf("[FATAL] Failed to open storage file: %v", err)
		}
		store = fileStore
		log.Printf("[INFO] Using Storage Provider: FILE (%s)", cfg.Storage.FilePath)
	}

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 4. Repositories
	noteRepo := implementation.NewNoteRepository(store, sysLogger)
	reportRepo := implementation.NewReportRepository(store, sysLogger)
	sessionRepo := implementation.NewSessionRepository(store, sysLogger)
	tokenCache := memory.NewTokenCache(time.Duration(cfg.App.SessionTTLHours) * time.Hour)

	// 5. AI Gateway
	gateway := gemini.NewClient(cfg.Keys.GoogleGemini, cfg.Ai.NoteModel)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Events.ActivityTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.ActivityTopic, sysLogger)

	sessionService := service.NewSessionService(
		sessionRepo,
		tokenCache,
		cfg.Keys.JWTSecret,
		time.Duration(cfg.App.SessionTTLHours)*time.Hour,
	)
	noteService := service.NewNoteService(noteRepo, gateway, publisherService, sysLogger)
	reportService := service.NewReportService(noteRepo, reportRepo, gateway, publisherService, sysLogger)

	// 7. Controllers
	return &Container{
		AuthController:   controller.NewAuthController(sessionService),
		NoteController:   controller.NewNoteController(noteService),
		ReportController: controller.NewReportController(reportService),
		ConsumerService:  consumerService,
		SessionService:   sessionService,
		Logger:           sysLogger,
	}
}
