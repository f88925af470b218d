package bootstrap

import (
	"context"
	"log"
	"time"

	"smart-summary-be/internal/config"
	"smart-summary-be/internal/controller"
	"smart-summary-be/internal/pkg/logger"
	"smart-summary-be/internal/pkg/mailer"
	"smart-summary-be/internal/repository/cache"
	"smart-summary-be/internal/repository/implementation"
	"smart-summary-be/internal/repository/memory"
	"smart-summary-be/internal/service"
	"smart-summary-be/pkg/identity"
	"smart-summary-be/pkg/trends"

	pktNats "smart-summary-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// profileSaveTopic is the in-process queue carrying deferred profile
// writes to the identity provider.
const profileSaveTopic = "profile.save"

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	ReportController  controller.IReportController
	ExportController  controller.IExportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.App.SessionTTLMinutes) * time.Minute)
	reportRepo := implementation.NewReportRepository(db)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	suggestionCache := cache.NewSuggestionCache(rdb, 24*time.Hour)

	// Identity provider management API
	var identityClient *identity.Client
	if cfg.Identity.ClientID != "" {
		identityClient = identity.NewClient(
			cfg.Identity.BaseURL,
			cfg.Identity.TokenURL,
			cfg.Identity.ClientID,
			cfg.Identity.ClientSecret,
		)
	} else {
		log.Printf("[WARN] Identity client not configured, profile persistence disabled")
	}

	// Analysis backend
	trendsClient := trends.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.RequestTimeout)*time.Second,
	)

	// 3. Services
	publisherService := service.NewPublisherService(profileSaveTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, profileSaveTopic, identityClient)

	sessionService := service.NewSessionService(sessionRepo, identityClient, sysLogger)
	profileService := service.NewProfileService(sessionRepo, publisherService, sysLogger)
	indicatorService := service.NewIndicatorService(sessionRepo, sysLogger)
	intakeService := service.NewIntakeService(sessionRepo, sysLogger)
	reportService := service.NewReportService(
		sessionRepo,
		reportRepo,
		intakeService,
		trendsClient,
		suggestionCache,
		natsPub,
		sysLogger,
	)
	exportService := service.NewExportService(sessionRepo, emailService, sysLogger)

	// 3.5 Report Notifier (event driven, isolated log file)
	if natsSub != nil {
		notifierLogger := logger.NewIsolatedLogger("logs/notifier.log")
		notifier := service.NewNotifierService(natsSub, emailService, identityClient, notifierLogger)
		notifier.Start()
	}

	// 4. Controllers
	sessionController := controller.NewSessionController(
		sessionService,
		profileService,
		indicatorService,
		intakeService,
	)
	reportController := controller.NewReportController(reportService)
	exportController := controller.NewExportController(exportService)

	return &Container{
		SessionController: sessionController,
		ReportController:  reportController,
		ExportController:  exportController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
