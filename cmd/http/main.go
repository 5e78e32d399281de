package main

import (
	"context"
	"hra-service/internal/app/config"
	"hra-service/internal/app/delivery/http/middlewares"
	"hra-service/internal/app/delivery/http/routers"
	"hra-service/internal/app/drivers/database"
	"hra-service/internal/app/drivers/logger"
	"hra-service/internal/app/drivers/messaging"
	"hra-service/internal/app/drivers/storage"
	"hra-service/internal/app/services/core/assessments"
	"hra-service/internal/app/services/core/reports"
	"hra-service/internal/app/services/core/resume"
	"hra-service/internal/app/services/hra_backend/records"
	"hra-service/internal/app/services/hra_backend/sections"
	"hra-service/internal/app/services/shared/locker"
	"hra-service/internal/app/services/shared/notifyqueue"
	"hra-service/internal/app/services/shared/ratelimiter"
	redisRepo "hra-service/internal/app/services/shared/redis"
	minioStorage "hra-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap, minioClient); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error while closing app dependencies: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) error {
	// Shared services
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	objectStorage := minioStorage.NewMinioStorage(minioClient)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	completionPublisher, err := notifyqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Upstream persistence clients
	baseUrl := bootstrap.InternalConfig.HRABackend.BaseUrl
	recordClient := records.NewAssessmentRecordClient(baseUrl)
	commitClient := sections.NewSectionCommitClient(baseUrl)
	fetchClient := sections.NewSectionFetchClient(baseUrl)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, resourceLimiter)

	// Assessment sequencing
	assessmentUsecase := assessments.NewAssessmentUsecase(
		recordClient,
		commitClient,
		redisRepository,
		lockerService,
		completionPublisher,
		bootstrap.Logger,
	)
	resumeUsecase := resume.NewResumeUsecase(
		recordClient,
		fetchClient,
		redisRepository,
		bootstrap.Logger,
	)
	assessmentController := assessments.NewAssessmentController(bootstrap.Logger, assessmentUsecase, resumeUsecase)

	// Reports: the resume resolver doubles as the draft rebuild path when
	// the cache has expired.
	reportUsecase := reports.NewReportUsecase(
		resumeUsecase,
		redisRepository,
		reports.NewHTMLRenderer(),
		objectStorage,
		bootstrap.InternalConfig.Minio.ReportBucketName,
		bootstrap.Logger,
	)
	reportController := reports.NewReportController(bootstrap.Logger, reportUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		assessmentController,
		reportController,
	)
	return nil
}
