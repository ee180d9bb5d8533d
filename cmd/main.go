package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/rural_health_triage/docs"
	"github.com/shenikar/rural_health_triage/internal/cache"
	"github.com/shenikar/rural_health_triage/internal/config"
	"github.com/shenikar/rural_health_triage/internal/geo"
	v1 "github.com/shenikar/rural_health_triage/internal/handler/http/v1"
	"github.com/shenikar/rural_health_triage/internal/reply"
	"github.com/shenikar/rural_health_triage/internal/repository"
	"github.com/shenikar/rural_health_triage/internal/service"
	"github.com/shenikar/rural_health_triage/internal/triage"
	"github.com/shenikar/rural_health_triage/internal/vocabulary"
	"github.com/shenikar/rural_health_triage/internal/webhook"
	"github.com/shenikar/rural_health_triage/pkg/logger"
	"github.com/shenikar/rural_health_triage/pkg/postgres"
	redisclient "github.com/shenikar/rural_health_triage/pkg/redis"
)

// @title Rural Health Triage API
// @version 1.0
// @description Inbound patient email triage: symptom and location extraction, nearby facilities, auto-reply and responder dashboard.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.basic BasicAuth
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newGeocoder собирает цепочку геокодирования по GEOCODER_PROVIDER и оборачивает её кэшем
func newGeocoder(cfg *config.Config, limiter *geo.Limiter, c cache.Cache, log *logrus.Logger) (geo.Geocoder, error) {
	nominatim := geo.NewNominatimGeocoder(cfg.NominatimURL, cfg.NominatimUserAgent, cfg.OutboundTimeout, limiter)

	var google geo.Geocoder
	if cfg.GeocoderProvider != "nominatim" {
		client, err := geo.NewGoogleClient(cfg.GoogleMapsAPIKey, "")
		if err != nil {
			return nil, err
		}
		google = geo.NewGoogleGeocoder(client, cfg.OutboundTimeout)
	}

	var g geo.Geocoder
	switch cfg.GeocoderProvider {
	case "google":
		g = google
	case "chain":
		g = geo.NewChainGeocoder(nominatim, google)
	default:
		g = nominatim
	}
	return geo.NewCachedGeocoder(g, c, cfg.GeocodeCacheTTL, log), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Словарь симптомов, критических симптомов и советов
	vocab, err := vocabulary.Load(cfg.VocabularyFile)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}

	// Кэши: геокодирование в памяти и Redis, обращения только в Redis (общий для всех инстансов)
	redisCache := cache.NewRedisCache(redisClient)
	geocodeCache := cache.NewLayeredCache(cfg.GeocodeCacheTTL, cache.NewMemoryCache(cfg.GeocodeCacheTTL, 10*time.Minute), redisCache)

	// Геокодирование и поиск учреждений
	limiter := geo.NewLimiter(cfg.NominatimRPS, 1)
	geocoder, err := newGeocoder(cfg, limiter, geocodeCache, log)
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}
	locator := geo.NewLocator(
		geocoder,
		geo.NewOverpassClient(cfg.OverpassURL, cfg.OutboundTimeout, limiter),
		geo.LocatorConfig{
			RadiusMeters: cfg.FacilityRadius,
			MaxResults:   cfg.FacilityMaxResults,
			Concurrency:  cfg.FacilityConcurrency,
		},
		log,
	)

	// Разбор писем
	parser := triage.NewParser(vocab, triage.NewProseAnalyzer(log), log)
	classifier := triage.NewCriticalClassifier(vocab.CriticalSymptoms)

	// Автоответ
	if cfg.PostmarkServerToken == "" {
		log.Warn("POSTMARK_SERVER_API_TOKEN is not set, auto-replies will fail")
	}
	sender := reply.NewPostmarkSender(reply.PostmarkConfig{
		BaseURL:       cfg.PostmarkURL,
		ServerToken:   cfg.PostmarkServerToken,
		From:          cfg.PostmarkFromEmail,
		MessageStream: cfg.PostmarkMessageStream,
		Timeout:       cfg.OutboundTimeout,
	})
	replier := reply.NewAutoReplier(reply.NewComposer(vocab, locator, log), sender, log)

	// Инициализация издателя и воркера оповещений
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Инициализация репозиториев
	reportRepo := repository.NewReportRepository(dbpool, redisCache, log)
	responderRepo := repository.NewResponderRepository(dbpool)
	auditRepo := repository.NewAuditRepository(dbpool)

	// Инициализация сервисов
	reportService := service.NewReportService(service.ReportDeps{
		Reports:    reportRepo,
		Responders: responderRepo,
		Audit:      auditRepo,
		Parser:     parser,
		Classifier: classifier,
		Replier:    replier,
		Publisher:  alertPublisher,
		Logger:     log,
	})
	responderService := service.NewResponderService(responderRepo, log)
	triageService := service.NewTriageService(parser, classifier, locator, replier, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, responderService, triageService, log, cfg)
	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, dashboard routes will reject every request")
	}

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(v1.CORSMiddleware(cfg.CORSOrigins))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер оповещений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
