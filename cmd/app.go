package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	hoursCache "github.com/m04kA/SMC-SalonBookingService/internal/infra/cache/businesshours"
	appointmentRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/salon"
	scheduleRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/schedule"
	businessHoursService "github.com/m04kA/SMC-SalonBookingService/internal/service/businesshours"
	constraintsService "github.com/m04kA/SMC-SalonBookingService/internal/service/constraints"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/txmanager"
)

const redisPingTimeout = 3 * time.Second

// app общие зависимости команд: конфиг, логгер, БД, Redis и слой данных
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics // nil - метрики выключены

	db            *sql.DB
	wrappedDB     *dbmetrics.DB
	redis         *redis.Client // nil - кэш выключен
	stopMetricsCh chan struct{}

	txManager       *txmanager.TransactionManager
	appointmentRepo *appointmentRepo.Repository
	catalogRepo     *catalogRepo.Repository
	salonRepo       *salonRepo.Repository
	scheduleRepo    *scheduleRepo.Repository

	businessHours *businessHoursService.Service
	constraints   *constraintsService.Service
}

// newApp загружает конфигурацию и поднимает подключения.
// withMetrics=false для CLI команд: метрики не регистрируются
func newApp(configPath string, withMetrics bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{
		cfg:           cfg,
		log:           log,
		stopMetricsCh: make(chan struct{}),
	}

	log.Info("Configuration loaded from %s", configPath)

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		a.close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if a.metrics != nil {
		a.wrappedDB = dbmetrics.WrapWithDefault(db, a.metrics, cfg.Metrics.ServiceName, a.stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		a.wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории
	a.txManager = txmanager.NewTransactionManager(a.wrappedDB)
	a.appointmentRepo = appointmentRepo.NewRepository(a.wrappedDB)
	a.catalogRepo = catalogRepo.NewRepository(a.wrappedDB)
	a.salonRepo = salonRepo.NewRepository(a.wrappedDB)
	a.scheduleRepo = scheduleRepo.NewRepository(a.wrappedDB)

	// Кэш часов работы (недоступный Redis не мешает старту)
	var cache businessHoursService.Cache
	if cfg.Redis.Enabled {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := a.redis.Ping(ctx).Err()
		cancel()

		if err != nil {
			log.Warn("Redis unavailable at %s, business hours cache disabled: %v", cfg.Redis.Addr, err)
			_ = a.redis.Close()
			a.redis = nil
		} else {
			cache = hoursCache.NewCache(a.redis, cfg.Redis.TTL())
			log.Info("Business hours cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
	}

	// Сервисы, общие для HTTP и CLI
	a.businessHours = businessHoursService.NewService(a.salonRepo, a.catalogRepo, cache, a.txManager, log)
	a.constraints = constraintsService.NewService(
		a.salonRepo,
		a.businessHours,
		a.scheduleRepo,
		a.appointmentRepo,
		log,
	)

	return a, nil
}

// close останавливает сбор метрик и закрывает подключения
func (a *app) close() {
	close(a.stopMetricsCh)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("Failed to close redis client: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("Failed to close database: %v", err)
		}
	}

	_ = a.log.Close()
}
