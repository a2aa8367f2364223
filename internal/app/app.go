package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/RoomBooker/internal/config"
	"github.com/stpnv0/RoomBooker/internal/handler"
	"github.com/stpnv0/RoomBooker/internal/lock"
	"github.com/stpnv0/RoomBooker/internal/metrics"
	"github.com/stpnv0/RoomBooker/internal/middleware"
	"github.com/stpnv0/RoomBooker/internal/repository"
	"github.com/stpnv0/RoomBooker/internal/repository/memory"
	"github.com/stpnv0/RoomBooker/internal/router"
	"github.com/stpnv0/RoomBooker/internal/scheduler"
	"github.com/stpnv0/RoomBooker/internal/service"
	"github.com/stpnv0/RoomBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "RoomBooker"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	repo       ports.ReservationRepo
	locker     ports.RoomLocker
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initLocker(); err != nil {
		return nil, fmt.Errorf("init locker: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStorage() error {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverMemory:
		a.repo = memory.NewReservationRepo()
		a.log.Warn("using in-memory storage, data will be lost on restart")
		return nil

	case config.StorageDriverPostgres:
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return fmt.Errorf("init db: %w", err)
		}
		a.repo = repository.NewReservationRepo(a.db)
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initLocker выбирает блокировку комнат: Redis, если он настроен,
// иначе блокировку внутри процесса.
func (a *App) initLocker() error {
	if !a.cfg.Redis.Enabled() {
		a.locker = lock.NewKeyedMutex()
		a.log.Info("room lock: in-process")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.locker = lock.NewRedisLocker(client, a.cfg.Redis.LockTTL, a.cfg.Redis.RetryDelay, a.log)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "room lock: redis",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.LockTTL),
	)

	return nil
}

func (a *App) initServices() {
	m := metrics.New(prometheus.DefaultRegisterer)

	availabilityService := service.NewAvailabilityService(
		a.repo,
		service.Strategy(a.cfg.Availability.Strategy),
		a.log,
	)
	reservationService := service.NewReservationService(
		a.repo,
		availabilityService,
		a.locker,
		m,
		a.log,
	)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			reservationService,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}

	var metricsHandler http.Handler
	if a.cfg.Metrics.Enabled {
		mw = append(mw, middleware.Metrics(m))
		metricsHandler = router.DefaultMetricsHandler()
	}

	h := handler.NewHandler(reservationService, availabilityService)
	r := router.InitRouter(a.cfg.Gin.Mode, h, metricsHandler, mw...)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
			logger.String("availability_strategy", a.cfg.Availability.Strategy),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
