package app

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/scroller-tech/go-backend/internal/cfg"
	v1Http "github.com/scroller-tech/go-backend/internal/delivery/v1/http"
	"github.com/scroller-tech/go-backend/internal/infrastructure/kafka"
	"github.com/scroller-tech/go-backend/internal/repository/data"
	dataConv "github.com/scroller-tech/go-backend/internal/repository/data/converter"
	s3Repo "github.com/scroller-tech/go-backend/internal/repository/minio"
	"github.com/scroller-tech/go-backend/internal/repository/redis"
	redisConv "github.com/scroller-tech/go-backend/internal/repository/redis/converter"
	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/clients"
	"github.com/scroller-tech/go-backend/pkg/closer"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/jitter"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingRetries = 5
	redisPingBackoff = 500 * time.Millisecond
	redisPingMax     = 5 * time.Second
)

// App собирает все зависимости сервиса и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

// NewApp инициализирует клиентов, репозитории и usecase-слой.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(0)

	redisClient, err := connectRedis(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	source, err := newBlobSource(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize data source")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogRepo := data.NewCatalogRepo(source, cfg.Data.CatalogPath, dataConv.NewProductConverterImpl())
	embeddingRepo := data.NewEmbeddingRepo(source, cfg.Data.EmbeddingsPath, cfg.Data.VectorSize)
	activityRepo := redis.NewActivityRepo(redisClient, redisConv.NewActivityConverterImpl(), cfg.Redis, log)

	var producer usecase.InteractionProducer
	if cfg.Kafka != nil {
		kafkaProducer, err := kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			log.Errorf(err, "failed to initialize kafka producer")
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cl.Add(func(ctx context.Context) error {
			return kafkaProducer.Close()
		})
		producer = kafkaProducer
	} else {
		log.Infof("KAFKA_BROKERS not set, interaction analytics disabled")
	}

	// каждому usecase — собственный генератор: rand.Rand не потокобезопасен,
	// а внутренние мьютексы usecase-ов друг о друге не знают
	seed := time.Now().UnixNano()

	recUC := usecase.NewRecommendationUC(
		catalogRepo,
		embeddingRepo,
		activityRepo,
		cfg.Feed.DefaultLimit,
		cfg.Feed.RandomShare,
		rand.New(rand.NewSource(seed)),
		log,
	)
	trackUC := usecase.NewTrackUC(activityRepo, producer, log)
	catalogUC := usecase.NewCatalogUC(catalogRepo, cfg.Feed.DefaultLimit, rand.New(rand.NewSource(seed+1)), log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(recUC, trackUC, catalogUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: httpSrv,
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource shutdown error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// connectRedis проверяет доступность Redis с экспоненциальным backoff-ом,
// чтобы пережить старт контейнера раньше зависимости.
func connectRedis(cfg *config.Config, log logger.Logger) (*clients.RedisClient, error) {
	redisClient := clients.NewRedisClient(cfg.Redis)

	var lastErr error
	for attempt := 0; attempt < redisPingRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		lastErr = redisClient.Ping(ctx)
		cancel()

		if lastErr == nil {
			return redisClient, nil
		}

		delay := jitter.ExponentialBackoff(redisPingBackoff, redisPingMax, attempt, jitter.DefaultJitter)
		log.Warnf("redis ping failed (attempt %d/%d), retrying in %s: %v",
			attempt+1, redisPingRetries, delay, lastErr)
		time.Sleep(delay)
	}

	return nil, lastErr
}

// newBlobSource выбирает источник данных каталога по конфигурации.
func newBlobSource(cfg *config.Config, log logger.Logger) (data.BlobSource, error) {
	switch cfg.Data.Source {
	case config.DataSourceS3:
		minioClient, err := clients.NewMinIOClient(cfg.Minio)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := clients.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		log.Infof("using MinIO data source, bucket %s", cfg.Minio.BucketName)
		return s3Repo.NewBlobSource(minioClient, cfg.Minio), nil
	default:
		log.Infof("using file data source: %s, %s", cfg.Data.CatalogPath, cfg.Data.EmbeddingsPath)
		return data.NewFileSource(), nil
	}
}
