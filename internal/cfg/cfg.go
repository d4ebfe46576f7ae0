package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

const (
	// DataSourceFile — данные читаются с локального диска
	DataSourceFile = "file"
	// DataSourceS3 — данные читаются из MinIO
	DataSourceS3 = "s3"
)

type Config struct {
	Http  *HTTPConfig
	Redis *RedisCfg
	Minio *MinIOCfg
	Kafka *KafkaCfg
	Data  *DataCfg
	Feed  *FeedCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	ActivityTTL time.Duration
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название конкретного бакета в Minio
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
}

type KafkaCfg struct {
	Topic       string
	Brokers     []string
	NetworkMode string
}

// DataCfg описывает источники каталога и таблицы эмбеддингов.
type DataCfg struct {
	Source         string // file | s3
	CatalogPath    string // путь к JSON-каталогу (или ключ объекта в бакете)
	EmbeddingsPath string // путь к packed-файлу векторов (или ключ объекта)
	VectorSize     int    // размерность эмбеддинга
}

// FeedCfg описывает параметры ленты рекомендаций.
type FeedCfg struct {
	DefaultLimit int     // размер страницы по умолчанию
	RandomShare  float64 // доля exploration-потока в странице
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	// .env опционален: в контейнере конфигурация приходит из окружения
	if err := godotenv.Load(); err != nil {
		log.Infof("no .env file loaded: %v", err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := loadDataCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var minio *MinIOCfg
	if data.Source == DataSourceS3 {
		minio, err = loadMinIOCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	feed, err := loadFeedCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:  http,
		Redis: redis,
		Minio: minio,
		Kafka: loadKafkaCfg(),
		Data:  data,
		Feed:  feed,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultActivityTTL  = 365 * 24 * time.Hour
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	activityTTL, err := parseDurationEnv("ACTIVITY_TTL", defaultActivityTTL)
	if err != nil {
		log.Errorf(err, "invalid ACTIVITY_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		ActivityTTL: activityTTL,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	bucket := getEnv("BUCKET_NAME")
	if bucket == "" {
		return nil, fmt.Errorf("BUCKET_NAME environment variable is required for s3 data source")
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

// loadKafkaCfg возвращает nil, если брокеры не заданы: поток аналитики опционален.
func loadKafkaCfg() *KafkaCfg {
	const (
		defaultTopic       = "user-interactions"
		defaultNetworkMode = "tcp"
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil
	}

	return &KafkaCfg{
		Brokers:     strings.Split(brokerStr, ","),
		Topic:       getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		NetworkMode: getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadDataCfg(log logger.Logger) (*DataCfg, error) {
	const (
		defaultSource         = DataSourceFile
		defaultCatalogPath    = "data/combined_processed.json"
		defaultEmbeddingsPath = "data/embeddings.bin"
		defaultVectorSize     = 1024
	)

	source := getEnvOrDefault("DATA_SOURCE", defaultSource)
	if source != DataSourceFile && source != DataSourceS3 {
		err := fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourceFile, DataSourceS3, source)
		log.Errorf(err, "invalid DATA_SOURCE")
		return nil, err
	}

	vectorSize, err := parseIntEnv("VECTOR_SIZE", defaultVectorSize)
	if err != nil {
		log.Errorf(err, "invalid VECTOR_SIZE")
		return nil, err
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("VECTOR_SIZE must be positive, got %d", vectorSize)
	}

	return &DataCfg{
		Source:         source,
		CatalogPath:    getEnvOrDefault("CATALOG_PATH", defaultCatalogPath),
		EmbeddingsPath: getEnvOrDefault("EMBEDDINGS_PATH", defaultEmbeddingsPath),
		VectorSize:     vectorSize,
	}, nil
}

func loadFeedCfg() (*FeedCfg, error) {
	const (
		defaultLimit       = 6
		defaultRandomShare = 0.4
	)

	limit, err := parseIntEnv("FEED_LIMIT", defaultLimit)
	if err != nil {
		return nil, e.Wrap("FEED_LIMIT", err)
	}
	if limit <= 0 {
		return nil, e.Wrap("FEED_LIMIT", e.ErrIncorrectEnvVariable)
	}

	shareStr := getEnvOrDefault("RANDOM_SHARE", strconv.FormatFloat(defaultRandomShare, 'f', -1, 64))
	share, err := strconv.ParseFloat(shareStr, 64)
	if err != nil || share < 0 || share >= 1 {
		return nil, e.Wrap("RANDOM_SHARE", e.ErrIncorrectEnvVariable)
	}

	return &FeedCfg{
		DefaultLimit: limit,
		RandomShare:  share,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
