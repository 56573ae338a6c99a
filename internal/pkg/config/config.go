package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultRetentionPeriod    = 30 * 24 * time.Hour
	defaultHighScoreThreshold = 80
)

type (
	Tasks struct {
		MatchExpiryInterval   time.Duration
		ShipmentSweepInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
		EventTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck   string
		Brokers           string
		ListingTopic      string
		NotificationTopic string
		ConsumerGroup     string
		Sarama            Sarama
		Handlers          KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ListingChanged ListingChanged
	}

	ListingChanged struct {
		ProcessTimeout time.Duration
	}

	TierBreakpoints struct {
		SmallKg  float64
		MediumKg float64
		HeavyKg  float64
		SmallM3  float64
		MediumM3 float64
		HeavyM3  float64
	}

	Matching struct {
		WeightScheme        string
		CapacityPolicy      string
		StrictRouteMatching bool
		// nil - порог по умолчанию для схемы весов
		AcceptanceThreshold *int
		TierBreakpoints     TierBreakpoints
		RetentionPeriod     time.Duration
		HighScoreThreshold  int
		ScoreWorkers        int
		SweepBatchSize      int
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Matching Matching
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase только секция базы, для миграций.
func LoadDatabase() (*Database, error) {
	db := loadDatabase()
	if err := validateDatabase(db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return db, nil
}

func loadFromEnv() (*Config, error) {
	expiryInterval, err := osGetEnvDuration("BACKGROUND_MATCH_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sweepInterval, err := osGetEnvDuration("BACKGROUND_SHIPMENT_SWEEP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	listingChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_LISTING_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisEventTTL, err := osGetEnvDuration("REDIS_EVENT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	matching, err := loadMatching()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			MatchExpiryInterval:   expiryInterval,
			ShipmentSweepInterval: sweepInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: *loadDatabase(),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			EventTTL: redisEventTTL,
		},
		Kafka: Kafka{
			Brokers:           os.Getenv("KAFKA_BROKERS"),
			ListingTopic:      os.Getenv("KAFKA_LISTING_TOPIC"),
			NotificationTopic: os.Getenv("KAFKA_NOTIFICATION_TOPIC"),
			ConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:   os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ListingChanged: ListingChanged{
					ProcessTimeout: listingChangedTimeout,
				},
			},
		},
		Matching: matching,
	}, nil
}

func loadDatabase() *Database {
	return &Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadMatching() (Matching, error) {
	strict, err := osGetBoolDefault("MATCHING_STRICT_ROUTE", true)
	if err != nil {
		return Matching{}, err
	}

	threshold, err := osGetOptionalInt("MATCHING_ACCEPTANCE_THRESHOLD")
	if err != nil {
		return Matching{}, err
	}

	retention, err := osGetEnvDuration("MATCHING_RETENTION_PERIOD")
	if err != nil {
		return Matching{}, err
	}
	if retention == 0 {
		retention = defaultRetentionPeriod
	}

	highScore, err := osGetInt("MATCHING_HIGH_SCORE_THRESHOLD")
	if err != nil {
		return Matching{}, err
	}
	if highScore == 0 {
		highScore = defaultHighScoreThreshold
	}

	workers, err := osGetInt("MATCHING_SCORE_WORKERS")
	if err != nil {
		return Matching{}, err
	}

	batchSize, err := osGetInt("MATCHING_SWEEP_BATCH_SIZE")
	if err != nil {
		return Matching{}, err
	}

	breakpoints, err := loadTierBreakpoints()
	if err != nil {
		return Matching{}, err
	}

	scheme := os.Getenv("MATCHING_WEIGHT_SCHEME")
	if scheme == "" {
		scheme = "two_factor"
	}
	policy := os.Getenv("MATCHING_CAPACITY_POLICY")
	if policy == "" {
		policy = "carrier_class"
	}

	return Matching{
		WeightScheme:        scheme,
		CapacityPolicy:      policy,
		StrictRouteMatching: strict,
		AcceptanceThreshold: threshold,
		TierBreakpoints:     breakpoints,
		RetentionPeriod:     retention,
		HighScoreThreshold:  highScore,
		ScoreWorkers:        workers,
		SweepBatchSize:      batchSize,
	}, nil
}

// все нули - значит границы по умолчанию
func loadTierBreakpoints() (TierBreakpoints, error) {
	var tb TierBreakpoints
	for _, item := range []struct {
		env string
		dst *float64
	}{
		{"MATCHING_TIER_SMALL_KG", &tb.SmallKg},
		{"MATCHING_TIER_MEDIUM_KG", &tb.MediumKg},
		{"MATCHING_TIER_HEAVY_KG", &tb.HeavyKg},
		{"MATCHING_TIER_SMALL_M3", &tb.SmallM3},
		{"MATCHING_TIER_MEDIUM_M3", &tb.MediumM3},
		{"MATCHING_TIER_HEAVY_M3", &tb.HeavyM3},
	} {
		val, err := osGetFloat(item.env)
		if err != nil {
			return TierBreakpoints{}, err
		}
		*item.dst = val
	}
	return tb, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.MatchExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_MATCH_EXPIRY_INTERVAL is required")
	}
	if cfg.Tasks.ShipmentSweepInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SHIPMENT_SWEEP_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ListingTopic == "" {
		return errors.New("KAFKA_LISTING_TOPIC is required")
	}
	if cfg.Kafka.NotificationTopic == "" {
		return errors.New("KAFKA_NOTIFICATION_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.ListingChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_LISTING_CHANGED_PROCESS_TIMEOUT is required")
	}

	if t := cfg.Matching.AcceptanceThreshold; t != nil && (*t < 0 || *t > 100) {
		return errors.New("MATCHING_ACCEPTANCE_THRESHOLD must be within [0, 100]")
	}
	if cfg.Matching.HighScoreThreshold < 0 || cfg.Matching.HighScoreThreshold > 100 {
		return errors.New("MATCHING_HIGH_SCORE_THRESHOLD must be within [0, 100]")
	}
	if cfg.Matching.ScoreWorkers < 0 {
		return errors.New("MATCHING_SCORE_WORKERS must not be negative")
	}
	if cfg.Matching.SweepBatchSize < 0 {
		return errors.New("MATCHING_SWEEP_BATCH_SIZE must not be negative")
	}

	return nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetOptionalInt nil, если переменная не задана
func osGetOptionalInt(s string) (*int, error) {
	if os.Getenv(s) == "" {
		return nil, nil
	}

	res, err := osGetInt(s)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	return osGetBoolDefault(s, false)
}

func osGetBoolDefault(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
