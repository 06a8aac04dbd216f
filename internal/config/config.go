package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisURL    string
	RabbitMQURL string

	RPCURL          string
	ChainID         int64
	ContractAddress string
	TokenAddress    string
	PrivateKeys     []string
	CallTimeout     time.Duration

	JWTSecret  string
	SessionTTL time.Duration

	BadgeCount    uint64
	TokenDecimals int32

	LeaderboardSource string
	TopUsersLimit     uint64
	SnapshotTTL       time.Duration
	FetchConcurrency  int

	IndexerEnabled    bool
	IndexerInterval   time.Duration
	IndexerStartBlock uint64
	IndexerBatchSize  uint64

	LogLevel  string
	LogFormat string
}

// Load reads the optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "vitaverse"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisURL:    os.Getenv("REDIS_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		RPCURL:          getEnv("RPC_URL", "http://localhost:8545"),
		ContractAddress: os.Getenv("VITAVERSE_CONTRACT_ADDRESS"),
		TokenAddress:    os.Getenv("YODA_TOKEN_ADDRESS"),
		PrivateKeys:     splitList(os.Getenv("WALLET_PRIVATE_KEYS")),

		JWTSecret: os.Getenv("JWT_SECRET_KEY"),

		LeaderboardSource: getEnv("LEADERBOARD_SOURCE", "active"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.ChainID, err = getInt64("CHAIN_ID", 11155111); err != nil {
		return nil, err
	}
	if cfg.CallTimeout, err = getDuration("RPC_CALL_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	badgeCount, err := getInt64("BADGE_COUNT", 3)
	if err != nil {
		return nil, err
	}
	cfg.BadgeCount = uint64(badgeCount)
	decimals, err := getInt64("TOKEN_DECIMALS", 18)
	if err != nil {
		return nil, err
	}
	cfg.TokenDecimals = int32(decimals)
	topLimit, err := getInt64("TOP_USERS_LIMIT", 50)
	if err != nil {
		return nil, err
	}
	cfg.TopUsersLimit = uint64(topLimit)
	if cfg.SnapshotTTL, err = getDuration("SNAPSHOT_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	concurrency, err := getInt64("FETCH_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}
	cfg.FetchConcurrency = int(concurrency)

	cfg.IndexerEnabled = getEnv("INDEXER_ENABLED", "true") == "true"
	if cfg.IndexerInterval, err = getDuration("INDEXER_INTERVAL", 15*time.Second); err != nil {
		return nil, err
	}
	startBlock, err := getInt64("INDEXER_START_BLOCK", 0)
	if err != nil {
		return nil, err
	}
	cfg.IndexerStartBlock = uint64(startBlock)
	batch, err := getInt64("INDEXER_BATCH_SIZE", 2000)
	if err != nil {
		return nil, err
	}
	cfg.IndexerBatchSize = uint64(batch)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.LeaderboardSource {
	case "active", "top":
	default:
		return fmt.Errorf("LEADERBOARD_SOURCE must be active or top, got %q", c.LeaderboardSource)
	}
	if c.BadgeCount == 0 {
		return fmt.Errorf("BADGE_COUNT must be > 0")
	}
	if c.TokenDecimals < 0 || c.TokenDecimals > 36 {
		return fmt.Errorf("TOKEN_DECIMALS must be between 0 and 36")
	}
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = 1
	}
	if c.IndexerBatchSize == 0 {
		c.IndexerBatchSize = 2000
	}
	if c.JWTSecret == "" {
		logrus.Warn("JWT_SECRET_KEY is not set, session tokens cannot be issued")
	}
	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=vitaverse",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be >= 0", key)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
