package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"task-match-service.com/task-match-service/internal/scoring"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RedisAddr              string
	RedisPoolGenKey        string
	RedisRankKeyPrefix     string
	RankCacheTTLSeconds    int
	RateLimit              int
	ShutdownTimeoutSeconds int

	JWTSecret       string
	TokenTTLMinutes int

	RankWeights             scoring.Weights
	RankNormalization       scoring.Normalization
	FreshnessHalfLifeHours  int
	AllowDeactivateApproved bool
	DefaultRecommendLimit   int
	MaxRecommendLimit       int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisPoolGenKey:        getEnv("REDIS_POOL_GENERATION_KEY", "task_pool_generation"),
		RedisRankKeyPrefix:     getEnv("REDIS_RANK_KEY_PREFIX", "task_rank"),
		RankCacheTTLSeconds:    getEnvAsInt("RANK_CACHE_TTL_SECONDS", 60),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLMinutes:        getEnvAsInt("TOKEN_TTL_MINUTES", 60),
		RankWeights: scoring.Weights{
			Characteristic: getEnvAsFloat("RANK_WEIGHT_CHARACTERISTIC", 0.25),
			Preference:     getEnvAsFloat("RANK_WEIGHT_PREFERENCE", 0.25),
			History:        getEnvAsFloat("RANK_WEIGHT_HISTORY", 0.25),
			Behavior:       getEnvAsFloat("RANK_WEIGHT_BEHAVIOR", 0.25),
		},
		RankNormalization:       scoring.Normalization(getEnv("RANK_NORMALIZATION", string(scoring.NormalizationMinMax))),
		FreshnessHalfLifeHours:  getEnvAsInt("FRESHNESS_HALF_LIFE_HOURS", 72),
		AllowDeactivateApproved: getEnvAsBool("ALLOW_DEACTIVATE_APPROVED", false),
		DefaultRecommendLimit:   getEnvAsInt("RECOMMEND_DEFAULT_LIMIT", 15),
		MaxRecommendLimit:       getEnvAsInt("RECOMMEND_MAX_LIMIT", 100),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.TokenTTLMinutes <= 0 {
		log.Fatal("TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.RankCacheTTLSeconds <= 0 {
		log.Fatal("RANK_CACHE_TTL_SECONDS must be greater than 0")
	}
	if cfg.FreshnessHalfLifeHours <= 0 {
		log.Fatal("FRESHNESS_HALF_LIFE_HOURS must be greater than 0")
	}
	if cfg.DefaultRecommendLimit <= 0 || cfg.MaxRecommendLimit < cfg.DefaultRecommendLimit {
		log.Fatal("RECOMMEND_DEFAULT_LIMIT must be positive and not exceed RECOMMEND_MAX_LIMIT")
	}
	if err := cfg.RankWeights.Validate(); err != nil {
		log.Fatalf("invalid ranking configuration: %v", err)
	}
	switch cfg.RankNormalization {
	case scoring.NormalizationMinMax, scoring.NormalizationNone:
	default:
		log.Fatalf("RANK_NORMALIZATION must be %q or %q", scoring.NormalizationMinMax, scoring.NormalizationNone)
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Fatalf("invalid float value for %s", key)
		}
		return f
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
