package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBPath          string
	RedisAddr       string
	VaultAccount    string
	StartingBalance int64
	GameTimeout     time.Duration
	MarketInterval  time.Duration
	SweepInterval   time.Duration
	RewardAmount    int64
	RewardCooldown  time.Duration

	InterestRate     float64
	WealthTaxRate    float64
	EconomicInterval time.Duration
	HeistCooldown    time.Duration
}

func Load() *Config {
	cfg := &Config{
		DBPath:          getEnv("DB_PATH", "db.sqlite"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		VaultAccount:    getEnv("VAULT_ACCOUNT", "vault"),
		StartingBalance: getEnvInt("STARTING_BALANCE", 500),
		GameTimeout:     getEnvDuration("GAME_TIMEOUT", 2*time.Minute),
		MarketInterval:  getEnvDuration("MARKET_INTERVAL", 5*time.Minute),
		SweepInterval:   getEnvDuration("SWEEP_INTERVAL", 5*time.Second),
		RewardAmount:    getEnvInt("REWARD_AMOUNT", 50),
		RewardCooldown:  getEnvDuration("REWARD_COOLDOWN", time.Hour),

		InterestRate:     getEnvFloat("INTEREST_RATE", 0.02),
		WealthTaxRate:    getEnvFloat("WEALTH_TAX_RATE", 0.01),
		EconomicInterval: getEnvDuration("ECONOMIC_INTERVAL", 24*time.Hour),
		HeistCooldown:    getEnvDuration("HEIST_COOLDOWN", 5*time.Minute),
	}

	if os.Getenv("API_KEY") == "" || os.Getenv("ADMIN_TOKEN") == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
