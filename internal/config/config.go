package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Bot     Bot
	Steam   Steam
	Scan    Scan
	Storage Storage
	Dedup   Dedup
	Server  Server
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"skidki-steam-bot"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return Config{}, fmt.Errorf("validator.Struct: %w", err)
	}

	if config.Storage.Driver == StorageDriverPostgres && config.Storage.Postgres.DSN == "" {
		return Config{}, fmt.Errorf("PG_DSN is required when STORAGE_DRIVER=%s", StorageDriverPostgres)
	}

	if config.Dedup.Driver == DedupDriverRedis && config.Dedup.Redis.Address == "" {
		return Config{}, fmt.Errorf("REDIS_ADDR is required when DEDUP_DRIVER=%s", DedupDriverRedis)
	}

	return config, nil
}
