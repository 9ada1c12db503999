package config

import "time"

const (
	DedupDriverMemory = "memory"
	DedupDriverRedis  = "redis"
)

type Dedup struct {
	Driver string `env:"DEDUP_DRIVER" envDefault:"memory" validate:"oneof=memory redis"`
	// TTL bounds how long a (app, discount) pair stays suppressed with the
	// redis driver. The memory driver keeps pairs for the process lifetime.
	TTL time.Duration `env:"DEDUP_TTL" envDefault:"720h"`

	Redis Redis
}

type Redis struct {
	Address  string `env:"REDIS_ADDR"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD" json:"-"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
