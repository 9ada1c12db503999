package config

import "time"

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"file" validate:"oneof=file postgres"`
	// Path is the watchlist document location for the file driver.
	Path string `env:"STORAGE_PATH" envDefault:"watchlist.json"`
	// MigrateTo names the subscriber that adopts entries found under the
	// legacy single-user document format.
	MigrateTo string `env:"STORAGE_MIGRATE_TO"`

	Postgres Postgres
}

type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
}
