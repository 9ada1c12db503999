package config

import "time"

type Server struct {
	HTTPListen      string        `env:"HTTP_LISTEN" envDefault:":8080"`
	ProbeListen     string        `env:"PROBE_LISTEN" envDefault:":8091"`
	MetricsListen   string        `env:"METRICS_LISTEN" envDefault:":9090"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
