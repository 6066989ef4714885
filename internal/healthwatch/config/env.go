package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO for environment parsing. Unset variables leave the
// corresponding Config fields untouched.
type envConfig struct {
	ServerEndpointAddr string        `env:"AUTHWATCH_SERVER_ADDR"`
	ProbeInterval      time.Duration `env:"AUTHWATCH_PROBE_INTERVAL"`
	ProbeTimeout       time.Duration `env:"AUTHWATCH_PROBE_TIMEOUT"`
	ReportCapacity     int           `env:"AUTHWATCH_REPORT_CAPACITY"`
}

func parseEnv(cfg *Config) {

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = ec.ServerEndpointAddr
	}
	if ec.ProbeInterval > 0 {
		cfg.ProbeInterval = ec.ProbeInterval
	}
	if ec.ProbeTimeout > 0 {
		cfg.ProbeTimeout = ec.ProbeTimeout
	}
	if ec.ReportCapacity > 0 {
		cfg.ReportCapacity = ec.ReportCapacity
	}
}
