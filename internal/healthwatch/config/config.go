// Package config handles configuration for the health-check component,
// including defaults, environment variables, JSON overlay, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the health-check service.
//
// Fields:
//   - ServerEndpointAddr: host:port of the authentication gRPC endpoint.
//   - ProbeInterval: how often a probe cycle starts.
//   - ProbeTimeout: per-probe deadline, independent of the interval.
//   - ReportCapacity: how many results the reporter retains.
type Config struct {
	ServerEndpointAddr string
	ProbeInterval      time.Duration
	ProbeTimeout       time.Duration
	ReportCapacity     int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ProbeInterval = 5 * time.Second
	c.ProbeTimeout = 2 * time.Second
	c.ReportCapacity = 256
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
