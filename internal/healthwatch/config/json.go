package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkravtsov/authwatch/internal/flagx"
	"github.com/dkravtsov/authwatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	ProbeInterval      timex.Duration `json:"probe_interval"`
	ProbeTimeout       timex.Duration `json:"probe_timeout"`
	ReportCapacity     int            `json:"report_capacity"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c or -config flags. Missing flag means nothing to load; read or
// unmarshal errors panic.
func parseJson(cfg *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.ProbeInterval.Duration > 0 {
		cfg.ProbeInterval = time.Duration(jc.ProbeInterval.Duration)
	}
	if jc.ProbeTimeout.Duration > 0 {
		cfg.ProbeTimeout = time.Duration(jc.ProbeTimeout.Duration)
	}
	if jc.ReportCapacity > 0 {
		cfg.ReportCapacity = jc.ReportCapacity
	}
}
