package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkravtsov/authwatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the authentication server
//	-i int      probe interval in seconds
//	-t int      per-probe timeout in seconds
//	-n int      reporter buffer capacity
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the authentication server")
	probeInterval := fs.Int("i", int(cfg.ProbeInterval.Seconds()), "probe interval (in seconds)")
	probeTimeout := fs.Int("t", int(cfg.ProbeTimeout.Seconds()), "per-probe timeout (in seconds)")
	fs.IntVar(&cfg.ReportCapacity, "n", cfg.ReportCapacity, "reporter buffer capacity")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ProbeInterval = time.Duration(*probeInterval) * time.Second
	cfg.ProbeTimeout = time.Duration(*probeTimeout) * time.Second
}
