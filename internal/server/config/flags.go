package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":9090")
//	-w string   HTTP gateway bind address (e.g., ":8080")
//	-seed bool  load sample users on start (use -seed=false to disable)
//	-r float    rate limit, requests per second per peer (<= 0 disables)
//	-b int      rate limit burst
//	-l string   log level
//	-t int      shutdown timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c/-config file flag does not trip the parser.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-seed", "-r", "-b", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP gateway")
	fs.BoolVar(&config.SeedSampleData, "seed", config.SeedSampleData, "load sample users on start")
	fs.Float64Var(&config.RateLimitRPS, "r", config.RateLimitRPS, "requests per second per peer (<= 0 disables)")
	fs.IntVar(&config.RateLimitBurst, "b", config.RateLimitBurst, "rate limit burst")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given; its default is the truncated earlier value.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
