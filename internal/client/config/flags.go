package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/findash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend API base URL
//	-m string   assistant model id
//	-d string   data directory
//	-l string   log level (debug, info, warn, error)
//	-o string   location or deep link to open, e.g. "#/cuentas" or "#token=..."
//
// Only these flags are considered; see flagx.FilterArgs.
func parseFlags(cfg *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend API base URL")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "assistant model id")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.StartFragment, "o", cfg.StartFragment, "location or deep link to open")

	return fs.Parse(args)
}
