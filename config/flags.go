package config

import (
	"flag"
	"os"

	"github.com/smarttech/storefront/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string    SQLite DSN of the channel store
//	-t float     descriptor match threshold
//
// Args are filtered through flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "path (DSN) of the local store database")
	threshold := fs.Float64("t", cfg.MatchThreshold, "maximum descriptor distance accepted as a match")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MatchThreshold = *threshold
}
