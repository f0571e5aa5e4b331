package config

import (
	"flag"
	"os"
	"time"

	"github.com/vitality-app/vitality/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path/DSN of the local session record store
//	-pg string  Postgres DSN of the credential directory
//	-k string   signing key for the durable session record
//	-l int      simulated sign-in latency in milliseconds
//	-o int      simulated sign-out latency in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-pg", "-k", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LocalStorePath, "d", cfg.LocalStorePath, "path of the local session store")
	fs.StringVar(&cfg.DirectoryDSN, "pg", cfg.DirectoryDSN, "postgres DSN of the credential directory")
	fs.StringVar(&cfg.SigningKey, "k", cfg.SigningKey, "signing key for the session record")
	signInMs := fs.Int("l", int(cfg.SignInLatency.Milliseconds()), "simulated sign-in latency (in milliseconds)")
	signOutMs := fs.Int("o", int(cfg.SignOutLatency.Milliseconds()), "simulated sign-out latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SignInLatency = time.Duration(*signInMs) * time.Millisecond
	cfg.SignOutLatency = time.Duration(*signOutMs) * time.Millisecond
}
