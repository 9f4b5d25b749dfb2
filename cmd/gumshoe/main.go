package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/appengine-ltd/gumshoe/internal/cli"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A local .env can override defaults; absence is fine.
	_ = godotenv.Load()

	var (
		showVersion bool
		seed        int64
		suspects    int
		debug       bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", envInt64("GUMSHOE_SEED", 0), "mystery seed (0 = random)")
	flag.IntVar(&suspects, "suspects", envInt("GUMSHOE_SUSPECTS", 0), "candidate count drawn from the character pool (victim included)")
	flag.BoolVar(&debug, "debug", os.Getenv("GUMSHOE_DEBUG") == "1", "enable the debug command revealing the solution")
	flag.Parse()

	if showVersion {
		fmt.Printf("Gumshoe %s (%s) %s\n", version, commit, date)
		return
	}

	app, err := cli.NewApp(cli.AppConfig{
		Seed:     seed,
		Suspects: suspects,
		Debug:    debug,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envInt64(key string, fallback int64) int64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return v
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
