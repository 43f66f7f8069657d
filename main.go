// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/btva/ballots"
	"github.com/danielhkuo/btva/cliparse"
	"github.com/danielhkuo/btva/db"
	"github.com/danielhkuo/btva/logging"
	"github.com/danielhkuo/btva/middleware"
	"github.com/danielhkuo/btva/report"
	"github.com/danielhkuo/btva/router"
	"github.com/danielhkuo/btva/voting"
)

const usage = `usage: btva <command> [flags]

commands:
  tally [-scheme s] [-show-scores] [-save] <file>   tally a .abif, .json or .yaml profile
  serve [-p port] [-d url] [-t sqlite|postgres]     run the HTTP API
  schemes [-m n]                                    print scoring vectors
`

func main() {
	cliparse.LoadDotEnv()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "tally":
		err = runTally(args[1:], stdout)
	case "serve":
		err = runServe(args[1:])
	case "schemes":
		err = runSchemes(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "btva %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func runTally(args []string, stdout io.Writer) error {
	cfg, err := cliparse.ParseTallyFlags(args)
	if err != nil {
		return err
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	parsed, err := ballots.LoadFile(cfg.Input)
	if err != nil {
		return err
	}

	scheme, err := parsed.ResolveScheme(cfg.Scheme)
	if err != nil {
		return err
	}

	res, err := voting.Analyze(scheme, parsed.Profile)
	if err != nil {
		return err
	}
	slog.Debug("tallied profile",
		"input", cfg.Input,
		"scheme", scheme,
		"voters", res.Voters(),
		"alternatives", res.Alternatives(),
	)

	analysis := report.FromResult(res, string(parsed.Format))

	if cfg.Save {
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		analysis, err = db.NewStore(conn, cfg.DatabaseType).SaveAnalysis(context.Background(), analysis)
		if err != nil {
			return err
		}
		slog.Info("analysis saved", "analysis_id", analysis.ID)
	}

	return report.WriteText(stdout, analysis, cfg.ShowScores)
}

func runSchemes(args []string, stdout io.Writer) error {
	m, err := cliparse.ParseSchemesFlags(args)
	if err != nil {
		return err
	}
	return report.WriteSchemes(stdout, m)
}

func runServe(args []string) error {
	cfg, err := cliparse.ParseServeFlags(args)
	if err != nil {
		return err
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	mux := router.NewRouter(db.NewStore(conn, cfg.DatabaseType), cfg)

	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed: %w", err)
	}
	slog.Info("Server closed")
	return nil
}
