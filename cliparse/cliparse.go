// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/btva/voting"
)

const (
	DefaultPort         = 3318
	DefaultMaxBodyBytes = 1 << 20
)

// Config holds settings for the HTTP server
type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string
	MaxBodyBytes int64
}

// TallyConfig holds settings for a one-shot tally of an input file
type TallyConfig struct {
	Input        string
	Scheme       string
	ShowScores   bool
	Save         bool
	DatabaseURL  string
	DatabaseType string
	LogLevel     string
	LogFormat    string
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

// ParseServeFlags validates flags for the serve command
func ParseServeFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("btva serve", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text, json, auto)")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body", 0, "Maximum request body size in bytes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	dbType, err := databaseType(cfg.DatabaseType)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseType = dbType

	if cfg.MaxBodyBytes == 0 {
		if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n <= 0 {
				return Config{}, errors.New("invalid MAX_BODY_BYTES env variable")
			}
			cfg.MaxBodyBytes = n
		} else {
			cfg.MaxBodyBytes = DefaultMaxBodyBytes
		}
	}
	if cfg.MaxBodyBytes < 0 {
		return Config{}, errors.New("max body size must be positive")
	}

	cfg.LogLevel, cfg.LogFormat = logSettings(cfg.LogLevel, cfg.LogFormat)

	return cfg, nil
}

// ParseTallyFlags validates flags for the tally command. Flags may appear
// before or after the input path.
func ParseTallyFlags(args []string) (TallyConfig, error) {
	var cfg TallyConfig

	fs := flag.NewFlagSet("btva tally", flag.ContinueOnError)

	fs.StringVar(&cfg.Scheme, "scheme", "", "Voting scheme (plurality, vote_for_two, anti_plurality, borda)")
	fs.BoolVar(&cfg.ShowScores, "show-scores", false, "Print the full score table")
	fs.BoolVar(&cfg.Save, "save", false, "Store the analysis in the database")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (with -save)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text, json, auto)")

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return TallyConfig{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	switch len(positional) {
	case 0:
		return TallyConfig{}, errors.New("input file required")
	case 1:
		cfg.Input = positional[0]
	default:
		return TallyConfig{}, fmt.Errorf("expected one input file, got %d", len(positional))
	}

	if cfg.Scheme != "" {
		if _, err := voting.ParseScheme(cfg.Scheme); err != nil {
			return TallyConfig{}, err
		}
	}

	if cfg.Save {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return TallyConfig{}, errors.New("-save needs a database URL (use -d or DATABASE_URL env)")
		}
		dbType, err := databaseType(cfg.DatabaseType)
		if err != nil {
			return TallyConfig{}, err
		}
		cfg.DatabaseType = dbType
	}

	cfg.LogLevel, cfg.LogFormat = logSettings(cfg.LogLevel, cfg.LogFormat)

	return cfg, nil
}

// ParseSchemesFlags returns the alternative count for the schemes command
func ParseSchemesFlags(args []string) (int, error) {
	fs := flag.NewFlagSet("btva schemes", flag.ContinueOnError)
	m := fs.Int("m", 3, "Number of alternatives")

	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *m <= 0 {
		return 0, fmt.Errorf("-m must be positive, got %d", *m)
	}
	return *m, nil
}

func databaseType(flagValue string) (string, error) {
	t := flagValue
	if t == "" {
		t = os.Getenv("DATABASE_TYPE")
	}
	switch t {
	case "":
		return "sqlite", nil
	case "sqlite", "postgres":
		return t, nil
	}
	return "", fmt.Errorf("unsupported database type %q (sqlite or postgres)", t)
}

func logSettings(level, format string) (string, string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if format == "" {
		format = "auto"
	}
	return level, format
}
