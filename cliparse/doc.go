// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Commands

Each btva command has its own parser:

	cfg, err := cliparse.ParseTallyFlags(os.Args[2:])   // btva tally
	cfg, err := cliparse.ParseServeFlags(os.Args[2:])   // btva serve
	m, err := cliparse.ParseSchemesFlags(os.Args[2:])   // btva schemes

# Tally Flags

	-scheme       Voting scheme; required unless the input file declares one
	-show-scores  Print the score table sorted by alternative
	-save         Store the analysis (needs -d or DATABASE_URL)
	-d, -t        Database URL and type for -save
	-log-level    debug, info, warn, error
	-log-format   text, json, auto

Flags may come before or after the input path.

# Serve Flags

	-p            Server port (default: 3318)
	-d            Database URL (required)
	-t            Database type: sqlite (default) or postgres
	-max-body     Maximum request body in bytes (default: 1 MiB)
	-log-level, -log-format

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	MAX_BODY_BYTES → -max-body
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format

CLI flags take precedence over environment variables. LoadDotEnv reads a
.env file into the environment first without overriding variables that are
already set.
*/
package cliparse
