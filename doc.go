// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command btva tallies ranked-preference profiles under positional voting
schemes and reports how happy each voter is with the winner.

# Tallying a File

	btva tally -scheme borda ballots.abif
	btva tally situation.json
	btva tally -show-scores -save -d btva.db situation.yaml

Ranked-ballot files (.abif) declare their candidates with a "# <m>" header
and need -scheme. JSON and YAML files may name a scheme; -scheme overrides
it. Output:

	scheme: borda
	voters: 3
	alternatives: 4
	winner: B
	H_i: [2, 3, 1]
	H: 6

# Scoring Vectors

	btva schemes -m 5

# Serving the API

	DATABASE_URL=btva.db btva serve
	btva serve -p 3318 -t postgres -d "postgres://..."

# Configuration

Flags win over environment variables. A .env file in the working directory
is loaded first.

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): sqlite path or postgres connection string
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - MAX_BODY_BYTES (-max-body): Request body cap (default: 1 MiB)
  - LOG_LEVEL (-log-level): debug, info, warn, error
  - LOG_FORMAT (-log-format): text, json or auto

# Architecture

  - voting: Profiles, scoring vectors, tally and happiness
  - ballots: Ranked-ballot, JSON and YAML input parsing
  - report: CLI text output and API conversion
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema and analysis store
  - cliparse: Configuration parsing
  - logging: slog setup
*/
package main
