// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the btva API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Schemes:

	GET /schemes?m=4 - Scoring vector of every scheme for m alternatives

Analyses:

	POST /analyses                  - Tally a JSON voting situation
	POST /analyses/ballots?scheme=  - Tally ranked-ballot text
	GET  /analyses?limit=           - Most recent analyses
	GET  /analyses/{id}             - One stored analysis

Every route except /health and / is wrapped with middleware.WithLogging.
*/
package router
