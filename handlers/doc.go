// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the btva API.

# Analyses

AnalysisHandler tallies a profile, evaluates voter happiness for the winner,
and stores the result:

	h := handlers.NewAnalysisHandler(store, cfg)

	POST /analyses                 → CreateAnalysis (JSON voting situation)
	POST /analyses/ballots?scheme= → CreateAnalysisFromBallots (ranked-ballot text)
	GET  /analyses/{id}            → GetAnalysis
	GET  /analyses?limit=          → ListAnalyses

A scheme query parameter overrides the scheme named in a JSON body.
Request bodies are capped at cfg.MaxBodyBytes.

# Errors

Profile, scheme and ballot errors return 400 with the error text as the
message, so a ballot failure names its line:

	{"error": "Bad Request", "message": "line 4: malformed ballot line: ..."}

Oversized bodies return 413. Storage failures return 500.

# Schemes

	GET /schemes?m=5 → ListSchemes
*/
package handlers
