// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines input, response, and stored types shared by the CLI
and the API.

# Input Types

  - StructuredInput: scheme, voting_situation, strategies (inert)

# Response Types

  - SchemeInfo: scheme, vector
  - ListSchemesResponse: alternatives, schemes
  - ListAnalysesResponse: analyses
  - ErrorResponse: error, message

# Domain Types

  - Analysis: a stored result (winner, scores, per-voter happiness, total)
  - ScoreEntry: alternative and its accumulated score

# Constants

Source formats:

	SourceABIF = "abif"
	SourceJSON = "json"
	SourceYAML = "yaml"
*/
package models
