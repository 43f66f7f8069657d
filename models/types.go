package models

import "time"

// Source formats recorded on stored analyses
const (
	SourceABIF = "abif"
	SourceJSON = "json"
	SourceYAML = "yaml"
)

// Request types

// StructuredInput is the JSON/YAML input shape: a scheme tag plus one
// ranking per voter, most preferred first.
type StructuredInput struct {
	Scheme          string         `json:"scheme" yaml:"scheme"`
	VotingSituation [][]string     `json:"voting_situation" yaml:"voting_situation"`
	Strategies      any            `json:"strategies,omitempty" yaml:"strategies,omitempty"` // any shape, never interpreted
}

// Response types

type SchemeInfo struct {
	Scheme string `json:"scheme"`
	Vector []int  `json:"vector"`
}

type ListSchemesResponse struct {
	Alternatives int          `json:"alternatives"`
	Schemes      []SchemeInfo `json:"schemes"`
}

type ListAnalysesResponse struct {
	Analyses []Analysis `json:"analyses"`
}

// Domain types

type ScoreEntry struct {
	Alternative string `json:"alternative"`
	Score       int    `json:"score"`
}

// Analysis is a stored tally plus happiness evaluation
type Analysis struct {
	ID             string       `json:"id"`
	Scheme         string       `json:"scheme"`
	Winner         string       `json:"winner"`
	Voters         int          `json:"voters"`
	Alternatives   int          `json:"alternatives"`
	Scores         []ScoreEntry `json:"scores"`  // sorted by alternative
	Ranking        []string     `json:"ranking"` // by score descending, ties by label
	Happiness      []int        `json:"happiness"`
	TotalHappiness int          `json:"total_happiness"`
	SourceFormat   string       `json:"source_format"`
	CreatedAt      time.Time    `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
