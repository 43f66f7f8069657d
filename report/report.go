// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/btva/models"
	"github.com/danielhkuo/btva/voting"
)

// FromResult converts an analysis result into its stored/API form
func FromResult(res voting.Result, sourceFormat string) models.Analysis {
	sorted := res.Outcome.SortedScores()
	scores := make([]models.ScoreEntry, len(sorted))
	for i, e := range sorted {
		scores[i] = models.ScoreEntry{Alternative: e.Alternative, Score: e.Score}
	}

	ranked := res.Outcome.Ranked()
	ranking := make([]string, len(ranked))
	for i, e := range ranked {
		ranking[i] = e.Alternative
	}

	return models.Analysis{
		Scheme:         res.Outcome.Scheme.String(),
		Winner:         res.Outcome.Winner,
		Voters:         res.Voters(),
		Alternatives:   res.Alternatives(),
		Scores:         scores,
		Ranking:        ranking,
		Happiness:      append([]int(nil), res.Happiness.PerVoter...),
		TotalHappiness: res.Happiness.Total(),
		SourceFormat:   sourceFormat,
	}
}

// WriteText prints an analysis the way the CLI shows it
func WriteText(w io.Writer, a models.Analysis, showScores bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "scheme: %s\n", a.Scheme)
	fmt.Fprintf(&b, "voters: %s\n", humanize.Comma(int64(a.Voters)))
	fmt.Fprintf(&b, "alternatives: %s\n", humanize.Comma(int64(a.Alternatives)))
	fmt.Fprintf(&b, "winner: %s\n", a.Winner)
	fmt.Fprintf(&b, "H_i: %s\n", formatInts(a.Happiness))
	fmt.Fprintf(&b, "H: %s\n", humanize.Comma(int64(a.TotalHappiness)))
	if a.ID != "" {
		fmt.Fprintf(&b, "id: %s\n", a.ID)
	}

	if showScores {
		if len(a.Ranking) > 0 {
			fmt.Fprintf(&b, "ranking: %s\n", strings.Join(a.Ranking, " > "))
		}
		for _, e := range a.Scores {
			fmt.Fprintf(&b, "%s: %s\n", e.Alternative, humanize.Comma(int64(e.Score)))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSchemes prints every scheme's scoring vector for m alternatives
func WriteSchemes(w io.Writer, m int) error {
	var b strings.Builder
	for _, s := range voting.Schemes() {
		vec, err := voting.ScoringVector(s, m)
		if err != nil {
			fmt.Fprintf(&b, "%-15s %v\n", s, err)
			continue
		}
		fmt.Fprintf(&b, "%-15s %s\n", s, formatInts(vec))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatInts renders a slice as "[3, 2, 0]"
func formatInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
