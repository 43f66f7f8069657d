// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "sort"

// Outcome is the result of tallying a profile under a scheme
type Outcome struct {
	Scheme Scheme
	Scores map[string]int // every alternative, including zero scores
	Winner string
}

// ScoreEntry pairs an alternative with its accumulated score
type ScoreEntry struct {
	Alternative string
	Score       int
}

// Tally scores every voter's ranking with the scheme's positional vector and
// picks the highest-scoring alternative. Ties go to the lexicographically
// smallest label.
func Tally(s Scheme, p *Profile) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}

	vec, err := ScoringVector(s, p.Alternatives())
	if err != nil {
		return Outcome{}, err
	}

	alts := p.SortedAlternatives()
	scores := make(map[string]int, len(alts))
	for _, alt := range alts {
		scores[alt] = 0
	}

	for _, ranking := range p.rankings {
		for pos, alt := range ranking {
			scores[alt] += vec[pos]
		}
	}

	// alts is sorted, so the first strict maximum is the smallest tied label
	winner := alts[0]
	for _, alt := range alts[1:] {
		if scores[alt] > scores[winner] {
			winner = alt
		}
	}

	return Outcome{Scheme: s, Scores: scores, Winner: winner}, nil
}

// SortedScores returns the score table ordered by alternative label
func (o Outcome) SortedScores() []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(o.Scores))
	for alt, score := range o.Scores {
		entries = append(entries, ScoreEntry{Alternative: alt, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Alternative < entries[j].Alternative
	})
	return entries
}

// Ranked returns the score table ordered by score descending, then label
// ascending. The first entry is always the winner.
func (o Outcome) Ranked() []ScoreEntry {
	entries := o.SortedScores()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

