// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"sort"
	"strings"
)

// Profile is an immutable set of strict voter rankings over the same
// alternatives. Each ranking lists alternatives most preferred first.
type Profile struct {
	rankings [][]string
}

// NewProfile copies the rankings and validates them
func NewProfile(rankings [][]string) (*Profile, error) {
	p := &Profile{rankings: copyRankings(rankings)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the profile has more than two voters, more than two
// alternatives, and that every voter ranks exactly the first voter's set.
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	n := len(p.rankings)
	if n <= 2 {
		return fmt.Errorf("%w: must have more than 2 voters, got %d", ErrInvalidProfile, n)
	}

	m := len(p.rankings[0])
	if m <= 2 {
		return fmt.Errorf("%w: must have more than 2 alternatives, got %d", ErrInvalidProfile, m)
	}

	expected := make(map[string]struct{}, m)
	for _, alt := range p.rankings[0] {
		if _, dup := expected[alt]; dup {
			return fmt.Errorf("%w: voter 0 ranks %q more than once", ErrInvalidProfile, alt)
		}
		expected[alt] = struct{}{}
	}

	for i, ranking := range p.rankings[1:] {
		voter := i + 1
		if len(ranking) != m {
			return fmt.Errorf("%w: voter %d ranks %d alternatives, expected %d",
				ErrInvalidProfile, voter, len(ranking), m)
		}

		seen := make(map[string]struct{}, m)
		var extra, dups []string
		for _, alt := range ranking {
			if _, ok := expected[alt]; !ok {
				extra = append(extra, alt)
				continue
			}
			if _, dup := seen[alt]; dup {
				dups = append(dups, alt)
				continue
			}
			seen[alt] = struct{}{}
		}
		if len(extra) == 0 && len(dups) == 0 {
			continue
		}

		var missing []string
		for _, alt := range p.rankings[0] {
			if _, ok := seen[alt]; !ok {
				missing = append(missing, alt)
			}
		}
		return fmt.Errorf("%w: voter %d must rank the same alternatives as voter 0 (missing=[%s] extra=[%s] duplicate=[%s])",
			ErrInvalidProfile, voter,
			strings.Join(missing, " "), strings.Join(extra, " "), strings.Join(dups, " "))
	}

	return nil
}

// Voters returns the number of voters n
func (p *Profile) Voters() int {
	return len(p.rankings)
}

// Alternatives returns the number of alternatives m
func (p *Profile) Alternatives() int {
	if len(p.rankings) == 0 {
		return 0
	}
	return len(p.rankings[0])
}

// AlternativeSet returns the alternatives in the first voter's order
func (p *Profile) AlternativeSet() []string {
	if len(p.rankings) == 0 {
		return nil
	}
	return append([]string(nil), p.rankings[0]...)
}

// SortedAlternatives returns the alternatives in lexicographic order
func (p *Profile) SortedAlternatives() []string {
	alts := p.AlternativeSet()
	sort.Strings(alts)
	return alts
}

// Has reports whether alt is one of the profile's alternatives
func (p *Profile) Has(alt string) bool {
	if len(p.rankings) == 0 {
		return false
	}
	for _, a := range p.rankings[0] {
		if a == alt {
			return true
		}
	}
	return false
}

// Ranking returns a copy of voter i's ranking
func (p *Profile) Ranking(i int) []string {
	return append([]string(nil), p.rankings[i]...)
}

// Rankings returns a deep copy of every ranking in voter order
func (p *Profile) Rankings() [][]string {
	return copyRankings(p.rankings)
}

// Equal reports whether both profiles hold the same rankings in the same order
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.rankings) != len(other.rankings) {
		return false
	}
	for i := range p.rankings {
		a, b := p.rankings[i], other.rankings[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

func copyRankings(rankings [][]string) [][]string {
	out := make([][]string, len(rankings))
	for i, r := range rankings {
		out[i] = append([]string(nil), r...)
	}
	return out
}
