// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "fmt"

// HappinessResult holds per-voter happiness for a fixed outcome
type HappinessResult struct {
	Outcome  string
	PerVoter []int // index-aligned with the profile's voters
}

// Total returns the sum of every voter's happiness
func (h HappinessResult) Total() int {
	total := 0
	for _, v := range h.PerVoter {
		total += v
	}
	return total
}

// HappinessForOutcome measures each voter's satisfaction with outcome as the
// Borda score they give it: (m-1) minus its 0-based position in their
// ranking. The measure does not depend on which scheme chose the outcome.
func HappinessForOutcome(p *Profile, outcome string) (HappinessResult, error) {
	if err := p.Validate(); err != nil {
		return HappinessResult{}, err
	}
	if !p.Has(outcome) {
		return HappinessResult{}, fmt.Errorf("%w: %q is not a valid alternative", ErrUnknownAlternative, outcome)
	}

	m := p.Alternatives()
	perVoter := make([]int, len(p.rankings))
	for i, ranking := range p.rankings {
		for rank, alt := range ranking {
			if alt == outcome {
				perVoter[i] = (m - 1) - rank
				break
			}
		}
	}

	return HappinessResult{Outcome: outcome, PerVoter: perVoter}, nil
}
