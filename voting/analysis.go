// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Result combines the tally outcome with the happiness it produces
type Result struct {
	Outcome   Outcome
	Happiness HappinessResult
}

// Voters returns the number of voters the result covers
func (r Result) Voters() int {
	return len(r.Happiness.PerVoter)
}

// Alternatives returns the number of alternatives that were scored
func (r Result) Alternatives() int {
	return len(r.Outcome.Scores)
}

// Analyze tallies the profile and evaluates happiness for the winner
func Analyze(s Scheme, p *Profile) (Result, error) {
	outcome, err := Tally(s, p)
	if err != nil {
		return Result{}, err
	}

	happiness, err := HappinessForOutcome(p, outcome.Winner)
	if err != nil {
		return Result{}, err
	}

	return Result{Outcome: outcome, Happiness: happiness}, nil
}
