// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements positional scoring rules and voter happiness.

# Profiles

A Profile is a list of strict voter rankings, most preferred first:

	p, err := voting.NewProfile([][]string{
		{"A", "B", "C"},
		{"A", "C", "B"},
		{"B", "A", "C"},
	})

NewProfile copies its input and validates it. A profile needs more than two
voters and more than two alternatives, and every voter must rank exactly the
alternatives of the first voter. Tally and HappinessForOutcome validate again
before doing any work.

# Schemes

Each scheme maps to a scoring vector, index 0 being first place:

	plurality       [1, 0, ..., 0]
	vote_for_two    [1, 1, 0, ..., 0]
	anti_plurality  [1, ..., 1, 0]
	borda           [m-1, m-2, ..., 0]

# Tally

Tally sums the vector over every ranking. The winner is the alternative with
the highest score; ties go to the lexicographically smallest label.

# Happiness

HappinessForOutcome scores each voter's satisfaction with a winner O as
(m-1) - rank(O), which is the Borda score the voter gives O. It is the same
regardless of the scheme that produced O.

# Analyze

Analyze runs Tally and then HappinessForOutcome on the winner:

	res, err := voting.Analyze(voting.Borda, p)
	// res.Outcome.Winner, res.Happiness.PerVoter, res.Happiness.Total()
*/
package voting
