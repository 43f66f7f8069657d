// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "fmt"

// Scheme identifies a positional scoring rule
type Scheme string

// Supported schemes
const (
	Plurality     Scheme = "plurality"
	VoteForTwo    Scheme = "vote_for_two"
	AntiPlurality Scheme = "anti_plurality"
	Borda         Scheme = "borda"
)

// Schemes returns every supported scheme in declaration order
func Schemes() []Scheme {
	return []Scheme{Plurality, VoteForTwo, AntiPlurality, Borda}
}

// ParseScheme converts a scheme tag into a Scheme
func ParseScheme(tag string) (Scheme, error) {
	s := Scheme(tag)
	switch s {
	case Plurality, VoteForTwo, AntiPlurality, Borda:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, tag)
}

func (s Scheme) String() string {
	return string(s)
}

// ScoringVector returns the points awarded to each rank position for m
// alternatives, index 0 being the most preferred position.
func ScoringVector(s Scheme, m int) ([]int, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: m must be positive, got %d", ErrInvalidSchemeParameter, m)
	}

	vec := make([]int, m)
	switch s {
	case Plurality:
		vec[0] = 1
	case VoteForTwo:
		if m < 2 {
			return nil, fmt.Errorf("%w: vote_for_two requires m >= 2, got %d", ErrInvalidSchemeParameter, m)
		}
		vec[0], vec[1] = 1, 1
	case AntiPlurality:
		// Veto: every position scores except the last
		for i := 0; i < m-1; i++ {
			vec[i] = 1
		}
	case Borda:
		for i := range vec {
			vec[i] = m - 1 - i
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, string(s))
	}

	return vec, nil
}
