// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danielhkuo/btva/voting"
)

// Limits on what a ballot file may declare. Header and count values are
// bounded separately from the byte size of the input.
const (
	maxLineBytes    = 1 << 20
	maxAlternatives = 1000
	maxVoters       = 100_000
	maxProfileCells = 1 << 20 // voters * alternatives
)

// ballotParser accumulates state for a single ParseRankedBallots call
type ballotParser struct {
	m       int
	header  bool
	voters  [][]string
	pending []pendingBallot // ballots read before the header declared m
}

type pendingBallot struct {
	line    int
	text    string
	ranking []string
}

// ParseRankedBallots reads ranked-ballot text and returns a validated profile.
// Alternatives are the labels "0".."m-1" where m comes from the first
// "# <m> ..." header line. Parsing stops at the first error.
func ParseRankedBallots(r io.Reader) (*voting.Profile, error) {
	bp := &ballotParser{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := bp.parseLine(lineNo, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ballots: %w", err)
	}

	return bp.finish()
}

// ParseRankedBallotsString is ParseRankedBallots over an in-memory string
func ParseRankedBallotsString(text string) (*voting.Profile, error) {
	return ParseRankedBallots(strings.NewReader(text))
}

func (bp *ballotParser) parseLine(lineNo int, raw string) error {
	line := strings.TrimSpace(raw)

	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, "#"):
		if err := bp.parseHeader(line[1:]); err != nil {
			return &LineError{Line: lineNo, Text: line, Err: err}
		}
		return nil
	case strings.HasPrefix(line, "="):
		// candidate mapping, e.g. "=3 : [3]"
		return nil
	}

	countText, rankingText, ok := strings.Cut(line, ":")
	if !ok {
		return &LineError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: missing ':'", ErrMalformedBallotLine)}
	}

	countText = strings.TrimSpace(countText)
	count, err := strconv.Atoi(countText)
	if err != nil || count <= 0 || !isDigits(countText) {
		return &LineError{Line: lineNo, Text: line,
			Err: fmt.Errorf("%w: count %q is not a positive integer", ErrMalformedBallotLine, countText)}
	}

	if count > maxVoters {
		return &LineError{Line: lineNo, Text: line,
			Err: fmt.Errorf("%w: count %d exceeds the limit of %d voters", ErrMalformedBallotLine, count, maxVoters)}
	}

	ranking := splitRanking(rankingText)

	if err := bp.checkSize(count, len(ranking)); err != nil {
		return &LineError{Line: lineNo, Text: line, Err: err}
	}

	if bp.header {
		ranking = bp.fill(ranking)
		if err := bp.check(ranking); err != nil {
			return &LineError{Line: lineNo, Text: line, Err: err}
		}
	} else {
		bp.pending = append(bp.pending, pendingBallot{line: lineNo, text: line, ranking: ranking})
	}

	for i := 0; i < count; i++ {
		bp.voters = append(bp.voters, ranking)
	}
	return nil
}

// parseHeader records m from the first comment whose first token is an integer
func (bp *ballotParser) parseHeader(rest string) error {
	if bp.header {
		return nil
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 || !isDigits(fields[0]) {
		return nil
	}
	m, err := strconv.Atoi(fields[0])
	if err != nil || m > maxAlternatives {
		return fmt.Errorf("%w: header declares %s candidates, limit is %d",
			ErrMalformedBallotLine, fields[0], maxAlternatives)
	}

	bp.m = m
	bp.header = true
	return nil
}

// checkSize rejects a ballot line that would push the profile past the
// voter or cell limits
func (bp *ballotParser) checkSize(count, width int) error {
	total := len(bp.voters) + count
	if total > maxVoters {
		return fmt.Errorf("%w: more than %d voters", ErrMalformedBallotLine, maxVoters)
	}
	if bp.header && bp.m > width {
		width = bp.m
	}
	if total*width > maxProfileCells {
		return fmt.Errorf("%w: profile exceeds %d ranked entries", ErrMalformedBallotLine, maxProfileCells)
	}
	return nil
}

// fill appends unlisted alternatives in ascending candidate order
func (bp *ballotParser) fill(ranking []string) []string {
	if len(ranking) >= bp.m {
		return ranking
	}
	seen := make(map[string]struct{}, len(ranking))
	for _, alt := range ranking {
		seen[alt] = struct{}{}
	}
	for i := 0; i < bp.m; i++ {
		label := strconv.Itoa(i)
		if _, ok := seen[label]; !ok {
			ranking = append(ranking, label)
		}
	}
	return ranking
}

// check verifies that ranking is a permutation of "0".."m-1"
func (bp *ballotParser) check(ranking []string) error {
	seen := make(map[string]struct{}, len(ranking))
	for _, alt := range ranking {
		if !bp.inUniverse(alt) {
			return fmt.Errorf("%w: unknown candidate %q (expected 0..%d)", ErrBallotAlternativeMismatch, alt, bp.m-1)
		}
		if _, dup := seen[alt]; dup {
			return fmt.Errorf("%w: candidate %q ranked more than once", ErrBallotAlternativeMismatch, alt)
		}
		seen[alt] = struct{}{}
	}
	if len(ranking) != bp.m {
		return fmt.Errorf("%w: ranks %d candidates, expected %d", ErrBallotAlternativeMismatch, len(ranking), bp.m)
	}
	return nil
}

// inUniverse reports whether alt is a canonical label in 0..m-1
func (bp *ballotParser) inUniverse(alt string) bool {
	if !isDigits(alt) {
		return false
	}
	n, err := strconv.Atoi(alt)
	if err != nil || n >= bp.m {
		return false
	}
	return strconv.Itoa(n) == alt
}

func (bp *ballotParser) finish() (*voting.Profile, error) {
	if !bp.header {
		return nil, ErrMissingHeader
	}

	for _, pb := range bp.pending {
		if err := bp.check(pb.ranking); err != nil {
			return nil, &LineError{Line: pb.line, Text: pb.text, Err: err}
		}
	}

	return voting.NewProfile(bp.voters)
}

// splitRanking turns "2>0=1" into ["2" "0" "1"]. Ties are linearized in the
// order they are written.
func splitRanking(text string) []string {
	text = strings.ReplaceAll(text, "=", ">")

	var alts []string
	for _, tok := range strings.Split(text, ">") {
		if tok = strings.TrimSpace(tok); tok != "" {
			alts = append(alts, tok)
		}
	}
	return alts
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
