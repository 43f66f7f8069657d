// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/btva/voting"
)

// FormatForPath picks the input format from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".abif":
		return FormatABIF, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (expected .abif, .json, .yaml or .yml)", ErrUnsupportedFormat, path)
}

// Parse decodes data in the given format
func Parse(format Format, data []byte) (Parsed, error) {
	switch format {
	case FormatABIF:
		profile, err := ParseRankedBallots(bytes.NewReader(data))
		if err != nil {
			return Parsed{}, err
		}
		return Parsed{Format: FormatABIF, Profile: profile}, nil
	case FormatJSON:
		return ParseStructured(data)
	case FormatYAML:
		return ParseStructuredYAML(data)
	}
	return Parsed{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
}

// LoadFile reads and parses an input file, choosing the format by extension
func LoadFile(path string) (Parsed, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Parsed{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("failed to read input: %w", err)
	}

	parsed, err := Parse(format, data)
	if err != nil {
		return Parsed{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return parsed, nil
}

// ResolveScheme returns override when set, otherwise the scheme the input
// declared. It fails when neither is present.
func (p Parsed) ResolveScheme(override string) (voting.Scheme, error) {
	if override != "" {
		return voting.ParseScheme(override)
	}
	if p.Scheme != "" {
		return p.Scheme, nil
	}
	return "", fmt.Errorf("%w: %s input does not declare one", ErrMissingScheme, p.Format)
}
