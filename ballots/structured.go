// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballots

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/btva/models"
	"github.com/danielhkuo/btva/voting"
)

// Format names an input encoding
type Format string

const (
	FormatABIF Format = "abif"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Parsed is a profile ready for analysis. Scheme is empty when the input did
// not declare one; the caller must supply it.
type Parsed struct {
	Format     Format
	Scheme     voting.Scheme
	Profile    *voting.Profile
	Strategies any // accepted in any shape, not interpreted
}

// ParseStructured decodes a JSON document holding a scheme and voting situation
func ParseStructured(data []byte) (Parsed, error) {
	var in models.StructuredInput
	if err := json.Unmarshal(data, &in); err != nil {
		return Parsed{}, fmt.Errorf("failed to decode JSON input: %w", err)
	}
	return FromStructured(FormatJSON, in)
}

// ParseStructuredYAML decodes the YAML form of the structured input
func ParseStructuredYAML(data []byte) (Parsed, error) {
	var in models.StructuredInput
	if err := yaml.Unmarshal(data, &in); err != nil {
		return Parsed{}, fmt.Errorf("failed to decode YAML input: %w", err)
	}
	return FromStructured(FormatYAML, in)
}

// FromStructured validates an already decoded structured input
func FromStructured(format Format, in models.StructuredInput) (Parsed, error) {
	var scheme voting.Scheme
	if in.Scheme != "" {
		s, err := voting.ParseScheme(in.Scheme)
		if err != nil {
			return Parsed{}, err
		}
		scheme = s
	}

	profile, err := voting.NewProfile(in.VotingSituation)
	if err != nil {
		return Parsed{}, err
	}

	return Parsed{
		Format:     format,
		Scheme:     scheme,
		Profile:    profile,
		Strategies: in.Strategies,
	}, nil
}
