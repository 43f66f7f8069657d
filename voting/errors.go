// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

var (
	ErrInvalidProfile         = errors.New("invalid profile")
	ErrUnsupportedScheme      = errors.New("unsupported voting scheme")
	ErrInvalidSchemeParameter = errors.New("invalid scheme parameter")
	ErrUnknownAlternative     = errors.New("unknown alternative")
)
