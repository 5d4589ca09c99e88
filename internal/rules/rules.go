// Package rules defines the tunable parameters of the validation
// pipeline. The zero-configuration defaults reproduce the historical
// validator behavior exactly; a TOML rules file can override them.
package rules

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/stopcheck/internal/errors"
	"github.com/thoreinstein/stopcheck/internal/stop"
)

// DefaultMaxLinkLength is the length beyond which a link without "http"
// is considered suspicious.
const DefaultMaxLinkLength = 200

// DefaultPlaceholder is the stand-in text that marks unresearched links.
const DefaultPlaceholder = "User to research"

// Rules parameterizes the validation checks.
type Rules struct {
	// RequiredFields is the set of fields every record must carry.
	RequiredFields []string `toml:"required_fields"`

	// MaxLinkLength caps the length of links that do not look like URLs.
	MaxLinkLength int `toml:"max_link_length"`

	// Placeholder is the stand-in substring treated as invalid link content.
	Placeholder string `toml:"placeholder"`
}

// Default returns the built-in rules.
func Default() *Rules {
	return &Rules{
		RequiredFields: append([]string(nil), stop.RequiredFields...),
		MaxLinkLength:  DefaultMaxLinkLength,
		Placeholder:    DefaultPlaceholder,
	}
}

// Load reads a TOML rules file layered over the defaults: keys absent
// from the file keep their default values.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRules, "reading %s: %v", path, err)
	}

	r := Default()
	if err := toml.Unmarshal(data, r); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRules, "parsing %s: %v", path, err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the rules for internal consistency.
func (r *Rules) Validate() error {
	if len(r.RequiredFields) == 0 {
		return errors.Wrap(errors.ErrInvalidRules, "required_fields must not be empty")
	}
	seen := make(map[string]bool, len(r.RequiredFields))
	for _, f := range r.RequiredFields {
		if f == "" {
			return errors.Wrap(errors.ErrInvalidRules, "required_fields must not contain empty names")
		}
		if seen[f] {
			return errors.Wrapf(errors.ErrInvalidRules, "duplicate required field %q", f)
		}
		seen[f] = true
	}
	if r.MaxLinkLength <= 0 {
		return errors.Wrap(errors.ErrInvalidRules, "max_link_length must be positive")
	}
	if r.Placeholder == "" {
		return errors.Wrap(errors.ErrInvalidRules, "placeholder must not be empty")
	}
	return nil
}
