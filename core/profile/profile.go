// Package profile loads a default core.Option set from a TOML document,
// for embedding applications that want to configure the engine from a
// file rather than construct Options in code. This is ambient plumbing
// around core.Options, not a core module of its own - spec.md's C7 Public
// API is fully usable without ever importing this package.
//
// Grounded on the Creative-Workz config library's toml.DecodeFile-backed
// loader (github.com/BurntSushi/toml), but written in the plain,
// un-annotated style the rest of this module uses rather than that
// library's own commentary conventions.
package profile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dshills/ediparse/core"
)

// Profile is the on-disk shape of a TOML options document, e.g.:
//
//	charset = "utf-8"
//	field_validation_mode = "lenient"
//	continue_on_error = true
//	empty_segment_handling = "skip"
//	check_unknown_entities = true
//	trim_trailing_spaces = true
//	debug = false
//	max_input_size = 67108864
//	max_segments = 200000
//	max_field_length = 65536
type Profile struct {
	Charset              string `toml:"charset"`
	FieldValidationMode  string `toml:"field_validation_mode"`
	ContinueOnError      bool   `toml:"continue_on_error"`
	EmptySegmentHandling string `toml:"empty_segment_handling"`
	CheckUnknownEntities bool   `toml:"check_unknown_entities"`
	TrimTrailingSpaces   bool   `toml:"trim_trailing_spaces"`
	Debug                bool   `toml:"debug"`
	MaxInputSize         int    `toml:"max_input_size"`
	MaxSegments          int    `toml:"max_segments"`
	MaxFieldLength       int    `toml:"max_field_length"`
}

// Load decodes path into a Profile.
func Load(path string) (Profile, error) {
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: decoding %s: %w", path, err)
	}
	return p, nil
}

// Options converts a decoded Profile into the core.Option list it
// describes, ready to pass to Engine.Parse/Validate.
func (p Profile) Options() []core.Option {
	var opts []core.Option
	if p.Charset != "" {
		opts = append(opts, core.WithCharset(p.Charset))
	}
	if p.FieldValidationMode != "" {
		opts = append(opts, core.WithFieldValidationMode(core.FieldValidationMode(p.FieldValidationMode)))
	}
	opts = append(opts, core.WithContinueOnError(p.ContinueOnError))
	if p.EmptySegmentHandling != "" {
		opts = append(opts, core.WithEmptySegmentHandling(core.EmptySegmentHandling(p.EmptySegmentHandling)))
	}
	opts = append(opts, core.WithCheckUnknownEntities(p.CheckUnknownEntities))
	opts = append(opts, core.WithTrimTrailingSpaces(p.TrimTrailingSpaces))
	opts = append(opts, core.WithDebug(p.Debug))
	if p.MaxInputSize > 0 {
		opts = append(opts, core.WithMaxInputSize(p.MaxInputSize))
	}
	if p.MaxSegments > 0 {
		opts = append(opts, core.WithMaxSegments(p.MaxSegments))
	}
	if p.MaxFieldLength > 0 {
		opts = append(opts, core.WithMaxFieldLength(p.MaxFieldLength))
	}
	return opts
}

// LoadOptions is a convenience wrapper combining Load and Options.
func LoadOptions(path string) ([]core.Option, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	return p.Options(), nil
}
