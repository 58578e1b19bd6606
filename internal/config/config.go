// Package config loads the optional defaults file of the command-line tool.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/propkit/internal/proptext"
	"github.com/joshuapare/propkit/pkg/types"
)

// Config holds defaults that command-line flags override.
// Struct tags map TOML keys to fields.
type Config struct {
	Separator      string `toml:"separator"`       // Separator for re-rendered lines
	InputEncoding  string `toml:"input_encoding"`  // Encoding of files read
	OutputEncoding string `toml:"output_encoding"` // Encoding of files written; empty follows the input
	KeepLatin1     bool   `toml:"keep_latin1"`     // Write printable Latin-1 unescaped
	Timestamp      bool   `toml:"timestamp"`       // Prepend "#<date>" when converting JSON
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Separator:     types.DefaultSeparator,
		InputEncoding: types.EncodingLatin1,
		Timestamp:     true,
	}
}

// Load reads a TOML file from path over the current values. Unknown keys
// are rejected so typos don't go unnoticed.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown config key %q", path, undecoded[0].String())
	}
	return nil
}

// Validate checks the separator and both encoding names.
func (c *Config) Validate() error {
	if err := proptext.CheckSeparator(c.Separator); err != nil {
		return fmt.Errorf("separator: %w", err)
	}
	if _, err := proptext.CanonicalEncoding(c.InputEncoding); err != nil {
		return fmt.Errorf("input encoding: %w", err)
	}
	if _, err := proptext.CanonicalEncoding(c.OutputEncoding); err != nil {
		return fmt.Errorf("output encoding: %w", err)
	}
	return nil
}

// ParseOptions returns the parse options the config implies.
func (c *Config) ParseOptions() types.ParseOptions {
	return types.ParseOptions{InputEncoding: c.InputEncoding}
}

// DumpOptions returns the dump options the config implies.
func (c *Config) DumpOptions() types.DumpOptions {
	return types.DumpOptions{
		Separator:      c.Separator,
		OutputEncoding: c.OutputEncoding,
		KeepLatin1:     c.KeepLatin1,
	}
}
