// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/codefix/pkg/fixer"
	"github.com/walteh/codefix/pkg/source"
	"github.com/walteh/codefix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNoParser is returned for config files with an unsupported extension.
var ErrNoParser = errors.Base("no parser for config file")

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement represents a string replacement in files
type Replacement struct {
	Old  string  `json:"old" yaml:"old" toml:"old"`                                  // Original string to replace
	New  string  `json:"new" yaml:"new" toml:"new"`                                  // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"` // Optional glob of files to apply to
}

// 📚 Config represents a project configuration file
type Config struct {
	Fixers         []string      `json:"fixers,omitempty" yaml:"fixers,omitempty" toml:"fixers,omitempty"`
	NoOrdering     bool          `json:"no_ordering,omitempty" yaml:"no_ordering,omitempty" toml:"no_ordering,omitempty"`
	OrderingPrefix string        `json:"ordering_prefix,omitempty" yaml:"ordering_prefix,omitempty" toml:"ordering_prefix,omitempty"`
	Include        []string      `json:"include,omitempty" yaml:"include,omitempty" toml:"include,omitempty"`
	Exclude        []string      `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	SkipHidden     *bool         `json:"skip_hidden,omitempty" yaml:"skip_hidden,omitempty" toml:"skip_hidden,omitempty"`
	Jobs           int           `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs,omitempty"`
	Replacements   []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" toml:"replacements,omitempty"`

	location string
}

// 🆕 Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	// defaults always validate
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: %s", ErrNoParser, path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config %s: %w", path, err)
	}
	cfg.location = path

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}

	for i, name := range cfg.Fixers {
		cfg.Fixers[i] = strings.TrimSpace(name)
	}

	for _, pattern := range cfg.Include {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("include: invalid glob %q", pattern)
		}
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude: invalid glob %q", pattern)
		}
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.ReplacementRules()); err != nil {
		return errors.Errorf("replacements: %w", err)
	}

	// Set defaults
	if cfg.OrderingPrefix == "" {
		cfg.OrderingPrefix = fixer.DefaultImportPrefix
	}
	if len(cfg.Include) == 0 {
		cfg.Include = append([]string(nil), source.DefaultInclude...)
	}
	if cfg.Exclude == nil {
		cfg.Exclude = append([]string(nil), source.DefaultExclude...)
	}
	if cfg.SkipHidden == nil {
		skip := true
		cfg.SkipHidden = &skip
	}

	return nil
}

// Location is the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🗂️ Policy returns the discovery policy described by the config
func (cfg *Config) Policy() source.Policy {
	skip := true
	if cfg.SkipHidden != nil {
		skip = *cfg.SkipHidden
	}
	return source.Policy{
		Include:    append([]string(nil), cfg.Include...),
		Exclude:    append([]string(nil), cfg.Exclude...),
		SkipHidden: skip,
	}
}

// ReplacementRules converts the configured replacements into text rules.
func (cfg *Config) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		rule := text.ReplacementRule{FromText: r.Old, ToText: r.New}
		if r.File != nil {
			rule.FileFilterGlob = *r.File
		}
		rules = append(rules, rule)
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	location := cfg.location
	if location == "" {
		location = "defaults"
	}
	fixers := "all"
	if len(cfg.Fixers) > 0 {
		fixers = strings.Join(cfg.Fixers, ",")
	}
	return fmt.Sprintf("%s: fixers=%s jobs=%d replacements=%d", filepath.ToSlash(location), fixers, cfg.Jobs, len(cfg.Replacements))
}
