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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL. Replacements are written as
// repeated replacement blocks.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "codefix.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Fixers         []string `hcl:"fixers,optional"`
		NoOrdering     bool     `hcl:"no_ordering,optional"`
		OrderingPrefix string   `hcl:"ordering_prefix,optional"`
		Include        []string `hcl:"include,optional"`
		Exclude        []string `hcl:"exclude,optional"`
		SkipHidden     *bool    `hcl:"skip_hidden,optional"`
		Jobs           int      `hcl:"jobs,optional"`
		Replacements   []struct {
			Old  string  `hcl:"old"`
			New  string  `hcl:"new"`
			File *string `hcl:"file,optional"`
		} `hcl:"replacement,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Fixers:         hclCfg.Fixers,
		NoOrdering:     hclCfg.NoOrdering,
		OrderingPrefix: hclCfg.OrderingPrefix,
		Include:        hclCfg.Include,
		Exclude:        hclCfg.Exclude,
		SkipHidden:     hclCfg.SkipHidden,
		Jobs:           hclCfg.Jobs,
	}
	for _, r := range hclCfg.Replacements {
		cfg.Replacements = append(cfg.Replacements, Replacement{
			Old:  r.Old,
			New:  r.New,
			File: r.File,
		})
	}

	return cfg, nil
}
