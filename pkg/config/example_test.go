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

package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/codefix/pkg/config"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "codefix-example")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	configTOML := `
fixers = ["line_endings", "trim_trailing_whitespace"]
jobs = 4

[[replacements]]
old = "Copyright 2024"
new = "Copyright 2025"
file = "*.go"
`
	configPath := filepath.Join(dir, ".codefix.toml")
	if err := os.WriteFile(configPath, []byte(configTOML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(context.Background(), configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Fixers: %v\n", cfg.Fixers)
	fmt.Printf("Jobs: %d\n", cfg.Jobs)
	for _, rule := range cfg.ReplacementRules() {
		fmt.Printf("Replace %q with %q in %s\n", rule.FromText, rule.ToText, rule.FileFilterGlob)
	}
	// Output:
	// Fixers: [line_endings trim_trailing_whitespace]
	// Jobs: 4
	// Replace "Copyright 2024" with "Copyright 2025" in *.go
}
