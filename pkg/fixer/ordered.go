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

package fixer

import (
	"slices"
	"strings"
)

const (
	NameOrderedImports = "ordered_imports"

	// DefaultImportPrefix matches PHP style `use Foo\Bar;` statements.
	DefaultImportPrefix = "use "
)

// 🔤 orderedImports sorts each contiguous block of import-like lines
type orderedImports struct {
	prefix string
}

// OrderedImports returns a fixer that sorts every contiguous run of lines
// starting with prefix, case-insensitively. An empty prefix uses
// DefaultImportPrefix.
func OrderedImports(prefix string) Fixer {
	if prefix == "" {
		prefix = DefaultImportPrefix
	}
	return &orderedImports{prefix: prefix}
}

func (o *orderedImports) Name() string { return NameOrderedImports }

func (o *orderedImports) Transform(content string) (string, error) {
	lines := strings.Split(content, "\n")

	for start := 0; start < len(lines); {
		if !strings.HasPrefix(lines[start], o.prefix) {
			start++
			continue
		}
		end := start + 1
		for end < len(lines) && strings.HasPrefix(lines[end], o.prefix) {
			end++
		}
		if end-start > 1 {
			slices.SortStableFunc(lines[start:end], compareImports)
		}
		start = end
	}

	return strings.Join(lines, "\n"), nil
}

func compareImports(a, b string) int {
	if c := strings.Compare(importKey(a), importKey(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// importKey drops the statement terminator so `use A;` sorts before `use A\B;`.
func importKey(line string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ";"))
}
