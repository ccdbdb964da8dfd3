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
	"strings"
	"unicode/utf8"
)

const (
	NameStripBOM               = "strip_bom"
	NameLineEndings            = "line_endings"
	NameTrimTrailingWhitespace = "trim_trailing_whitespace"
	NameEnsureFinalNewline     = "ensure_final_newline"
)

const bom = "\uFEFF"

// 📚 Builtins returns every built-in fixer in canonical order.
func Builtins() []Fixer {
	return []Fixer{
		Func(NameStripBOM, textOnly(stripBOM)),
		Func(NameLineEndings, textOnly(normalizeLineEndings)),
		Func(NameTrimTrailingWhitespace, textOnly(trimTrailingWhitespace)),
		Func(NameEnsureFinalNewline, textOnly(ensureFinalNewline)),
	}
}

// BuiltinNames returns the built-in names in canonical order.
func BuiltinNames() []string {
	builtins := Builtins()
	names := make([]string, len(builtins))
	for i, f := range builtins {
		names[i] = f.Name()
	}
	return names
}

// textOnly leaves content that is not valid UTF-8 as it is.
func textOnly(fn func(string) string) func(string) (string, error) {
	return func(content string) (string, error) {
		if !utf8.ValidString(content) {
			return content, nil
		}
		return fn(content), nil
	}
}

func stripBOM(content string) string {
	return strings.TrimPrefix(content, bom)
}

func normalizeLineEndings(content string) string {
	if !strings.Contains(content, "\r") {
		return content
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

func trimTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// ensureFinalNewline leaves exactly one trailing newline on non-empty content.
func ensureFinalNewline(content string) string {
	if content == "" {
		return content
	}
	return strings.TrimRight(content, "\n") + "\n"
}
