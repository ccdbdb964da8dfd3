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

package log

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/walteh/codefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// Diff returns the unified diff between the original and fixed content of
// a changed file.
func Diff(outcome operation.FixOutcome) (string, error) {
	name := outcome.Rel
	if name == "" {
		name = outcome.Path
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(outcome.Original),
		B:        splitLines(outcome.Content),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
	if err != nil {
		return "", errors.Errorf("diffing %s: %w", outcome.Path, err)
	}
	return diff, nil
}

func (p *Printer) printDiff(outcome operation.FixOutcome) error {
	diff, err := Diff(outcome)
	if err != nil {
		return err
	}
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case len(line) >= 3 && (line[:3] == "---" || line[:3] == "+++"):
			fmt.Fprint(p.out, color.New(color.Bold).Sprint(line))
		case len(line) > 0 && line[0] == '+':
			fmt.Fprint(p.out, color.GreenString("%s", line))
		case len(line) > 0 && line[0] == '-':
			fmt.Fprint(p.out, color.RedString("%s", line))
		case len(line) >= 2 && line[:2] == "@@":
			fmt.Fprint(p.out, color.CyanString("%s", line))
		default:
			fmt.Fprint(p.out, line)
		}
	}
	return nil
}

const noNewline = "\\ No newline at end of file\n"

// splitLines keeps line terminators so a missing final newline shows up in
// the diff.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n" + noNewline
	return lines
}
