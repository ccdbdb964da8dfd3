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
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/walteh/codefix/pkg/errsink"
	"github.com/walteh/codefix/pkg/instrument"
	"github.com/walteh/codefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🔊 Verbosity controls how much of a report is printed
type Verbosity int

const (
	VerbosityNormal  Verbosity = iota // changed files and summary
	VerbosityVerbose                  // adds the fixers applied to each file and failure causes
	VerbosityDebug                    // adds the per-file timing table
)

// FromCount maps a repeated -v flag to a verbosity.
func FromCount(n int) Verbosity {
	switch {
	case n <= 0:
		return VerbosityNormal
	case n == 1:
		return VerbosityVerbose
	default:
		return VerbosityDebug
	}
}

const bytesPerMB = 1024 * 1024

// 🖨️ Printer writes run reports for humans
type Printer struct {
	out       io.Writer
	verbosity Verbosity
	diff      bool
}

// 🏭 NewPrinter creates a printer writing to out. With diff set, every
// changed file is followed by its unified diff.
func NewPrinter(out io.Writer, verbosity Verbosity, diff bool) *Printer {
	return &Printer{out: out, verbosity: verbosity, diff: diff}
}

// 📝 PrintReport prints the changed files, optional timings, the summary
// line and the failed files, in that order.
func (p *Printer) PrintReport(report *operation.Report) error {
	for i, outcome := range report.Changed {
		line := fmt.Sprintf("%4d) %s", i+1, outcome.Path)
		if p.verbosity >= VerbosityVerbose && len(outcome.Applied) > 0 {
			line += " (" + color.YellowString(strings.Join(outcome.Applied, ", ")) + ")"
		}
		fmt.Fprintln(p.out, line)

		if p.diff {
			if err := p.printDiff(outcome); err != nil {
				return err
			}
		}
	}

	if p.verbosity >= VerbosityDebug {
		if err := p.printTimings(report.FileTimings()); err != nil {
			return err
		}
	}

	verb := "Fixed"
	if report.DryRun {
		verb = "Checked"
	}
	fmt.Fprintf(p.out, "%s all files in %.3f seconds, %.3f MB memory used\n",
		verb, report.Duration().Seconds(), float64(report.Memory())/bytesPerMB)

	if len(report.Failures) > 0 {
		p.printFailures(report.Failures)
	}

	return nil
}

func (p *Printer) printTimings(timings []instrument.Measurement) error {
	fmt.Fprintln(p.out, "Fixing time per file:")

	data := pterm.TableData{{"Seconds", "File"}}
	for _, m := range timings {
		data = append(data, []string{fmt.Sprintf("%.3f", m.Duration.Seconds()), m.Name})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering timing table: %w", err)
	}
	fmt.Fprintln(p.out, table)
	fmt.Fprintln(p.out)
	return nil
}

func (p *Printer) printFailures(failures []errsink.Record) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, color.RedString("Files that were not fixed due to internal error:"))
	for i, rec := range failures {
		line := fmt.Sprintf("%4d) %s", i+1, rec.Path)
		if p.verbosity >= VerbosityVerbose {
			line += " " + color.New(color.Faint).Sprintf("[%s]", rec.Description())
		}
		fmt.Fprintln(p.out, line)
	}
}

// 📚 PrintFixers lists fixer names, one per line
func (p *Printer) PrintFixers(names []string) {
	for _, name := range names {
		fmt.Fprintln(p.out, name)
	}
}
