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

package operation

import (
	"time"

	"github.com/walteh/codefix/pkg/errsink"
	"github.com/walteh/codefix/pkg/instrument"
)

// ✅ FixOutcome is one changed file
type FixOutcome struct {
	Path     string   // Path as discovered
	Rel      string   // Path relative to the source root
	Applied  []string // Fixers that changed the content, in application order
	Original string   // Content as read
	Content  string   // Content after every fixer
}

// 📊 Report is the result of one run
type Report struct {
	Changed  []FixOutcome     // changed files, in discovery order
	Failures []errsink.Record // failed files, in recording order
	Timings  instrument.Snapshot
	DryRun   bool
	Files    int // files visited, including failed ones
}

// Clean reports whether no file changed. Failures do not count.
func (r *Report) Clean() bool {
	return len(r.Changed) == 0
}

// Outcome looks up a changed file by path.
func (r *Report) Outcome(path string) (FixOutcome, bool) {
	for _, o := range r.Changed {
		if o.Path == path {
			return o, true
		}
	}
	return FixOutcome{}, false
}

// Duration of the whole run.
func (r *Report) Duration() time.Duration {
	m, _ := r.Timings.Section(SectionFixFiles)
	return m.Duration
}

// Memory is the high-water mark of the run, in bytes.
func (r *Report) Memory() uint64 {
	m, _ := r.Timings.Section(SectionFixFiles)
	return m.Memory
}

// FileTimings returns one measurement per fixed file, in stop order.
func (r *Report) FileTimings() []instrument.Measurement {
	return r.Timings.EventsOf(SectionFixFile)
}
