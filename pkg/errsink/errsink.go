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

// Package errsink collects per-file failures of a single fix run.
package errsink

import (
	"fmt"
	"sync"
)

// 🏷️ Kind is the stage a file failed in
type Kind string

const (
	KindRead      Kind = "read"
	KindTransform Kind = "transform"
	KindWrite     Kind = "write"
)

// ❌ Record is one failed file
type Record struct {
	Path  string // File that failed
	Kind  Kind   // Stage that failed
	Fixer string // Fixer that raised the error, only set for KindTransform
	Err   error  // Underlying error
}

// Description returns a single line description of the failure.
func (r Record) Description() string {
	if r.Fixer != "" {
		return fmt.Sprintf("%s error in %s: %v", r.Kind, r.Fixer, r.Err)
	}
	return fmt.Sprintf("%s error: %v", r.Kind, r.Err)
}

// 📥 Sink accumulates records in the order they were recorded.
// It never fails and is safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	records []Record
}

// 🏭 New creates an empty sink
func New() *Sink {
	return &Sink{}
}

// Record appends one failure.
func (s *Sink) Record(path string, kind Kind, fixer string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, Record{
		Path:  path,
		Kind:  kind,
		Fixer: fixer,
		Err:   err,
	})
}

func (s *Sink) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Sink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// All returns a copy of every record, first recorded first.
func (s *Sink) All() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
