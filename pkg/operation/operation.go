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
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/codefix/pkg/errsink"
	"github.com/walteh/codefix/pkg/fixer"
	"github.com/walteh/codefix/pkg/instrument"
	"github.com/walteh/codefix/pkg/source"
	"github.com/walteh/codefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

const (
	// SectionFixFiles spans a whole run.
	SectionFixFiles = "fix_files"
	// SectionFixFile groups one event per file, named by path.
	SectionFixFile = "fix_file"
)

// ErrFixerPanic wraps a panic raised inside a fixer.
var ErrFixerPanic = errors.Base("fixer panicked")

// 🔧 Options contains configuration for the orchestrator
type Options struct {
	// Store reads and writes files, defaults to the local file system
	Store status.Store
	// Jobs is the number of files fixed concurrently, 0 or 1 runs sequentially
	Jobs int
	// Stopwatch options, mostly for tests
	Stopwatch []instrument.Option
}

// 🎮 Orchestrator applies a registry of fixers to every file of a source
type Orchestrator struct {
	store     status.Store
	jobs      int
	watchOpts []instrument.Option
}

// 🏭 New creates a new orchestrator with the given options
func New(opts Options) (*Orchestrator, error) {
	if opts.Jobs < 0 {
		return nil, errors.Errorf("jobs must not be negative, got %d", opts.Jobs)
	}
	store := opts.Store
	if store == nil {
		store = status.NewOSStore()
	}
	jobs := opts.Jobs
	if jobs == 0 {
		jobs = 1
	}
	return &Orchestrator{
		store:     store,
		jobs:      jobs,
		watchOpts: opts.Stopwatch,
	}, nil
}

// run holds the state of one Run call. Nothing in it outlives the call.
type run struct {
	store  status.Store
	fixers []fixer.Fixer
	dryRun bool
	jobs   int
	sink   *errsink.Sink
	watch  *instrument.Stopwatch
	files  atomic.Int64
}

// 🏃 Run fixes every file of src with the fixers of reg.
//
// Errors that happen before the first file (an unpopulated registry) are
// returned without a report. Failures of individual files never stop the
// run; they are listed in Report.Failures. A cancelled context stops the
// run after the files in flight and returns the partial report together
// with the context error.
func (o *Orchestrator) Run(ctx context.Context, src source.Source, reg *fixer.Registry, dryRun bool) (*Report, error) {
	fixers, err := reg.List()
	if err != nil {
		return nil, errors.Errorf("listing fixers: %w", err)
	}

	logger := zerolog.Ctx(ctx).With().
		Str("run_id", uuid.NewString()).
		Str("root", src.Root()).
		Bool("dry_run", dryRun).
		Logger()
	ctx = logger.WithContext(ctx)

	r := &run{
		store:  o.store,
		fixers: fixers,
		dryRun: dryRun,
		jobs:   o.jobs,
		sink:   errsink.New(),
		watch:  instrument.New(o.watchOpts...),
	}

	logger.Debug().Strs("fixers", reg.Names()).Int("jobs", r.jobs).Msg("starting fix run")

	if err := r.watch.StartSection(SectionFixFiles); err != nil {
		return nil, errors.Errorf("starting run timer: %w", err)
	}

	var changed []FixOutcome
	var runErr error
	if r.jobs > 1 {
		changed, runErr = r.runAsync(ctx, src)
	} else {
		changed, runErr = r.runSync(ctx, src)
	}

	if err := r.watch.StopSection(SectionFixFiles); err != nil {
		return nil, errors.Errorf("stopping run timer: %w", err)
	}

	report := &Report{
		Changed:  changed,
		Failures: r.sink.All(),
		Timings:  r.watch.Snapshot(),
		DryRun:   dryRun,
		Files:    int(r.files.Load()),
	}

	logger.Info().
		Int("files", report.Files).
		Int("changed", len(report.Changed)).
		Int("failed", len(report.Failures)).
		Dur("duration", report.Duration()).
		Msg("fix run complete")

	if runErr != nil {
		return report, errors.Errorf("fix run interrupted: %w", runErr)
	}
	return report, nil
}
