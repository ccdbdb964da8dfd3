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

	"github.com/walteh/codefix/pkg/errsink"
	"github.com/walteh/codefix/pkg/source"
	"golang.org/x/sync/errgroup"
)

// 🔄 runSync fixes files one at a time in discovery order
func (r *run) runSync(ctx context.Context, src source.Source) ([]FixOutcome, error) {
	var changed []FixOutcome

	for fh, err := range src.Files(ctx) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return changed, ctxErr
		}
		if err != nil {
			r.discoveryFailed(ctx, fh, err)
			continue
		}
		if outcome := r.fixFile(ctx, fh); outcome != nil {
			changed = append(changed, *outcome)
		}
	}

	return changed, ctx.Err()
}

// slot is written by exactly one worker and read after Wait.
type slot struct {
	outcome *FixOutcome
}

// ⚡ runAsync fixes files on a bounded worker pool. Outcomes are kept in
// discovery order no matter which worker finishes first.
func (r *run) runAsync(ctx context.Context, src source.Source) ([]FixOutcome, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	var slots []*slot
	var runErr error

	for fh, err := range src.Files(ctx) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			runErr = ctxErr
			break
		}
		if err != nil {
			r.discoveryFailed(ctx, fh, err)
			continue
		}

		s := &slot{}
		slots = append(slots, s)

		// blocks while every worker is busy
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			s.outcome = r.fixFile(gctx, fh)
			return nil
		})
	}

	// workers record failures instead of returning them
	_ = g.Wait()

	changed := make([]FixOutcome, 0, len(slots))
	for _, s := range slots {
		if s.outcome != nil {
			changed = append(changed, *s.outcome)
		}
	}

	if runErr == nil {
		runErr = ctx.Err()
	}
	return changed, runErr
}

func (r *run) discoveryFailed(ctx context.Context, fh source.FileHandle, err error) {
	r.files.Add(1)
	r.sink.Record(fh.Path, errsink.KindRead, "", err)
	loggerFor(ctx, fh).Warn().Err(err).Msg("file could not be discovered")
}
