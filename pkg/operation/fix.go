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

	"github.com/rs/zerolog"
	"github.com/walteh/codefix/pkg/errsink"
	"github.com/walteh/codefix/pkg/fixer"
	"github.com/walteh/codefix/pkg/source"
	"github.com/walteh/codefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📄 fixFile reads, transforms and persists one file. It returns nil when
// the file is unchanged or failed; failures go to the sink.
func (r *run) fixFile(ctx context.Context, fh source.FileHandle) *FixOutcome {
	r.files.Add(1)
	logger := loggerFor(ctx, fh)

	if err := r.watch.StartEvent(SectionFixFile, fh.Path); err != nil {
		logger.Warn().Err(err).Msg("file timing not recorded")
	} else {
		defer func() {
			if err := r.watch.StopEvent(SectionFixFile, fh.Path); err != nil {
				logger.Warn().Err(err).Msg("stopping file timer")
			}
		}()
	}

	raw, err := r.store.ReadFile(ctx, fh.Path)
	if err != nil {
		r.fail(logger, fh, errsink.KindRead, "", err)
		return nil
	}

	original := string(raw)
	content, applied, failedFixer, err := applyFixers(fh.MatchPath(), original, r.fixers)
	if err != nil {
		r.fail(logger, fh, errsink.KindTransform, failedFixer, err)
		return nil
	}

	if content == original {
		logger.Trace().Stringer("status", status.StatusUnchanged).Msg("file checked")
		return nil
	}

	st := status.StatusPending
	if !r.dryRun {
		if err := r.store.WriteFile(ctx, fh.Path, []byte(content)); err != nil {
			r.fail(logger, fh, errsink.KindWrite, "", err)
			return nil
		}
		st = status.StatusModified
	}

	logger.Debug().Stringer("status", st).Strs("fixers", applied).Msg("file fixed")

	return &FixOutcome{
		Path:     fh.Path,
		Rel:      fh.Rel,
		Applied:  applied,
		Original: original,
		Content:  content,
	}
}

func (r *run) fail(logger *zerolog.Logger, fh source.FileHandle, kind errsink.Kind, fixerName string, err error) {
	r.sink.Record(fh.Path, kind, fixerName, err)
	logger.Warn().
		Stringer("status", status.StatusFailed).
		Str("stage", string(kind)).
		Str("fixer", fixerName).
		Err(err).
		Msg("file not fixed")
}

// applyFixers folds content through fixers in order. On error the original
// content is returned with the name of the failing fixer; partial results
// of earlier fixers are discarded.
func applyFixers(path, original string, fixers []fixer.Fixer) (string, []string, string, error) {
	content := original
	var applied []string

	for _, f := range fixers {
		next, err := safeApply(f, path, content)
		if err != nil {
			return original, nil, f.Name(), err
		}
		if next != content {
			applied = append(applied, f.Name())
			content = next
		}
	}

	return content, applied, "", nil
}

func safeApply(f fixer.Fixer, path, content string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("%w: %s: %v", ErrFixerPanic, f.Name(), rec)
		}
	}()
	return fixer.Apply(f, path, content)
}

func loggerFor(ctx context.Context, fh source.FileHandle) *zerolog.Logger {
	logger := zerolog.Ctx(ctx).With().Str("file", fh.Path).Logger()
	return &logger
}
