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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/codefix/cmd/codefix/opts"
	"github.com/walteh/codefix/pkg/config"
	"github.com/walteh/codefix/pkg/fixer"
	"github.com/walteh/codefix/pkg/log"
	"github.com/walteh/codefix/pkg/operation"
	"github.com/walteh/codefix/pkg/source"
	"gitlab.com/tozd/go/errors"
)

type fixFlags struct {
	dryRun     bool
	noOrdering bool
	diff       bool
	fixers     []string
	jobs       int
}

// NewFixCmd creates the fix command
func NewFixCmd(rootOpts *opts.RootOpts) *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix <path>",
		Short: "Fix a file or every matching file below a directory",
		Long: `Fix applies the selected fixers to the given file, or to every file
below the given directory that the include and exclude globs select.
It will:
1. Load .codefix.{yaml,yml,hcl,json,toml} or the --config file
2. Register the built-in fixers, or only those named by --fixers
3. Append ordered_imports unless --no-ordering, then any configured replacements
4. Fix every file, writing changes unless --dry-run

Exit status is 0 when nothing changed, 1 when at least one file changed
(or would change with --dry-run) and 2 when the command itself failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, rootOpts, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "only report the files that would change")
	cmd.Flags().BoolVar(&flags.noOrdering, "no-ordering", false, "do not sort import statements")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print a unified diff for each changed file")
	cmd.Flags().StringSliceVar(&flags.fixers, "fixers", nil, "comma separated built-in fixers to run (default all)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files fixed concurrently")

	return cmd
}

func runFix(cmd *cobra.Command, rootOpts *opts.RootOpts, flags *fixFlags, path string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := config.Resolve(ctx, rootOpts.ConfigFile, rootOpts.WorkDir)
	if err != nil {
		return opts.CommandError(errors.Errorf("loading config: %w", err))
	}

	// Flags override the config file
	if cmd.Flags().Changed("fixers") {
		cfg.Fixers = flags.fixers
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	noOrdering := flags.noOrdering || cfg.NoOrdering

	logger.Debug().Stringer("config", cfg).Bool("no_ordering", noOrdering).Msg("resolved configuration")

	reg, err := BuildRegistry(cfg, noOrdering)
	if err != nil {
		return opts.CommandError(err)
	}

	src, err := source.Resolve(ctx, path, cfg.Policy())
	if err != nil {
		return opts.CommandError(errors.Errorf("resolving path: %w", err))
	}

	orch, err := operation.New(operation.Options{Jobs: cfg.Jobs})
	if err != nil {
		return opts.CommandError(errors.Errorf("creating orchestrator: %w", err))
	}

	report, runErr := orch.Run(ctx, src, reg, flags.dryRun)
	if report == nil {
		return opts.CommandError(runErr)
	}

	printer := log.NewPrinter(rootOpts.Out, rootOpts.Verbosity(), flags.diff)
	if err := printer.PrintReport(report); err != nil {
		logger.Warn().Err(err).Msg("printing report")
	}

	if runErr != nil {
		return opts.CommandError(runErr)
	}
	if !report.Clean() {
		return opts.Changed()
	}
	return nil
}

// BuildRegistry registers the configured built-ins, then ordered_imports
// unless noOrdering, then the configured replacements.
func BuildRegistry(cfg *config.Config, noOrdering bool) (*fixer.Registry, error) {
	reg := fixer.NewRegistry()

	if len(cfg.Fixers) == 0 {
		if err := reg.RegisterAll(); err != nil {
			return nil, errors.Errorf("registering fixers: %w", err)
		}
	} else if err := reg.RegisterSubset(cfg.Fixers); err != nil {
		return nil, errors.Errorf("registering fixers: %w", err)
	}

	if !noOrdering {
		if err := reg.Append(fixer.OrderedImports(cfg.OrderingPrefix)); err != nil {
			return nil, errors.Errorf("adding %s: %w", fixer.NameOrderedImports, err)
		}
	}

	if rules := cfg.ReplacementRules(); len(rules) > 0 {
		replace, err := fixer.NewReplace(rules)
		if err != nil {
			return nil, errors.Errorf("adding %s: %w", fixer.NameReplace, err)
		}
		if err := reg.Append(replace); err != nil {
			return nil, errors.Errorf("adding %s: %w", fixer.NameReplace, err)
		}
	}

	return reg, nil
}
