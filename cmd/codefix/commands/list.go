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
	"github.com/spf13/cobra"
	"github.com/walteh/codefix/cmd/codefix/opts"
	"github.com/walteh/codefix/pkg/fixer"
	"github.com/walteh/codefix/pkg/log"
)

// NewListCmd creates the list command
func NewListCmd(rootOpts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in fixers in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := log.NewPrinter(rootOpts.Out, rootOpts.Verbosity(), false)
			printer.PrintFixers(fixer.BuiltinNames())
			if rootOpts.Verbosity() >= log.VerbosityVerbose {
				printer.PrintFixers([]string{
					fixer.NameOrderedImports + " (unless --no-ordering)",
					fixer.NameReplace + " (when replacements are configured)",
				})
			}
			return nil
		},
	}
}
