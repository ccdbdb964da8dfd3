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

package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/codefix/cmd/codefix/commands"
	"github.com/walteh/codefix/cmd/codefix/opts"
	"github.com/walteh/codefix/pkg/log"
)

// newRootCmd creates the codefix command tree
func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "codefix",
		Short:         "Apply ordered source fixers to a file or a directory tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(log.NewContext(cmd.Context(), rootOpts.ErrOut, rootOpts.Debug))
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		newVersionCmd(rootOpts),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "", "config file path (default .codefix.* in the working directory)")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().CountVarP(&rootOpts.Verbose, "verbose", "v", "increase report verbosity (-v fixers, -vv timings)")
}
