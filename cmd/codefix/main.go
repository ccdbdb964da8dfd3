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
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/walteh/codefix/cmd/codefix/opts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], &opts.RootOpts{
		WorkDir: ".",
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
	})
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, rootOpts *opts.RootOpts) int {
	cmd := newRootCmd(rootOpts)
	cmd.SetArgs(args)
	cmd.SetOut(rootOpts.Out)
	cmd.SetErr(rootOpts.ErrOut)

	err := cmd.ExecuteContext(ctx)
	if opts.Reportable(err) {
		fmt.Fprintf(rootOpts.ErrOut, "Error: %v\n", err)
	}
	return opts.ExitCode(err)
}
