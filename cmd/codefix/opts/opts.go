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

package opts

import (
	"fmt"
	"io"

	"github.com/walteh/codefix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// Exit codes of the codefix binary.
const (
	ExitClean        = 0 // no file changed
	ExitChanged      = 1 // at least one file changed, or would change in a dry run
	ExitCommandError = 2 // bad arguments, missing path, unknown fixer, bad config
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string // explicit config file, empty to look in WorkDir
	WorkDir    string // directory searched for a config file
	Debug      bool
	Verbose    int // number of -v flags

	Out    io.Writer // report output
	ErrOut io.Writer // logs and errors
}

// Verbosity of the printed report.
func (o *RootOpts) Verbosity() log.Verbosity {
	return log.FromCount(o.Verbose)
}

// ExitError carries an exit code out of a command
type ExitError struct {
	Code int
	Err  error // nil for exits that only signal a result
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// CommandError wraps err with ExitCommandError.
func CommandError(err error) error {
	return &ExitError{Code: ExitCommandError, Err: err}
}

// Changed is returned by commands that changed files without failing.
func Changed() error {
	return &ExitError{Code: ExitChanged}
}

// ExitCode maps a command error to the process exit status. Errors that
// do not carry a code, such as flag parsing errors, are command errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitClean
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Reportable reports whether err should be printed to the user.
func Reportable(err error) bool {
	if err == nil {
		return false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Err != nil
	}
	return true
}
