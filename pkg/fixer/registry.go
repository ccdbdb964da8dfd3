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

package fixer

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnknownFixer matches every *UnknownFixerError.
	ErrUnknownFixer = errors.Base("unknown fixer")
	// ErrInvalidRegistrationState is returned when the registry is used out of order.
	ErrInvalidRegistrationState = errors.Base("invalid registration state")
	// ErrDuplicateFixer is returned when a second fixer uses an existing name.
	ErrDuplicateFixer = errors.Base("duplicate fixer")
	// ErrEmptySelection is returned when a subset names no fixer at all.
	ErrEmptySelection = errors.Base("no fixers selected")
)

// ❓ UnknownFixerError lists requested names that are not built-ins
type UnknownFixerError struct {
	Names []string
}

func (e *UnknownFixerError) Error() string {
	return fmt.Sprintf("%s: %s (available: %s)", ErrUnknownFixer, strings.Join(e.Names, ", "), strings.Join(BuiltinNames(), ", "))
}

func (e *UnknownFixerError) Is(target error) bool {
	return target == ErrUnknownFixer
}

// 📋 Registry is the ordered, name-unique set of fixers for one run.
// Exactly one of RegisterAll or RegisterSubset must be called before
// Append or List. It is not safe for concurrent mutation; once populated
// it is only read.
type Registry struct {
	fixers     []Fixer
	names      map[string]struct{}
	registered bool
}

// 🏭 NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// RegisterAll registers every built-in in canonical order.
func (r *Registry) RegisterAll() error {
	if r.registered {
		return errors.Errorf("%w: built-in fixers already registered", ErrInvalidRegistrationState)
	}
	r.registered = true
	for _, f := range Builtins() {
		r.add(f)
	}
	return nil
}

// RegisterSubset registers the named built-ins, keeping canonical order.
// Names are trimmed and blank names ignored. Nothing is registered if any
// name is unknown or if no name is left.
func (r *Registry) RegisterSubset(names []string) error {
	if r.registered {
		return errors.Errorf("%w: built-in fixers already registered", ErrInvalidRegistrationState)
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		wanted[name] = struct{}{}
	}

	if len(wanted) == 0 {
		return errors.WithStack(ErrEmptySelection)
	}

	builtins := Builtins()
	selected := make([]Fixer, 0, len(wanted))
	for _, f := range builtins {
		if _, ok := wanted[f.Name()]; ok {
			selected = append(selected, f)
			delete(wanted, f.Name())
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return errors.WithStack(&UnknownFixerError{Names: unknown})
	}

	r.registered = true
	for _, f := range selected {
		r.add(f)
	}
	return nil
}

// Append adds f after every fixer registered so far.
func (r *Registry) Append(f Fixer) error {
	if !r.registered {
		return errors.Errorf("%w: append before built-in registration", ErrInvalidRegistrationState)
	}
	if f == nil || f.Name() == "" {
		return errors.Errorf("fixer must have a name")
	}
	if _, ok := r.names[f.Name()]; ok {
		return errors.Errorf("%w: %s", ErrDuplicateFixer, f.Name())
	}
	r.add(f)
	return nil
}

// List returns the registered fixers in application order.
func (r *Registry) List() ([]Fixer, error) {
	if !r.registered {
		return nil, errors.Errorf("%w: no fixers registered", ErrInvalidRegistrationState)
	}
	return append([]Fixer(nil), r.fixers...), nil
}

// Names returns the registered names in application order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.fixers))
	for i, f := range r.fixers {
		names[i] = f.Name()
	}
	return names
}

func (r *Registry) add(f Fixer) {
	r.fixers = append(r.fixers, f)
	r.names[f.Name()] = struct{}{}
}
