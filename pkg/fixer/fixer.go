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

// 🔧 Fixer is a named transformation rule.
// Transform must be pure: no I/O, same output for the same input.
// Returning the input unchanged means the fixer did not apply.
type Fixer interface {
	Name() string
	Transform(content string) (string, error)
}

// 📍 PathFixer is a Fixer whose result also depends on the file path.
type PathFixer interface {
	Fixer
	TransformPath(path, content string) (string, error)
}

// Apply runs f on content, using TransformPath when f supports it.
func Apply(f Fixer, path, content string) (string, error) {
	if pf, ok := f.(PathFixer); ok {
		return pf.TransformPath(path, content)
	}
	return f.Transform(content)
}

// funcFixer adapts a plain function.
type funcFixer struct {
	name string
	fn   func(string) (string, error)
}

// 🏭 Func wraps fn as a Fixer called name
func Func(name string, fn func(content string) (string, error)) Fixer {
	return &funcFixer{name: name, fn: fn}
}

func (f *funcFixer) Name() string { return f.name }

func (f *funcFixer) Transform(content string) (string, error) { return f.fn(content) }
