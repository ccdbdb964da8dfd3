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
	"iter"

	"github.com/walteh/codefix/pkg/source"
)

// listSource yields a fixed list of paths, attaching errs to some of them.
type listSource struct {
	paths []string
	errs  map[string]error
}

func (s *listSource) Root() string { return "." }

func (s *listSource) Files(ctx context.Context) iter.Seq2[source.FileHandle, error] {
	return func(yield func(source.FileHandle, error) bool) {
		for _, p := range s.paths {
			if !yield(source.FileHandle{Path: p, Rel: p}, s.errs[p]) {
				return
			}
		}
	}
}
