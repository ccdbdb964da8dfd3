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

package source

import (
	"context"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrPathNotFound is returned when the path is neither a file nor a readable directory.
var ErrPathNotFound = errors.Base("path not found")

// 📄 FileHandle identifies one discovered file
type FileHandle struct {
	Path string // Path as passed to the file system
	Rel  string // Slash separated path relative to the source root
}

// MatchPath is the path file globs are matched against.
func (fh FileHandle) MatchPath() string {
	if fh.Rel != "" {
		return fh.Rel
	}
	return filepath.ToSlash(fh.Path)
}

// 🔌 Source is a lazily evaluated sequence of files
type Source interface {
	// Root returns the path the source was resolved from
	Root() string
	// Files yields every file in discovery order. A non-nil error is attached
	// to the entry that could not be visited; iteration may continue after it.
	Files(ctx context.Context) iter.Seq2[FileHandle, error]
}

// 🎯 Resolve builds a Source for pathSpec
func Resolve(ctx context.Context, pathSpec string, policy Policy) (Source, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(pathSpec)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %v", ErrPathNotFound, pathSpec, err)
	}

	if info.Mode().IsRegular() {
		logger.Debug().Str("path", pathSpec).Msg("resolved single file")
		return &SingleFile{path: pathSpec}, nil
	}

	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a regular file or directory", ErrPathNotFound, pathSpec)
	}

	// stat succeeds on directories we cannot list
	dir, err := os.Open(pathSpec)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %v", ErrPathNotFound, pathSpec, err)
	}
	if _, err := dir.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		dir.Close()
		return nil, errors.Errorf("%w: %s: %v", ErrPathNotFound, pathSpec, err)
	}
	dir.Close()

	if err := policy.Validate(); err != nil {
		return nil, errors.Errorf("validating discovery policy: %w", err)
	}

	logger.Debug().Str("path", pathSpec).Msg("resolved directory tree")
	return &DirectoryTree{root: pathSpec, policy: policy}, nil
}

// 📄 SingleFile is a source of exactly one file
type SingleFile struct {
	path string
}

// NewSingleFile returns a source yielding path, without checking it exists
func NewSingleFile(path string) *SingleFile {
	return &SingleFile{path: path}
}

func (s *SingleFile) Root() string { return s.path }

func (s *SingleFile) Files(ctx context.Context) iter.Seq2[FileHandle, error] {
	return func(yield func(FileHandle, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(FileHandle{Path: s.path}, err)
			return
		}
		yield(FileHandle{Path: s.path, Rel: s.rel()}, nil)
	}
}

// rel keeps a relative path as given so directory globs still apply to it.
func (s *SingleFile) rel() string {
	if filepath.IsAbs(s.path) {
		return filepath.Base(s.path)
	}
	return filepath.ToSlash(filepath.Clean(s.path))
}

// 🌳 DirectoryTree is a source of every policy-matching file below a root
type DirectoryTree struct {
	root   string
	policy Policy
}

// NewDirectoryTree returns a source walking root, without checking it exists
func NewDirectoryTree(root string, policy Policy) *DirectoryTree {
	return &DirectoryTree{root: root, policy: policy}
}

func (t *DirectoryTree) Root() string { return t.root }

func (t *DirectoryTree) Files(ctx context.Context) iter.Seq2[FileHandle, error] {
	return func(yield func(FileHandle, error) bool) {
		stopped := false

		err := filepath.WalkDir(t.root, func(path string, d fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if walkErr != nil {
				if path == t.root {
					return walkErr
				}
				if d != nil && d.IsDir() && t.policy.skipDir(t.rel(path)) {
					return fs.SkipDir
				}
				if !yield(FileHandle{Path: path, Rel: t.rel(path)}, errors.Errorf("walking %s: %w", path, walkErr)) {
					stopped = true
					return fs.SkipAll
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if path == t.root {
				return nil
			}

			rel := t.rel(path)

			if d.IsDir() {
				if t.policy.skipDir(rel) {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !t.policy.Match(rel) {
				return nil
			}

			if !yield(FileHandle{Path: path, Rel: rel}, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})

		if err != nil && !stopped {
			if ctxErr := ctx.Err(); ctxErr != nil {
				yield(FileHandle{Path: t.root}, ctxErr)
				return
			}
			yield(FileHandle{Path: t.root}, errors.Errorf("walking %s: %w", t.root, err))
		}
	}
}

func (t *DirectoryTree) rel(path string) string {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
