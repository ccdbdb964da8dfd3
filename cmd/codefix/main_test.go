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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/codefix/cmd/codefix/opts"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, workDir string, args ...string) cliResult {
	t.Helper()
	color.NoColor = true

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(context.Background(), args, &opts.RootOpts{
		WorkDir: workDir,
		Out:     stdout,
		ErrOut:  stderr,
	})
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating parent directories should succeed")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing file should succeed")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err, "reading file should succeed")
	return string(content)
}

func TestFixCommand(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		config     map[string]string // written to the work dir
		args       func(root string) []string
		wantCode   int
		wantFiles  map[string]string
		wantStdout []string
		wantStderr []string
	}{
		{
			name:       "clean_tree",
			files:      map[string]string{"a.go": "package a\n"},
			args:       func(root string) []string { return []string{"fix", root} },
			wantCode:   opts.ExitClean,
			wantFiles:  map[string]string{"a.go": "package a\n"},
			wantStdout: []string{"Fixed all files in"},
		},
		{
			name:       "changed_tree",
			files:      map[string]string{"a.txt": "a \nb", "b.txt": "fine\n"},
			args:       func(root string) []string { return []string{"fix", root} },
			wantCode:   opts.ExitChanged,
			wantFiles:  map[string]string{"a.txt": "a\nb\n", "b.txt": "fine\n"},
			wantStdout: []string{"   1) ", "a.txt", "Fixed all files in"},
		},
		{
			name:       "dry_run_leaves_files",
			files:      map[string]string{"a.txt": "a \nb"},
			args:       func(root string) []string { return []string{"fix", "--dry-run", root} },
			wantCode:   opts.ExitChanged,
			wantFiles:  map[string]string{"a.txt": "a \nb"},
			wantStdout: []string{"a.txt", "Checked all files in"},
		},
		{
			name:  "dry_run_diff",
			files: map[string]string{"a.txt": "a \nb\n"},
			args: func(root string) []string {
				return []string{"fix", "--dry-run", "--diff", root}
			},
			wantCode:   opts.ExitChanged,
			wantFiles:  map[string]string{"a.txt": "a \nb\n"},
			wantStdout: []string{"--- a/a.txt", "+++ b/a.txt", "-a \n", "+a\n"},
		},
		{
			name:  "verbose_lists_fixers",
			files: map[string]string{"a.php": "<?php\r\nuse B;\r\nuse A;\r\n"},
			args: func(root string) []string {
				return []string{"fix", "-v", root}
			},
			wantCode:   opts.ExitChanged,
			wantFiles:  map[string]string{"a.php": "<?php\nuse A;\nuse B;\n"},
			wantStdout: []string{"(line_endings, ordered_imports)"},
		},
		{
			name:  "no_ordering",
			files: map[string]string{"a.php": "<?php\nuse B;\nuse A;\n"},
			args: func(root string) []string {
				return []string{"fix", "--no-ordering", root}
			},
			wantCode:  opts.ExitClean,
			wantFiles: map[string]string{"a.php": "<?php\nuse B;\nuse A;\n"},
		},
		{
			name:  "fixers_subset",
			files: map[string]string{"a.txt": "a  \r\nb"},
			args: func(root string) []string {
				return []string{"fix", "--fixers", "line_endings", root}
			},
			wantCode:  opts.ExitChanged,
			wantFiles: map[string]string{"a.txt": "a  \nb"},
		},
		{
			name:  "unknown_fixer_touches_nothing",
			files: map[string]string{"a.txt": "a  "},
			args: func(root string) []string {
				return []string{"fix", "--fixers", "line_endings,no_such_fixer", root}
			},
			wantCode:   opts.ExitCommandError,
			wantFiles:  map[string]string{"a.txt": "a  "},
			wantStderr: []string{"no_such_fixer"},
		},
		{
			name:  "blank_fixers_selection",
			files: map[string]string{"a.php": "use B;\nuse A;\n"},
			args: func(root string) []string {
				return []string{"fix", "--fixers", ",", root}
			},
			wantCode:   opts.ExitCommandError,
			wantFiles:  map[string]string{"a.php": "use B;\nuse A;\n"},
			wantStderr: []string{"no fixers selected"},
		},
		{
			name: "missing_path",
			args: func(root string) []string {
				return []string{"fix", filepath.Join(root, "missing")}
			},
			wantCode:   opts.ExitCommandError,
			wantStderr: []string{"path not found"},
		},
		{
			name:       "missing_argument",
			args:       func(root string) []string { return []string{"fix"} },
			wantCode:   opts.ExitCommandError,
			wantStderr: []string{"accepts 1 arg"},
		},
		{
			name:       "unknown_flag",
			args:       func(root string) []string { return []string{"fix", "--nope", root} },
			wantCode:   opts.ExitCommandError,
			wantStderr: []string{"unknown flag"},
		},
		{
			name:  "config_from_work_dir",
			files: map[string]string{"a.txt": "a  \r\nb"},
			config: map[string]string{
				".codefix.yaml": "fixers: [line_endings, ensure_final_newline]\n",
			},
			args:      func(root string) []string { return []string{"fix", root} },
			wantCode:  opts.ExitChanged,
			wantFiles: map[string]string{"a.txt": "a  \nb\n"},
		},
		{
			name:  "flag_overrides_config",
			files: map[string]string{"a.txt": "a  \nb"},
			config: map[string]string{
				".codefix.yaml": "fixers: [line_endings, ensure_final_newline]\n",
			},
			args: func(root string) []string {
				return []string{"fix", "--fixers", "trim_trailing_whitespace", root}
			},
			wantCode:  opts.ExitChanged,
			wantFiles: map[string]string{"a.txt": "a\nb"},
		},
		{
			name:  "config_replacements",
			files: map[string]string{"a.go": "// Copyright 2024\n", "b.md": "Copyright 2024\n"},
			config: map[string]string{
				".codefix.hcl": `
replacement {
  old  = "2024"
  new  = "2025"
  file = "*.go"
}
`,
			},
			args:      func(root string) []string { return []string{"fix", root} },
			wantCode:  opts.ExitChanged,
			wantFiles: map[string]string{"a.go": "// Copyright 2025\n", "b.md": "Copyright 2024\n"},
		},
		{
			name: "config_replacements_directory_glob",
			files: map[string]string{
				"src/a.go":     "// Copyright 2024\n",
				"src/sub/b.go": "// Copyright 2024\n",
				"c.go":         "// Copyright 2024\n",
			},
			config: map[string]string{
				".codefix.hcl": `
replacement {
  old  = "2024"
  new  = "2025"
  file = "src/*.go"
}
`,
			},
			args:     func(root string) []string { return []string{"fix", root} },
			wantCode: opts.ExitChanged,
			wantFiles: map[string]string{
				"src/a.go":     "// Copyright 2025\n",
				"src/sub/b.go": "// Copyright 2024\n",
				"c.go":         "// Copyright 2024\n",
			},
		},
		{
			name:  "invalid_config",
			files: map[string]string{"a.txt": "a  "},
			config: map[string]string{
				".codefix.toml": "jobs = -1\n",
			},
			args:       func(root string) []string { return []string{"fix", root} },
			wantCode:   opts.ExitCommandError,
			wantFiles:  map[string]string{"a.txt": "a  "},
			wantStderr: []string{"loading config", "jobs must not be negative"},
		},
		{
			name:  "parallel_jobs",
			files: map[string]string{"a.txt": "a ", "b.txt": "b ", "c.txt": "c\n"},
			args: func(root string) []string {
				return []string{"fix", "--jobs", "3", root}
			},
			wantCode:  opts.ExitChanged,
			wantFiles: map[string]string{"a.txt": "a\n", "b.txt": "b\n", "c.txt": "c\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			workDir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(root, name), content)
			}
			for name, content := range tt.config {
				writeFile(t, filepath.Join(workDir, name), content)
			}

			res := runCLI(t, workDir, tt.args(root)...)

			assert.Equal(t, tt.wantCode, res.code, "exit code should match, stderr: %s", res.stderr)
			for name, want := range tt.wantFiles {
				assert.Equal(t, want, readFile(t, filepath.Join(root, name)), "content of %s should match", name)
			}
			for _, want := range tt.wantStdout {
				assert.Contains(t, res.stdout, want, "stdout should contain %q", want)
			}
			for _, want := range tt.wantStderr {
				assert.Contains(t, res.stderr, want, "stderr should contain %q", want)
			}
		})
	}
}

func TestFixCommandExplicitConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a  ")
	configPath := filepath.Join(t.TempDir(), "custom.json")
	writeFile(t, configPath, `{"fixers": ["line_endings"]}`)

	res := runCLI(t, t.TempDir(), "fix", "--config", configPath, root)

	assert.Equal(t, opts.ExitClean, res.code, "only line_endings should run, stderr: %s", res.stderr)
	assert.Equal(t, "a  ", readFile(t, filepath.Join(root, "a.txt")))
}

func TestFixCommandSingleFile(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "one.custom")
	writeFile(t, target, "x  ")
	writeFile(t, filepath.Join(root, "two.txt"), "y  ")

	res := runCLI(t, t.TempDir(), "fix", target)

	assert.Equal(t, opts.ExitChanged, res.code, "a file path bypasses the include globs")
	assert.Equal(t, "x\n", readFile(t, target))
	assert.Equal(t, "y  ", readFile(t, filepath.Join(root, "two.txt")), "siblings should be untouched")
}

func TestListCommand(t *testing.T) {
	res := runCLI(t, t.TempDir(), "list")
	require.Equal(t, opts.ExitClean, res.code)
	assert.Equal(t, "strip_bom\nline_endings\ntrim_trailing_whitespace\nensure_final_newline\n", res.stdout)

	verbose := runCLI(t, t.TempDir(), "list", "-v")
	require.Equal(t, opts.ExitClean, verbose.code)
	lines := strings.Split(strings.TrimSpace(verbose.stdout), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[4], "ordered_imports"))
	assert.True(t, strings.HasPrefix(lines[5], "replace"))
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, t.TempDir(), "version")
	require.Equal(t, opts.ExitClean, res.code)
	assert.Contains(t, res.stdout, "codefix version info")
	assert.Contains(t, res.stdout, "Go:")
}

func TestFormatVersion(t *testing.T) {
	info := &VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Time:      "2025-01-01T00:00:00Z",
		Modified:  true,
	}

	want := `🚀 codefix version info:
Version:   v1.2.3
Revision:  abc123 (modified)
Built:     2025-01-01T00:00:00Z
Go:        go1.23.5
Platform:  linux/amd64
`
	assert.Equal(t, want, info.FormatVersion())
}
