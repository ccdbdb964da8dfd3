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

package config

import (
	"context"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// FileNames are the config files looked up by Find, in order of preference.
var FileNames = []string{
	".codefix.yaml",
	".codefix.yml",
	".codefix.hcl",
	".codefix.json",
	".codefix.toml",
}

// 🔍 Find returns the first config file present in dir. The boolean is
// false when dir has none.
func Find(dir string) (string, bool, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", false, errors.Errorf("checking %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, true, nil
	}
	return "", false, nil
}

// 🎯 Resolve loads the explicit path when given, otherwise the config found
// in dir, otherwise the defaults.
func Resolve(ctx context.Context, explicit, dir string) (*Config, error) {
	if explicit != "" {
		return Load(ctx, explicit)
	}

	path, ok, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(ctx, path)
}
