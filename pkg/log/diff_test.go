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

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/codefix/pkg/operation"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name    string
		outcome operation.FixOutcome
		want    string
	}{
		{
			name: "missing_final_newline",
			outcome: operation.FixOutcome{
				Path:     "/src/a.txt",
				Rel:      "a.txt",
				Original: "a \nb",
				Content:  "a\nb\n",
			},
			want: "--- a/a.txt\n" +
				"+++ b/a.txt\n" +
				"@@ -1,2 +1,2 @@\n" +
				"-a \n" +
				"-b\n" +
				"\\ No newline at end of file\n" +
				"+a\n" +
				"+b\n",
		},
		{
			name: "falls_back_to_path",
			outcome: operation.FixOutcome{
				Path:     "a.php",
				Original: "use B;\nuse A;\n",
				Content:  "use A;\nuse B;\n",
			},
			want: "--- a/a.php\n" +
				"+++ b/a.php\n" +
				"@@ -1,2 +1,2 @@\n" +
				"+use A;\n" +
				" use B;\n" +
				"-use A;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(tt.outcome)
			require.NoError(t, err, "Diff should succeed")
			assert.Equal(t, tt.want, got, "diff should match")
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b\n" + noNewline}, splitLines("a\nb"))
}
