package errsink

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestSink(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty(), "new sink should be empty")
	assert.Empty(t, s.All(), "new sink should have no records")

	readErr := errors.New("permission denied")
	s.Record("a.go", KindRead, "", readErr)
	s.Record("b.go", KindTransform, "ordered_imports", errors.New("boom"))

	require.False(t, s.IsEmpty(), "sink should not be empty")
	require.Equal(t, 2, s.Len(), "sink should have two records")

	all := s.All()
	assert.Equal(t, "a.go", all[0].Path, "first recorded should come first")
	assert.Equal(t, KindRead, all[0].Kind, "kind should match")
	assert.ErrorIs(t, all[0].Err, readErr, "error should be preserved")
	assert.Equal(t, "b.go", all[1].Path, "second recorded should come second")
	assert.Equal(t, "ordered_imports", all[1].Fixer, "fixer should match")

	all[0].Path = "mutated"
	assert.Equal(t, "a.go", s.All()[0].Path, "All should return a copy")
}

func TestRecordDescription(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "read",
			record: Record{Path: "a", Kind: KindRead, Err: errors.New("denied")},
			want:   "read error: denied",
		},
		{
			name:   "transform",
			record: Record{Path: "a", Kind: KindTransform, Fixer: "line_endings", Err: errors.New("bad")},
			want:   "transform error in line_endings: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Description(), "description should match")
		})
	}
}

func TestSinkConcurrentRecords(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Record(fmt.Sprintf("file-%d", i), KindWrite, "", errors.New("disk full"))
		}(i)
	}
	wg.Wait()

	all := s.All()
	require.Len(t, all, 50, "every record should be kept")

	seen := make(map[string]bool, len(all))
	for _, r := range all {
		assert.Equal(t, KindWrite, r.Kind, "records should not be interleaved")
		seen[r.Path] = true
	}
	assert.Len(t, seen, 50, "every path should be recorded once")
}
