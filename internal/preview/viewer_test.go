package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konradsz/igrep/internal/domain"
)

func writeLines(t *testing.T, count int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= count; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))
	return path
}

func lineNumbers(w Window) []int {
	nums := make([]int, 0, len(w.Lines))
	for _, l := range w.Lines {
		nums = append(nums, l.Number)
	}
	return nums
}

func TestRefreshCentersWindowOnMatch(t *testing.T) {
	path := writeLines(t, 20)
	v := NewViewer(2)
	v.ToggleVertical()

	v.Refresh(domain.Match{Path: path, LineNumber: 10}, true)

	w := v.Window()
	assert.Equal(t, []int{8, 9, 10, 11, 12}, lineNumbers(w))
	assert.Equal(t, 10, w.MatchLine)
	assert.Equal(t, "line 8", w.Lines[0].Text)
}

func TestRefreshTruncatesAtFileStart(t *testing.T) {
	path := writeLines(t, 20)
	v := NewViewer(2)
	v.ToggleVertical()

	v.Refresh(domain.Match{Path: path, LineNumber: 1}, true)

	assert.Equal(t, []int{1, 2, 3}, lineNumbers(v.Window()))
}

func TestRefreshTruncatesAtFileEnd(t *testing.T) {
	path := writeLines(t, 10)
	v := NewViewer(3)
	v.ToggleVertical()

	v.Refresh(domain.Match{Path: path, LineNumber: 9}, true)

	assert.Equal(t, []int{6, 7, 8, 9, 10}, lineNumbers(v.Window()))
}

func TestRefreshUnreadableFileDegradesToEmpty(t *testing.T) {
	v := NewViewer(2)
	v.ToggleVertical()

	v.Refresh(domain.Match{Path: filepath.Join(t.TempDir(), "missing"), LineNumber: 5}, true)

	assert.Empty(t, v.Window().Lines)
}

func TestRefreshWithoutMatchClearsWindow(t *testing.T) {
	path := writeLines(t, 5)
	v := NewViewer(1)
	v.ToggleVertical()
	v.Refresh(domain.Match{Path: path, LineNumber: 3}, true)
	require.NotEmpty(t, v.Window().Lines)

	v.Refresh(domain.Match{}, false)

	assert.Empty(t, v.Window().Lines)
}

func TestHiddenViewerDoesNotRead(t *testing.T) {
	v := NewViewer(2)

	// path does not exist; a hidden viewer must not care
	v.Refresh(domain.Match{Path: "/nonexistent", LineNumber: 1}, true)

	assert.Empty(t, v.Window().Lines)
	assert.False(t, v.Visible())
}

func TestToggleCycle(t *testing.T) {
	v := NewViewer(2)

	v.ToggleVertical()
	assert.True(t, v.Visible())
	assert.Equal(t, Vertical, v.Orientation())

	v.ToggleHorizontal()
	assert.True(t, v.Visible())
	assert.Equal(t, Horizontal, v.Orientation())

	v.ToggleHorizontal()
	assert.False(t, v.Visible())

	v.ToggleHorizontal()
	v.ToggleVertical()
	assert.Equal(t, Vertical, v.Orientation())
	v.ToggleVertical()
	assert.False(t, v.Visible())
}

func TestRadiusClamping(t *testing.T) {
	v := NewViewer(0)

	v.Shrink()
	assert.Equal(t, 0, v.Radius())

	v.Grow(2)
	v.Grow(2)
	v.Grow(2)
	assert.Equal(t, 2, v.Radius())

	v.Shrink()
	assert.Equal(t, 1, v.Radius())

	assert.Equal(t, 0, NewViewer(-4).Radius())
}
