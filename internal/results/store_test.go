package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konradsz/igrep/internal/domain"
)

func match(path string, line int) domain.Match {
	return domain.Match{
		Path:       path,
		LineNumber: line,
		Line:       "text",
		Spans:      []domain.Span{{Start: 0, End: 4}},
	}
}

func populated() *Store {
	s := NewStore()
	s.Append(match("a.go", 1))
	s.Append(match("a.go", 5))
	s.Append(match("b.go", 2))
	s.Append(match("c.go", 3))
	s.Append(match("c.go", 7))
	s.Append(match("c.go", 9))
	return s
}

func TestEmptyStoreOperationsAreNoOps(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok)

	s.MoveCursor(NextMatch)
	s.MoveCursor(PreviousMatch)
	s.MoveCursor(LastMatch)
	s.DeleteCurrent()
	s.DeleteCurrentFile()

	_, ok = s.Current()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.MatchCount())
	assert.Equal(t, 0, s.CursorOrdinal())
}

func TestAppendPreservesFirstSeenOrder(t *testing.T) {
	s := populated()

	files := s.Files()
	require.Len(t, files, 3)
	assert.Equal(t, "a.go", files[0].Path)
	assert.Equal(t, "b.go", files[1].Path)
	assert.Equal(t, "c.go", files[2].Path)

	lines := []int{}
	for _, m := range files[2].Matches {
		lines = append(lines, m.LineNumber)
	}
	assert.Equal(t, []int{3, 7, 9}, lines)

	assert.Equal(t, 6, s.MatchCount())
	assert.Equal(t, 3, s.FileCount())
}

func TestFirstAppendSetsCursor(t *testing.T) {
	s := NewStore()
	s.Append(match("a.go", 42))

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 42, cur.LineNumber)
	assert.Equal(t, 1, s.CursorOrdinal())
}

func TestMoveCursorNextMatchCrossesFileBoundary(t *testing.T) {
	s := populated()

	s.MoveCursor(NextMatch) // a.go:5
	s.MoveCursor(NextMatch) // b.go:2
	cur, _ := s.Current()
	assert.Equal(t, "b.go", cur.Path)
	assert.Equal(t, 2, cur.LineNumber)
}

func TestMoveCursorClampsAtEnds(t *testing.T) {
	s := populated()

	s.MoveCursor(PreviousMatch)
	cur, _ := s.Current()
	assert.Equal(t, "a.go", cur.Path)
	assert.Equal(t, 1, cur.LineNumber)

	s.MoveCursor(LastMatch)
	s.MoveCursor(NextMatch)
	cur, _ = s.Current()
	assert.Equal(t, "c.go", cur.Path)
	assert.Equal(t, 9, cur.LineNumber)

	s.MoveCursor(NextFile)
	cur, _ = s.Current()
	assert.Equal(t, 9, cur.LineNumber)
}

func TestMoveCursorByFile(t *testing.T) {
	s := populated()

	s.MoveCursor(NextFile)
	cur, _ := s.Current()
	assert.Equal(t, "b.go", cur.Path)
	assert.Equal(t, 2, cur.LineNumber)

	s.MoveCursor(NextFile)
	cur, _ = s.Current()
	assert.Equal(t, "c.go", cur.Path)
	assert.Equal(t, 3, cur.LineNumber)

	s.MoveCursor(PreviousFile)
	cur, _ = s.Current()
	assert.Equal(t, "b.go", cur.Path)

	// within the first file, previous-file snaps to its first match
	s.MoveCursor(PreviousFile)
	s.MoveCursor(NextMatch)
	s.MoveCursor(PreviousFile)
	cur, _ = s.Current()
	assert.Equal(t, "a.go", cur.Path)
	assert.Equal(t, 1, cur.LineNumber)
}

func TestMoveCursorFirstAndLast(t *testing.T) {
	s := populated()

	s.MoveCursor(LastMatch)
	cur, _ := s.Current()
	assert.Equal(t, "c.go", cur.Path)
	assert.Equal(t, 9, cur.LineNumber)
	assert.Equal(t, 6, s.CursorOrdinal())

	s.MoveCursor(FirstMatch)
	cur, _ = s.Current()
	assert.Equal(t, "a.go", cur.Path)
	assert.Equal(t, 1, cur.LineNumber)
	assert.Equal(t, 1, s.CursorOrdinal())
}

func TestDeleteCurrentAdvancesWithinFile(t *testing.T) {
	s := populated()
	deleted, _ := s.Current()

	s.DeleteCurrent()

	cur, ok := s.Current()
	require.True(t, ok)
	assert.NotEqual(t, deleted, cur)
	assert.Equal(t, "a.go", cur.Path)
	assert.Equal(t, 5, cur.LineNumber)
	assert.Equal(t, 5, s.MatchCount())
	assert.Equal(t, 1, s.RemovedCount())
}

func TestDeleteCurrentLastMatchFallsToNextFile(t *testing.T) {
	s := populated()
	s.MoveCursor(NextMatch) // a.go:5

	s.DeleteCurrent()

	cur, _ := s.Current()
	assert.Equal(t, "b.go", cur.Path)
	assert.Equal(t, 2, cur.LineNumber)
}

func TestDeleteCurrentPrunesEmptyGroup(t *testing.T) {
	s := populated()
	s.MoveCursor(NextFile) // b.go:2, sole match

	s.DeleteCurrent()

	for _, g := range s.Files() {
		assert.NotEqual(t, "b.go", g.Path)
		assert.NotEmpty(t, g.Matches)
	}
	cur, _ := s.Current()
	assert.Equal(t, "c.go", cur.Path)
	assert.Equal(t, 3, cur.LineNumber)
	assert.Equal(t, 2, s.FileCount())
}

func TestDeleteCurrentAtVeryEndFallsBack(t *testing.T) {
	s := NewStore()
	s.Append(match("a.go", 1))
	s.Append(match("b.go", 2))
	s.MoveCursor(LastMatch)

	s.DeleteCurrent()

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a.go", cur.Path)
	assert.Equal(t, 1, cur.LineNumber)
}

func TestDeleteUntilEmpty(t *testing.T) {
	s := NewStore()
	s.Append(match("a.go", 1))
	s.Append(match("a.go", 2))

	s.DeleteCurrent()
	s.DeleteCurrent()

	_, ok := s.Current()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.FileCount())
	assert.Equal(t, 2, s.RemovedCount())

	// still safe to operate on
	s.DeleteCurrent()
	s.MoveCursor(NextMatch)
}

func TestDeleteCurrentFile(t *testing.T) {
	s := populated()
	s.MoveCursor(NextFile) // b.go

	s.DeleteCurrentFile()

	cur, _ := s.Current()
	assert.Equal(t, "c.go", cur.Path)
	assert.Equal(t, 3, cur.LineNumber)
	assert.Equal(t, 2, s.FileCount())
	assert.Equal(t, 1, s.RemovedCount())
}

func TestDeleteLastFileSelectsPrecedingLastMatch(t *testing.T) {
	s := populated()
	s.MoveCursor(LastMatch)

	s.DeleteCurrentFile()

	cur, _ := s.Current()
	assert.Equal(t, "b.go", cur.Path)
	assert.Equal(t, 2, cur.LineNumber)
	assert.Equal(t, 3, s.RemovedCount())
}

func TestClearResetsEverything(t *testing.T) {
	s := populated()
	s.DeleteCurrent()

	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.RemovedCount())
	assert.Empty(t, s.Files())

	// appending after clear restarts the cursor
	s.Append(match("x.go", 8))
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "x.go", cur.Path)
}

func TestCursorOrdinalCountsAcrossGroups(t *testing.T) {
	s := populated()
	s.MoveCursor(NextFile)
	assert.Equal(t, 3, s.CursorOrdinal())
	s.MoveCursor(NextFile)
	s.MoveCursor(NextMatch)
	assert.Equal(t, 5, s.CursorOrdinal())
}
