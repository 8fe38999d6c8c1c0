package results

import (
	"github.com/konradsz/igrep/internal/domain"
)

// Direction is a cursor movement request.
type Direction int

const (
	NextMatch Direction = iota
	PreviousMatch
	NextFile
	PreviousFile
	FirstMatch
	LastMatch
)

// FileGroup holds the matches of a single file, in the order the search
// engine emitted them. A group never exists with zero matches; the store
// prunes it as soon as its last match is removed.
type FileGroup struct {
	Path    string
	Matches []domain.Match
}

// Position identifies the cursor as (file group index, match index).
type Position struct {
	File  int
	Match int
}

// Store owns the live collection of file groups plus a single cursor.
// It performs no I/O; mutation happens only on the session loop.
type Store struct {
	groups  []*FileGroup
	cursor  Position
	hasAny  bool
	removed int // matches deleted by the user since the last Clear
}

// NewStore creates an empty result store.
func NewStore() *Store {
	return &Store{}
}

// Append inserts a match into the group for its file, creating the group
// if the file has not been seen before. The engine delivers matches for a
// file as a contiguous run, so only the last group needs checking.
// The first match ever appended becomes the current one.
func (s *Store) Append(m domain.Match) {
	if n := len(s.groups); n > 0 && s.groups[n-1].Path == m.Path {
		s.groups[n-1].Matches = append(s.groups[n-1].Matches, m)
	} else {
		s.groups = append(s.groups, &FileGroup{Path: m.Path, Matches: []domain.Match{m}})
	}

	if !s.hasAny {
		s.hasAny = true
		s.cursor = Position{}
	}
}

// Current returns the match under the cursor, or false when the store is empty.
func (s *Store) Current() (domain.Match, bool) {
	if !s.hasAny {
		return domain.Match{}, false
	}
	return s.groups[s.cursor.File].Matches[s.cursor.Match], true
}

// CurrentPosition returns the cursor, or false when the store is empty.
func (s *Store) CurrentPosition() (Position, bool) {
	return s.cursor, s.hasAny
}

// MoveCursor moves the cursor in the given direction, clamping at both
// ends. It is a no-op on an empty store.
func (s *Store) MoveCursor(dir Direction) {
	if !s.hasAny {
		return
	}

	switch dir {
	case NextMatch:
		if s.cursor.Match+1 < len(s.groups[s.cursor.File].Matches) {
			s.cursor.Match++
		} else if s.cursor.File+1 < len(s.groups) {
			s.cursor = Position{File: s.cursor.File + 1}
		}
	case PreviousMatch:
		if s.cursor.Match > 0 {
			s.cursor.Match--
		} else if s.cursor.File > 0 {
			s.cursor = Position{
				File:  s.cursor.File - 1,
				Match: len(s.groups[s.cursor.File-1].Matches) - 1,
			}
		}
	case NextFile:
		if s.cursor.File+1 < len(s.groups) {
			s.cursor = Position{File: s.cursor.File + 1}
		}
	case PreviousFile:
		if s.cursor.File > 0 {
			s.cursor = Position{File: s.cursor.File - 1}
		} else {
			s.cursor.Match = 0
		}
	case FirstMatch:
		s.cursor = Position{}
	case LastMatch:
		last := len(s.groups) - 1
		s.cursor = Position{File: last, Match: len(s.groups[last].Matches) - 1}
	}
}

// DeleteCurrent removes the match under the cursor. The cursor advances to
// the next remaining match in the same file, else the first match of the
// next file, else the previous file's last match, else the store becomes
// empty. No-op on an empty store.
func (s *Store) DeleteCurrent() {
	if !s.hasAny {
		return
	}

	g := s.groups[s.cursor.File]
	g.Matches = append(g.Matches[:s.cursor.Match], g.Matches[s.cursor.Match+1:]...)
	s.removed++

	if len(g.Matches) == 0 {
		s.pruneGroup(s.cursor.File)
		return
	}
	if s.cursor.Match >= len(g.Matches) {
		// deleted the file's last match; fall to the next file if any
		if s.cursor.File+1 < len(s.groups) {
			s.cursor = Position{File: s.cursor.File + 1}
		} else {
			s.cursor.Match = len(g.Matches) - 1
		}
	}
}

// DeleteCurrentFile removes the entire group containing the cursor. The
// cursor moves to the first match of the following group, else the
// preceding group's last match, else the store becomes empty.
func (s *Store) DeleteCurrentFile() {
	if !s.hasAny {
		return
	}
	s.removed += len(s.groups[s.cursor.File].Matches)
	s.pruneGroup(s.cursor.File)
}

// pruneGroup drops the group at index and repositions the cursor per the
// deletion rules. A stray empty group would corrupt counts and cursor
// arithmetic, so removal happens here and nowhere else.
func (s *Store) pruneGroup(index int) {
	s.groups = append(s.groups[:index], s.groups[index+1:]...)

	switch {
	case len(s.groups) == 0:
		s.hasAny = false
		s.cursor = Position{}
	case index < len(s.groups):
		s.cursor = Position{File: index}
	default:
		last := len(s.groups) - 1
		s.cursor = Position{File: last, Match: len(s.groups[last].Matches) - 1}
	}
}

// Clear empties the store, as on a re-run of the search.
func (s *Store) Clear() {
	s.groups = nil
	s.cursor = Position{}
	s.hasAny = false
	s.removed = 0
}

// IsEmpty reports whether no matches remain.
func (s *Store) IsEmpty() bool {
	return !s.hasAny
}

// Files returns the groups in first-seen order. The slice is shared with
// the store and must be treated as read-only by renderers.
func (s *Store) Files() []*FileGroup {
	return s.groups
}

// MatchCount returns the number of matches remaining, derived on demand.
func (s *Store) MatchCount() int {
	total := 0
	for _, g := range s.groups {
		total += len(g.Matches)
	}
	return total
}

// FileCount returns the number of file groups remaining.
func (s *Store) FileCount() int {
	return len(s.groups)
}

// RemovedCount returns how many matches the user has filtered out.
func (s *Store) RemovedCount() int {
	return s.removed
}

// CursorOrdinal returns the 1-based position of the current match in
// iteration order, or 0 when the store is empty.
func (s *Store) CursorOrdinal() int {
	if !s.hasAny {
		return 0
	}
	n := 0
	for i := 0; i < s.cursor.File; i++ {
		n += len(s.groups[i].Matches)
	}
	return n + s.cursor.Match + 1
}
