package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konradsz/igrep/internal/domain"
)

func TestBuildArgsMinimal(t *testing.T) {
	args := buildArgs(domain.SearchOptions{
		Pattern: "needle",
		Paths:   []string{"."},
	})

	assert.Equal(t, []string{"--json", "--regexp", "needle", "."}, args)
}

func TestBuildArgsAllOptions(t *testing.T) {
	args := buildArgs(domain.SearchOptions{
		Pattern:      "-dash", // must survive as a pattern, not a flag
		Paths:        []string{"src", "docs"},
		Globs:        []string{"*.go", "!vendor/*"},
		Types:        []string{"go"},
		TypesNot:     []string{"md"},
		IgnoreCase:   true,
		WordRegexp:   true,
		SearchHidden: true,
		FollowLinks:  true,
	})

	assert.Equal(t, []string{
		"--json",
		"--ignore-case", "--word-regexp", "--hidden", "--follow",
		"--glob", "*.go", "--glob", "!vendor/*",
		"--type", "go", "--type-not", "md",
		"--regexp", "-dash",
		"src", "docs",
	}, args)
}

func TestDecodeMatch(t *testing.T) {
	data := json.RawMessage(`{
		"path": {"text": "src/main.go"},
		"lines": {"text": "lorem ipsum dolor\n"},
		"line_number": 14,
		"absolute_offset": 120,
		"submatches": [
			{"match": {"text": "ipsum"}, "start": 6, "end": 11},
			{"match": {"text": "olor"}, "start": 13, "end": 17}
		]
	}`)

	m, err := decodeMatch(data)
	require.NoError(t, err)

	assert.Equal(t, "src/main.go", m.Path)
	assert.Equal(t, 14, m.LineNumber)
	assert.Equal(t, "lorem ipsum dolor", m.Line)
	assert.Equal(t, []domain.Span{{Start: 6, End: 11}, {Start: 13, End: 17}}, m.Spans)
}

func TestDecodeMatchStripsCRLF(t *testing.T) {
	data := json.RawMessage(`{
		"path": {"text": "a.txt"},
		"lines": {"text": "windows line\r\n"},
		"line_number": 1,
		"submatches": [{"start": 0, "end": 7}]
	}`)

	m, err := decodeMatch(data)
	require.NoError(t, err)
	assert.Equal(t, "windows line", m.Line)
}

func TestDecodeMatchClampsSpanToLine(t *testing.T) {
	// a submatch ending inside the stripped terminator is clamped
	data := json.RawMessage(`{
		"path": {"text": "a.txt"},
		"lines": {"text": "end\n"},
		"line_number": 2,
		"submatches": [{"start": 0, "end": 4}]
	}`)

	m, err := decodeMatch(data)
	require.NoError(t, err)
	assert.Equal(t, []domain.Span{{Start: 0, End: 3}}, m.Spans)
}

func TestDecodeMatchRejectsIncompleteRecords(t *testing.T) {
	for name, data := range map[string]string{
		"no path":       `{"lines": {"text": "x"}, "line_number": 1, "submatches": [{"start":0,"end":1}]}`,
		"no line":       `{"path": {"text": "a"}, "lines": {"text": "x"}, "submatches": [{"start":0,"end":1}]}`,
		"no submatches": `{"path": {"text": "a"}, "lines": {"text": "x"}, "line_number": 1}`,
		"not json":      `]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeMatch(json.RawMessage(data))
			assert.Error(t, err)
		})
	}
}

func TestFeedReportsMissingEngine(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no rg reachable

	f := Start(domain.SearchOptions{Pattern: "x", Paths: []string{"."}})

	var events []domain.DomainEvent
	for e := range f.Events() {
		events = append(events, e)
	}

	require.Len(t, events, 1)
	failed, ok := events[0].(domain.SearchFailedEvent)
	require.True(t, ok)
	assert.Contains(t, failed.Message, "not found")
}

func TestFeedStopIsIdempotent(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	f := Start(domain.SearchOptions{Pattern: "x"})
	f.Stop()
	f.Stop()

	// channel still terminates
	for range f.Events() {
	}
}
