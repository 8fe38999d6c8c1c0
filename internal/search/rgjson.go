package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/konradsz/igrep/internal/domain"
)

// ripgrep's --json output is a stream of newline-delimited messages:
// begin/match/end per file, context (unused here) and a final summary.
// Matches for a file sit between its begin and end, which is the per-file
// contiguity guarantee the result store relies on.

type rgMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type rgText struct {
	Text string `json:"text"`
}

type rgMatchData struct {
	Path       rgText `json:"path"`
	Lines      rgText `json:"lines"`
	LineNumber int    `json:"line_number"`
	Submatches []struct {
		Start int `json:"start"`
		End   int `json:"end"`
	} `json:"submatches"`
}

// decodeMatch parses one "match" message into a domain match. Binary data
// (no "text" in path or lines) and multi-line payloads are reported as
// errors so the caller can skip them.
func decodeMatch(data json.RawMessage) (domain.Match, error) {
	var md rgMatchData
	if err := json.Unmarshal(data, &md); err != nil {
		return domain.Match{}, fmt.Errorf("malformed match record: %w", err)
	}
	if md.Path.Text == "" || md.LineNumber == 0 {
		return domain.Match{}, fmt.Errorf("match record without path or line number")
	}

	line := strings.TrimRight(md.Lines.Text, "\r\n")
	m := domain.Match{
		Path:       md.Path.Text,
		LineNumber: md.LineNumber,
		Line:       line,
	}
	for _, sm := range md.Submatches {
		end := sm.End
		if end > len(line) {
			end = len(line)
		}
		if sm.Start > end {
			continue
		}
		m.Spans = append(m.Spans, domain.Span{Start: sm.Start, End: end})
	}
	if len(m.Spans) == 0 {
		return domain.Match{}, fmt.Errorf("match record without submatches")
	}
	return m, nil
}
