package domain

// Span is a half-open byte offset range [Start, End) within a line.
type Span struct {
	Start int
	End   int
}

// Match represents one located occurrence of the search pattern.
// Immutable once created; identity is (Path, LineNumber, Spans[0]).
type Match struct {
	Path       string
	LineNumber int // 1-based
	Line       string
	Spans      []Span // matched substrings within Line, in order
}

// SearchOptions describes one search run handed to the engine.
type SearchOptions struct {
	Pattern      string
	Paths        []string
	Globs        []string
	Types        []string
	TypesNot     []string
	IgnoreCase   bool
	SmartCase    bool
	WordRegexp   bool
	SearchHidden bool
	FollowLinks  bool
}
