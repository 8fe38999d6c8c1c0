package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventMatchFound      EventType = "MatchFound"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// MatchFoundEvent is emitted for every matching line the engine reports.
// Matches for a single file always arrive as a contiguous run.
type MatchFoundEvent struct {
	Match Match
}

func (e MatchFoundEvent) Type() EventType { return EventMatchFound }

// SearchStartedEvent is emitted once when the engine process starts
type SearchStartedEvent struct {
	Pattern string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent terminates a successful search
type SearchCompletedEvent struct {
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent terminates a search that could not start or aborted
// mid-stream. Message is human-readable; partial results stay usable.
type SearchFailedEvent struct {
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }
