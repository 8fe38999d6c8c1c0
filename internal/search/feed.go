package search

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/konradsz/igrep/internal/domain"
)

// Engine is the external search binary. ripgrep's --json stream carries
// everything the result store needs: per-file contiguous matches with
// line numbers and submatch byte offsets.
const Engine = "rg"

// Feed drives one run of the search engine and converts its raw output
// into domain events, delivered in emission order on Events. The channel
// is closed after a terminal SearchCompleted or SearchFailed event.
type Feed struct {
	events chan domain.DomainEvent
	cancel context.CancelFunc
}

// Start launches the engine for the given options and begins streaming.
// Failure to start (missing binary, bad pattern) is not an error return;
// it surfaces as a terminal SearchFailedEvent so the session stays open.
func Start(opts domain.SearchOptions) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		events: make(chan domain.DomainEvent, 256),
		cancel: cancel,
	}
	go f.run(ctx, opts)
	return f
}

// Events returns the feed's ordered event stream.
func (f *Feed) Events() <-chan domain.DomainEvent {
	return f.events
}

// Stop cancels the feed and releases the underlying engine process. Events
// already buffered may still be delivered; the consumer distinguishes
// feeds by identity to avoid applying stale ones.
func (f *Feed) Stop() {
	f.cancel()
}

func (f *Feed) run(ctx context.Context, opts domain.SearchOptions) {
	defer close(f.events)

	if _, err := exec.LookPath(Engine); err != nil {
		f.emit(ctx, domain.SearchFailedEvent{
			Message: fmt.Sprintf("%s not found in PATH", Engine),
		})
		return
	}

	cmd := exec.CommandContext(ctx, Engine, buildArgs(opts)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		f.emit(ctx, domain.SearchFailedEvent{Message: err.Error()})
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		f.emit(ctx, domain.SearchFailedEvent{Message: err.Error()})
		return
	}
	if err := cmd.Start(); err != nil {
		f.emit(ctx, domain.SearchFailedEvent{Message: err.Error()})
		return
	}

	f.emit(ctx, domain.SearchStartedEvent{Pattern: opts.Pattern})

	matches := 0
	var stderrTail string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for scanner.Scan() {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			var msg rgMessage
			if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
				log.Printf("search: skipping undecodable engine output: %v", err)
				continue
			}
			if msg.Type != "match" {
				continue
			}
			m, err := decodeMatch(msg.Data)
			if err != nil {
				log.Printf("search: %v", err)
				continue
			}
			matches++
			if !f.emit(gctx, domain.MatchFoundEvent{Match: m}) {
				return gctx.Err()
			}
		}
		return scanner.Err()
	})
	g.Go(func() error {
		tail, err := readTail(stderr)
		stderrTail = tail
		return err
	})

	readErr := g.Wait()
	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		// cancelled by a re-run or shutdown; no terminal event wanted
		return
	}
	if readErr != nil {
		f.emit(ctx, domain.SearchFailedEvent{Message: readErr.Error()})
		return
	}
	if waitErr != nil {
		// exit code 1 means "no matches", which is a successful search
		if ee, ok := waitErr.(*exec.ExitError); ok && ee.ExitCode() == 1 {
			f.emit(ctx, domain.SearchCompletedEvent{MatchCount: matches})
			return
		}
		msg := stderrTail
		if msg == "" {
			msg = waitErr.Error()
		}
		f.emit(ctx, domain.SearchFailedEvent{Message: msg})
		return
	}

	f.emit(ctx, domain.SearchCompletedEvent{MatchCount: matches})
}

// emit delivers an event unless the feed has been cancelled. It blocks
// when the consumer lags; cancellation unblocks it so a killed engine
// never leaks this goroutine.
func (f *Feed) emit(ctx context.Context, e domain.DomainEvent) bool {
	select {
	case f.events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

// readTail drains r and keeps the first non-empty lines, enough for a
// human-readable failure cause (e.g. "regex parse error").
func readTail(r io.Reader) (string, error) {
	const maxLines = 8
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if len(lines) < maxLines {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), scanner.Err()
}

// buildArgs translates search options into the engine's command line.
func buildArgs(opts domain.SearchOptions) []string {
	args := []string{"--json"}

	if opts.IgnoreCase {
		args = append(args, "--ignore-case")
	}
	if opts.SmartCase {
		args = append(args, "--smart-case")
	}
	if opts.WordRegexp {
		args = append(args, "--word-regexp")
	}
	if opts.SearchHidden {
		args = append(args, "--hidden")
	}
	if opts.FollowLinks {
		args = append(args, "--follow")
	}
	for _, g := range opts.Globs {
		args = append(args, "--glob", g)
	}
	for _, t := range opts.Types {
		args = append(args, "--type", t)
	}
	for _, t := range opts.TypesNot {
		args = append(args, "--type-not", t)
	}

	args = append(args, "--regexp", opts.Pattern)
	args = append(args, opts.Paths...)
	return args
}
