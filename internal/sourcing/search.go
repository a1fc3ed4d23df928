package sourcing

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/utils"
)

var (
	// ErrNoInput is returned when all four identifiers are empty.
	ErrNoInput = errors.New("at least one candidate identifier is required")
	// ErrBusy is returned when a search is already in flight.
	ErrBusy = errors.New("a search is already running")
)

// Config contains the searcher settings.
type Config struct {
	// RequestDelay is an optional pause between source requests, easing the
	// load on the analyzer's upstream scrapers.
	RequestDelay time.Duration
}

// Searcher runs candidate searches one at a time.
type Searcher struct {
	deps     Deps
	notifier Notifier
	sources  []Source
	delay    time.Duration

	busy atomic.Bool
}

func NewSearcher(deps Deps, notifier Notifier, cfg Config) *Searcher {
	return &Searcher{
		deps:     deps,
		notifier: notifier,
		sources:  defaultSources(),
		delay:    cfg.RequestDelay,
	}
}

// Search runs every enabled source in order and hands the aggregated record
// to handoff. A source failure never stops the remaining sources and never
// prevents the handoff; such failures surface only as notifications. The
// returned error is non-nil only when nothing was dispatched at all (empty
// input, or another search still running).
func (s *Searcher) Search(ctx context.Context, in Input, handoff Handoff) (*Findings, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	if in.Empty() {
		s.notify(Event{Message: "please provide at least one candidate identifier", Err: ErrNoInput})
		return nil, ErrNoInput
	}

	findings := &Findings{}

	if err := s.run(ctx, in, findings, handoff); err != nil {
		return nil, err
	}

	return findings, nil
}

func (s *Searcher) run(ctx context.Context, in Input, findings *Findings, handoff Handoff) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Error("search aborted", zap.Any("panic", r))
			}
			s.notify(Event{Message: "an unexpected error occurred during the search", Err: fmt.Errorf("panic: %v", r)})
			err = fmt.Errorf("unexpected search failure: %v", r)
		}
	}()

	rec := candidate.NewRecord()

	ran := 0
	for _, src := range s.sources {
		if !src.Enabled(in) {
			continue
		}

		if ran > 0 {
			// Pacing only. A canceled context makes the next request fail
			// on its own, which counts as a regular source failure.
			_ = utils.WaitFor(ctx, s.delay)
		}
		ran++

		if fetchErr := src.Fetch(ctx, s.deps, in, rec, findings); fetchErr != nil {
			s.notify(Event{
				Source:  src.Name(),
				Message: fmt.Sprintf("%s lookup failed: %v", src.Name(), fetchErr),
				Err:     fetchErr,
			})
			continue
		}

		s.notify(Event{
			Source:  src.Name(),
			Message: fmt.Sprintf("%s data retrieved", src.Name()),
		})
	}

	s.notify(Event{Message: "candidate search complete"})

	if handoff != nil {
		handoff(rec)
	}

	return nil
}

func (s *Searcher) notify(e Event) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(e)
}
