package session

import (
	"context"
	"errors"
	"sync"

	"github.com/bigspring/repsearch-go/core/events"
	"github.com/bigspring/repsearch-go/core/search"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrStreamerNotConfigured = errors.New("no search streamer configured")

// Streamer produces one event stream per submitted query. Implemented by
// the bigspring HTTP client; tests substitute their own.
type Streamer interface {
	SearchStream(query search.Query) events.Stream
}

// Session drives streaming searches against a Streamer, one live session at
// a time. The zero value is not usable; construct with New.
type Session struct {
	mu sync.Mutex

	streamer Streamer
	state    State

	// generation is the liveness token of the current session. Start and
	// Reset advance it; events carrying a stale token are discarded.
	generation uint64
	cancel     context.CancelFunc
}

func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start submits a query and begins consuming its event stream. Any session
// still in flight is superseded: its transport is cancelled and whatever
// events it still delivers are ignored.
//
// ctx bounds the transport; cancelling it behaves like a mid-stream
// cancellation (no error event is synthesized). The per-start callbacks are
// only invoked while this session is the live one.
func (s *Session) Start(ctx context.Context, query search.Query, opts ...StartOption) error {
	if s.streamer == nil {
		return ErrStreamerNotConfigured
	}
	if len(query.Text) > search.MaxQueryLength {
		return search.ErrQueryTooLong
	}
	if query.Mode == "" {
		query.Mode = search.ModeAuto
	}

	options := StartOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	s.mu.Lock()
	s.generation++
	token := s.generation
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = State{ID: uuid.NewString(), Query: query, IsStreaming: true}
	s.mu.Unlock()

	go s.consume(ctx, token, s.streamer.SearchStream(query), options)
	return nil
}

// Reset cancels any in-flight transport, invalidates the current liveness
// token and returns the session to a blank idle state. Resetting an idle
// session is a no-op that leaves an identical blank state.
func (s *Session) Reset() {
	s.mu.Lock()
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state = State{}
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotState(s.state)
}

func (s *Session) consume(ctx context.Context, token uint64, stream events.Stream, options StartOptions) {
	ctx, span := tracer.Start(ctx, "consume search stream")
	defer span.End()

	for event := range stream.Events(ctx) {
		if !s.applyLive(token, event, options) {
			span.AddEvent("session superseded")
			return
		}
	}
}

// applyLive folds one event into the state if this session is still live.
// The token check and the state mutation happen as one step under the lock,
// so a late event from a superseded transport can never race a newer
// session's state. Reports whether the session was live.
func (s *Session) applyLive(token uint64, event events.Event, options StartOptions) bool {
	s.mu.Lock()
	if token != s.generation {
		s.mu.Unlock()
		return false
	}
	s.state = apply(s.state, event)
	snapshot := snapshotState(s.state)
	s.mu.Unlock()

	switch event := event.(type) {
	case events.Meta:
		if options.onMeta != nil {
			options.onMeta(event)
		}
	case events.Chunk:
		if options.onAnswerDelta != nil {
			options.onAnswerDelta(event.Content)
		}
	case events.Done:
		if options.onDone != nil {
			options.onDone(snapshot)
		}
	case events.Error:
		if options.onError != nil {
			options.onError(event.Message)
		}
	}
	if options.onUpdate != nil {
		options.onUpdate(snapshot)
	}
	return true
}

func snapshotState(state State) State {
	snapshot := State{}
	if err := copier.CopyWithOption(&snapshot, &state, copier.Option{DeepCopy: true}); err != nil {
		logger.Warn("failed to deep-copy session state", "error", err)
		return state
	}
	return snapshot
}
