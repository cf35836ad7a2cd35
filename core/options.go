package session

import (
	"github.com/bigspring/repsearch-go/core/events"
)

type Option func(*Session)

func WithStreamer(streamer Streamer) Option {
	return func(s *Session) { s.streamer = streamer }
}

type StartOptions struct {
	onMeta        func(meta events.Meta)
	onAnswerDelta func(delta string)
	onDone        func(state State)
	onError       func(message string)
	onUpdate      func(state State)
}

type StartOption func(*StartOptions)

// WithMetaCallback registers a callback for the session's metadata event:
// intent classification, response tier, sources and recommendations.
func WithMetaCallback(callback func(meta events.Meta)) StartOption {
	return func(o *StartOptions) {
		o.onMeta = callback
	}
}

// WithAnswerDeltaCallback registers a callback for each streamed answer
// segment. Segments are append-only and arrive in stream order.
func WithAnswerDeltaCallback(callback func(delta string)) StartOption {
	return func(o *StartOptions) {
		o.onAnswerDelta = callback
	}
}

// WithDoneCallback registers a callback for successful completion. The
// state passed in already has the insufficiency correction applied.
func WithDoneCallback(callback func(state State)) StartOption {
	return func(o *StartOptions) {
		o.onDone = callback
	}
}

// WithErrorCallback registers a callback for terminal failures. Answer text
// accumulated before the failure stays in the session state.
func WithErrorCallback(callback func(message string)) StartOption {
	return func(o *StartOptions) {
		o.onError = callback
	}
}

// WithUpdateCallback registers a callback invoked with a state snapshot
// after every applied event, whatever its kind.
func WithUpdateCallback(callback func(state State)) StartOption {
	return func(o *StartOptions) {
		o.onUpdate = callback
	}
}
