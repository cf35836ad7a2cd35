package events

import (
	"context"
	"iter"
)

// Stream yields stream events in arrival order until the stream ends or
// ctx is cancelled. Cancellation is cooperative: a stream may keep yielding
// for a short while after ctx is cancelled; consumers are expected to guard
// against late events themselves.
type Stream interface {
	Events(ctx context.Context) iter.Seq[Event]
}
