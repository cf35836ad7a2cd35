package bigspring

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/bigspring/repsearch-go/core/events"
	"github.com/bigspring/repsearch-go/core/search"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// connectFailedMessage is the diagnostic surfaced when the connection fails
// before any response data was read. Low-level transport faults are not
// propagated upward; a failed session always ends in a single error event.
const connectFailedMessage = "Unable to reach the search service. Please try again."

// SearchStream prepares a streaming search. No request is sent until the
// returned stream's Events iterator is consumed.
func (c *Client) SearchStream(query search.Query) events.Stream {
	return &Stream{client: c, query: query}
}

type Stream struct {
	client *Client
	query  search.Query
}

// Events performs the request and yields the response's events in arrival
// order. Exactly one attempt is made; every failure mode terminates the
// sequence, and all failures except a context cancellation surface as a
// single error event. Cancelling ctx stops the stream without synthesizing
// any event.
func (s *Stream) Events(ctx context.Context) iter.Seq[events.Event] {
	requestToFirstEventTime := time.Time{}
	setRequestToFirstEventTime := func(span trace.Span) {
		if requestToFirstEventTime.IsZero() {
			return
		}
		span.SetAttributes(attribute.Float64("response.request_to_first_event_time", time.Since(requestToFirstEventTime).Seconds()))
		span.AddEvent("received first event")
		requestToFirstEventTime = time.Time{}
	}

	return func(yield func(events.Event) bool) {
		ctx, span := tracer.Start(ctx, "stream search response")
		defer span.End()
		span.SetAttributes(attribute.String("request.mode", string(s.query.Mode)))

		requestToFirstEventTime = time.Now()
		span.AddEvent("request started")
		resp, err := s.client.postQuery(ctx, "/search/stream", s.query)
		if err != nil {
			if ctx.Err() != nil {
				// Cancelled by the caller: stop silently.
				return
			}
			err = fmt.Errorf("error starting stream: %w", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if errors.Is(err, search.ErrQueryTooLong) {
				yield(events.NewError(search.ErrQueryTooLong.Error()))
				return
			}
			yield(events.NewError(connectFailedMessage))
			return
		}
		defer resp.Body.Close()

		span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
		if resp.StatusCode != http.StatusOK {
			if resp.StatusCode == http.StatusUnauthorized {
				s.client.onUnauthorized()
			}
			if errorBody, err := io.ReadAll(resp.Body); err == nil {
				span.SetAttributes(attribute.String("response.error", string(errorBody)))
			}
			err := fmt.Errorf("non-OK HTTP status: %s", resp.Status)
			span.RecordError(err)
			yield(events.NewError(fmt.Sprintf("HTTP %d", resp.StatusCode)))
			return
		}

		decoder := textDecoder{}
		framer := lineFramer{}
		buf := make([]byte, 4096)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				setRequestToFirstEventTime(span)
				for _, event := range framer.Push(decoder.Decode(buf[:n])) {
					if !yield(event) {
						return
					}
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					// Cancelled by the caller: stop silently.
					return
				}
				err = fmt.Errorf("error reading streamed response: %w", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				yield(events.NewError(err.Error()))
				return
			}
		}
	}
}
