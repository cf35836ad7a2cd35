package session

import (
	"strings"

	"github.com/bigspring/repsearch-go/core/events"
	"github.com/bigspring/repsearch-go/core/search"
)

// insufficientSentinel is the reserved answer text the generator emits when
// it finds no grounding for a query. Matched after trimming; a matching
// answer is downgraded exactly as an explicit insufficiency flag would be.
const insufficientSentinel = "INSUFFICIENT_CONTEXT"

// insufficientAnswer replaces the sentinel so it never reaches the user.
const insufficientAnswer = "I couldn't find any specific information in your assigned training materials that " +
	"addresses this query. This may be because the topic isn't covered in your current " +
	"plays, or your query may be too specific. Try rephrasing your question or explore " +
	"the recommendations below."

// State is a point-in-time view of one search session.
//
// Answer grows by append only while IsStreaming is true. Once IsDone is set
// it changes at most once more, by the insufficiency correction applied at
// the terminal event, never incrementally. Intent, ResponseTier, Sources and
// Recommendations are set by the meta event and untouched by chunk events;
// only the correction may override ResponseTier afterwards.
type State struct {
	ID    string
	Query search.Query

	Intent          *search.IntentResult
	ResponseTier    search.Tier
	Sources         []search.Source
	Recommendations []search.Recommendation

	Answer      string
	IsStreaming bool
	IsDone      bool
	Error       string
}

// IsErrored reports whether the session ended with a server or transport
// failure. Answer text accumulated before the failure is preserved.
func (s State) IsErrored() bool {
	return s.Error != ""
}

// apply folds one stream event into the state, returning the new state.
//
// It is a pure transition function: no transport, no callbacks, no shared
// mutation. Events arriving once the session is no longer streaming are
// no-ops, which makes terminal states absorbing.
func apply(state State, event events.Event) State {
	if !state.IsStreaming {
		return state
	}

	switch event := event.(type) {
	case events.Meta:
		state.Intent = &event.Intent
		state.ResponseTier = event.ResponseTier
		state.Sources = event.Sources
		state.Recommendations = event.Recommendations

	case events.Chunk:
		state.Answer += event.Content

	case events.Done:
		if event.IsInsufficient || strings.TrimSpace(state.Answer) == insufficientSentinel {
			state.Answer = insufficientAnswer
			state.ResponseTier = search.Tier3
		}
		state.IsStreaming = false
		state.IsDone = true

	case events.Error:
		state.Error = event.Message
		state.IsStreaming = false
		state.IsDone = true
	}

	return state
}
