package session

import (
	"testing"

	"github.com/bigspring/repsearch-go/core/events"
	"github.com/bigspring/repsearch-go/core/search"
)

func streamingState() State {
	return State{ID: "test-session", IsStreaming: true}
}

func TestApplyChunksConcatenateInOrder(t *testing.T) {
	state := streamingState()
	for _, content := range []string{"Hel", "lo", " ", "world"} {
		state = apply(state, events.NewChunk(content))
	}

	if state.Answer != "Hello world" {
		t.Fatalf("expected concatenated answer, got %q", state.Answer)
	}
	if !state.IsStreaming || state.IsDone {
		t.Fatalf("expected session to still be streaming")
	}
}

func TestApplyMetaSetsMetadataOnce(t *testing.T) {
	intent := search.IntentResult{Intent: search.IntentAssignedKnowledge, Confidence: 0.92, Reasoning: "query names an assigned play"}
	sources := []search.Source{{AssetID: "asset-1", AssetType: "pdf", PlayTitle: "Objection Handling", RepTitle: "Pricing objections", ChunkText: "..."}}
	recommendations := []search.Recommendation{{PlayID: "play-1", PlayTitle: "Objection Handling", Status: "assigned", Reason: "related to your query"}}

	state := apply(streamingState(), events.NewMeta(intent, search.TierGrounded, sources, recommendations))

	if state.Intent == nil || state.Intent.Intent != search.IntentAssignedKnowledge {
		t.Fatalf("expected intent to be set, got %+v", state.Intent)
	}
	if state.ResponseTier != search.TierGrounded {
		t.Fatalf("expected grounded tier, got %q", state.ResponseTier)
	}
	if len(state.Sources) != 1 || len(state.Recommendations) != 1 {
		t.Fatalf("expected sources and recommendations to be set")
	}

	state = apply(state, events.NewChunk("answer text"))
	if state.ResponseTier != search.TierGrounded || len(state.Sources) != 1 {
		t.Fatalf("expected chunk event to leave metadata untouched")
	}
}

func TestApplyDoneKeepsSufficientAnswer(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewMeta(search.IntentResult{Intent: search.IntentAssignedKnowledge}, search.TierGrounded, nil, nil))
	state = apply(state, events.NewChunk("Hello"))
	state = apply(state, events.NewDone(false))

	if state.Answer != "Hello" {
		t.Fatalf("expected answer to be kept, got %q", state.Answer)
	}
	if state.ResponseTier != search.TierGrounded {
		t.Fatalf("expected tier to be kept, got %q", state.ResponseTier)
	}
	if !state.IsDone || state.IsStreaming {
		t.Fatalf("expected terminal done state")
	}
}

func TestApplyDoneKeepsTier1Refusal(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewMeta(search.IntentResult{Intent: search.IntentOutOfScope}, search.Tier1, nil, nil))
	state = apply(state, events.NewChunk("Out of scope."))
	state = apply(state, events.NewDone(false))

	if state.ResponseTier != search.Tier1 {
		t.Fatalf("expected tier1 to survive done, got %q", state.ResponseTier)
	}
	if state.Answer != "Out of scope." {
		t.Fatalf("expected refusal answer to be kept, got %q", state.Answer)
	}
}

func TestApplyDoneDowngradesSentinelAnswer(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewMeta(search.IntentResult{Intent: search.IntentAssignedKnowledge}, search.TierGrounded, nil, nil))
	state = apply(state, events.NewChunk("  INSUFFICIENT"))
	state = apply(state, events.NewChunk("_CONTEXT  "))
	state = apply(state, events.NewDone(false))

	if state.ResponseTier != search.Tier3 {
		t.Fatalf("expected forced tier3, got %q", state.ResponseTier)
	}
	if state.Answer != insufficientAnswer {
		t.Fatalf("expected fallback answer, got %q", state.Answer)
	}
}

func TestApplyDoneDowngradesOnInsufficientFlag(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewMeta(search.IntentResult{Intent: search.IntentAssignedKnowledge}, search.TierGrounded, nil, nil))
	state = apply(state, events.NewChunk("a perfectly ordinary answer"))
	state = apply(state, events.NewDone(true))

	if state.ResponseTier != search.Tier3 {
		t.Fatalf("expected forced tier3, got %q", state.ResponseTier)
	}
	if state.Answer != insufficientAnswer {
		t.Fatalf("expected fallback answer, got %q", state.Answer)
	}
}

func TestApplyErrorPreservesPartialAnswer(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewMeta(search.IntentResult{Intent: search.IntentAssignedKnowledge}, search.TierGrounded, nil, nil))
	state = apply(state, events.NewChunk("partial"))
	state = apply(state, events.NewError("generator failed"))

	if state.Error != "generator failed" {
		t.Fatalf("expected error message, got %q", state.Error)
	}
	if state.Answer != "partial" {
		t.Fatalf("expected partial answer to survive the error, got %q", state.Answer)
	}
	if !state.IsDone || state.IsStreaming || !state.IsErrored() {
		t.Fatalf("expected terminal errored state")
	}
}

func TestApplyIgnoresEventsAfterTerminal(t *testing.T) {
	state := streamingState()
	state = apply(state, events.NewChunk("final"))
	state = apply(state, events.NewDone(false))

	terminal := state
	state = apply(state, events.NewChunk("late"))
	state = apply(state, events.NewError("late error"))

	if state.Answer != terminal.Answer || state.Error != "" {
		t.Fatalf("expected terminal state to absorb late events, got %+v", state)
	}
}

func TestApplyIgnoresEventsWhileIdle(t *testing.T) {
	state := apply(State{}, events.NewChunk("stray"))
	if state.Answer != "" {
		t.Fatalf("expected idle state to ignore events, got %q", state.Answer)
	}
}
