package events

import "github.com/bigspring/repsearch-go/core/search"

// Meta carries the fixed per-session metadata: the classified intent, the
// response tier and the ordered sources and recommendations. The server
// sends it once, before any answer text streams.
type Meta struct {
	Base
	Intent          search.IntentResult
	ResponseTier    search.Tier
	Sources         []search.Source
	Recommendations []search.Recommendation
}

func NewMeta(intent search.IntentResult, tier search.Tier, sources []search.Source, recommendations []search.Recommendation) Meta {
	return Meta{
		Base:            NewBase(KindMeta),
		Intent:          intent,
		ResponseTier:    tier,
		Sources:         sources,
		Recommendations: recommendations,
	}
}
