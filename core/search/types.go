package search

// MaxQueryLength is the server-enforced upper bound on query text. The
// client checks it before submitting so an oversized query fails fast
// instead of burning a round trip.
const MaxQueryLength = 500

type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeKnowledge   Mode = "knowledge"
	ModePerformance Mode = "performance"
)

// Query is a single submitted search. Immutable once submitted.
type Query struct {
	Text string
	Mode Mode
}

type Intent string

const (
	IntentAssignedKnowledge   Intent = "assigned_knowledge"
	IntentPerformanceHistory  Intent = "performance_history"
	IntentCombined            Intent = "combined"
	IntentGeneralProfessional Intent = "general_professional"
	IntentOutOfScope          Intent = "out_of_scope"
)

// IntentResult is the server-side classification of a query.
type IntentResult struct {
	Intent     Intent  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type Tier string

const (
	Tier1        Tier = "tier1"
	Tier2        Tier = "tier2"
	Tier3        Tier = "tier3"
	TierGrounded Tier = "grounded"
)

// Source is one retrieved chunk of assigned material backing an answer.
type Source struct {
	AssetID        string   `json:"asset_id"`
	AssetType      string   `json:"asset_type"`
	PlayID         *string  `json:"play_id,omitempty"`
	PlayTitle      string   `json:"play_title"`
	RepTitle       string   `json:"rep_title"`
	ChunkText      string   `json:"chunk_text"`
	PageNumber     *int     `json:"page_number,omitempty"`
	TimestampStart *string  `json:"timestamp_start,omitempty"`
	TimestampEnd   *string  `json:"timestamp_end,omitempty"`
	Score          *float64 `json:"score,omitempty"`
	SectionID      *string  `json:"section_id,omitempty"`
	Heading        *string  `json:"heading,omitempty"`
	FeedbackScore  *int     `json:"feedback_score,omitempty"`
}

// Recommendation is a play suggested alongside an answer.
type Recommendation struct {
	PlayID    string  `json:"play_id"`
	PlayTitle string  `json:"play_title"`
	RepID     *string `json:"rep_id,omitempty"`
	RepTitle  *string `json:"rep_title,omitempty"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason"`
}

// Response is the non-streaming search result returned in one payload.
type Response struct {
	Intent          IntentResult     `json:"intent"`
	ResponseTier    Tier             `json:"response_tier"`
	Answer          string           `json:"answer"`
	Sources         []Source         `json:"sources"`
	Recommendations []Recommendation `json:"recommendations"`
}
