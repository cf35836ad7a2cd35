package bigspring

import (
	"encoding/json"
	"strings"

	"github.com/bigspring/repsearch-go/core/events"
	"github.com/bigspring/repsearch-go/core/search"
)

// recordBody is the wire envelope shared by all record types; the type
// field selects which of the remaining fields are meaningful.
type recordBody struct {
	Type string `json:"type"`

	Intent          search.IntentResult     `json:"intent"`
	ResponseTier    search.Tier             `json:"response_tier"`
	Sources         []search.Source         `json:"sources"`
	Recommendations []search.Recommendation `json:"recommendations"`

	Content string `json:"content"`

	IsInsufficient bool `json:"is_insufficient"`

	Message string `json:"message"`
}

const recordPrefix = "data: "

// lineFramer reassembles discrete events out of decoded text fragments.
// Fragments arrive at arbitrary boundaries; the framer buffers the trailing
// partial line between pushes so a record split across any number of
// deliveries parses identically to one delivered whole. An unterminated
// trailing line left at end of stream is never interpreted.
type lineFramer struct {
	buffer string
}

// Push consumes the next decoded fragment and returns the events parsed
// from every line it completed. Lines without the record prefix, lines with
// an empty payload and lines that fail to parse are dropped; a malformed
// record must never take down an otherwise healthy stream.
func (f *lineFramer) Push(fragment string) []events.Event {
	lines := strings.Split(f.buffer+fragment, "\n")
	f.buffer = lines[len(lines)-1]

	var parsed []events.Event
	for _, line := range lines[:len(lines)-1] {
		if event := parseRecord(line); event != nil {
			parsed = append(parsed, event)
		}
	}
	return parsed
}

func parseRecord(line string) events.Event {
	if !strings.HasPrefix(line, recordPrefix) {
		return nil
	}

	payload := strings.TrimSpace(strings.TrimPrefix(line, recordPrefix))
	if len(payload) == 0 {
		return nil
	}

	var body recordBody
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		logger.Warn("dropping malformed stream record", "error", err)
		return nil
	}

	return body.toEvent()
}

func (body recordBody) toEvent() events.Event {
	switch body.Type {
	case "meta":
		return events.NewMeta(body.Intent, body.ResponseTier, body.Sources, body.Recommendations)
	case "chunk":
		return events.NewChunk(body.Content)
	case "done":
		return events.NewDone(body.IsInsufficient)
	case "error":
		return events.NewError(body.Message)
	default:
		logger.Warn("dropping stream record of unknown type", "type", body.Type)
		return nil
	}
}
