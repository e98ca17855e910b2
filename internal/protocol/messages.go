package protocol

import (
	"time"

	"github.com/signbridge-labs/signbridge-core/internal/match"
)

// Transcript represents recognized speech published on the bus by an
// external input source. Partial transcripts are never matched.
type Transcript struct {
	SessionID  string    `json:"session_id"`
	Text       string    `json:"text"`
	Partial    bool      `json:"partial"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence float64   `json:"confidence,omitempty"`
	UseAI      bool      `json:"use_ai,omitempty"`
}

// SignRender carries a matched sign sequence to renderers.
type SignRender struct {
	SessionID string        `json:"session_id"`
	Text      string        `json:"text"`
	Method    string        `json:"method"`
	Signs     []match.Match `json:"signs"`
	Timestamp time.Time     `json:"timestamp"`
}

const (
	SubjectTranscriptPartial = "speech.text.partial"
	SubjectTranscriptFinal   = "speech.text.final"
	SubjectSignRender        = "signs.render"
)
