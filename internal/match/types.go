package match

// Match is one unit in a rendered sign sequence: either a vocabulary entry
// or a synthesized fingerspelling of an unmatched token.
type Match struct {
	Word            string   `json:"word"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	Confidence      float64  `json:"confidence"`
	MatchedFrom     string   `json:"matched_from,omitempty"`
	Letters         []string `json:"letters,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
	LetterVideoURLs []string `json:"letter_videos,omitempty"`
}

// Response is an ordered sign sequence plus the method that produced it.
type Response struct {
	Signs  []Match `json:"signs"`
	Method string  `json:"method"`
	Text   string  `json:"text"`
}

const (
	MethodLocal       = "local"
	MethodAI          = "ai"
	MethodFingerspell = "fingerspell"

	CategoryFingerspelled = "fingerspelled"
)

// Fingerspelled reports whether the match spells letters instead of
// referencing a vocabulary entry.
func (m Match) Fingerspelled() bool {
	return m.Category == CategoryFingerspelled
}
