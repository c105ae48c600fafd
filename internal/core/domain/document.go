package domain

import "time"

// Span is a half-open byte range [Start, End) into the submitted text.
type Span struct {
	// Start is the byte offset of the first byte.
	Start int `json:"start"`

	// End is the byte offset one past the last byte.
	End int `json:"end"`
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Sentence is one segmented sentence of a submission.
// Spans are non-overlapping and ordered; concatenating all spans together
// with the inter-span whitespace reconstructs the original text exactly.
type Sentence struct {
	// Index is the ordinal position within the document, starting at 0.
	Index int `json:"index"`

	// Text is the sentence text, including its terminator.
	Text string `json:"text"`

	// Span locates the sentence within the submitted text.
	Span Span `json:"span"`

	// Tokens are the sentence's words in order, lowercased.
	// Contractions ("don't") are kept as single tokens.
	Tokens []string `json:"-"`
}

// CorpusEntry is one reference document the engine compares submissions
// against. Entries are provided by the caller or loaded from local files;
// the engine never fetches them from the network.
type CorpusEntry struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// Label is the human-readable name (title, filename, citation).
	Label string `json:"label"`

	// Text is the full reference text.
	Text string `json:"text"`

	// CreatedAt is when the entry was added.
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisRecord is a persisted analysis run. Persistence is strictly an
// adapter concern; the engine itself holds no cross-call state.
type AnalysisRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Title is the caller-supplied label for the submission.
	Title string `json:"title"`

	// Text is the analyzed submission.
	Text string `json:"text"`

	// Result is the full analysis outcome.
	Result AnalysisResult `json:"result"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `json:"created_at"`
}
