package types

// Intent is a coarse classification of what a caller's query is trying to
// accomplish. Computed per request from keyword presence; never persisted.
type Intent string

const (
	IntentSetup      Intent = "setup"
	IntentAuth       Intent = "auth"
	IntentData       Intent = "data"
	IntentError      Intent = "error"
	IntentTimestamps Intent = "timestamps"
	IntentImports    Intent = "imports"
	IntentGeneral    Intent = "general"
)

// Severity grades an anti-pattern warning.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank returns the sort rank of the severity; lower sorts first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Warning describes a known-incorrect usage pattern detected in the caller's
// query or context, together with the corrected alternative.
type Warning struct {
	Severity    Severity
	Message     string
	Alternative string
}

// SearchContext carries optional caller state that sharpens anti-pattern
// detection. Both fields may be empty.
type SearchContext struct {
	CurrentFile string
	LastError   string
}

// ScoredResult is one ranked search hit. BaseScore comes from the store's
// text match; Boost is the relevance engine's additive adjustment.
type ScoredResult struct {
	Document     *Document
	BaseScore    float64
	Boost        float64
	BoostReasons []string
	Highlighted  bool // Display-only marker, not part of the ranking contract
}

// Score returns the combined relevance score used for ordering.
func (r ScoredResult) Score() float64 {
	return r.BaseScore + r.Boost
}

// SearchResponse is the structured result of one search operation.
// Warnings are ordered by severity; Results by descending combined score.
// Suggestions is non-nil only when the struggling-user heuristic fires.
type SearchResponse struct {
	Intent      Intent
	Warnings    []Warning
	Results     []ScoredResult
	Suggestions []string
}
