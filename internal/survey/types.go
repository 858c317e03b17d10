package survey

// Response is one survey submission. Score fields are keyed by the
// descriptor names in ScoreFields; a missing key means the question was
// not answered. Empty text fields are stored as NULL.
type Response struct {
	ID             int64
	Timestamp      string
	RespondentType string
	Scores         map[string]int
	KnowledgeOther string
	MoralOther     string
	ImpressedText  string
	SuggestionText string
}

// SearchResult is one ranked hit from the full-text index joined back to
// its response row. Rank follows the bm25 convention: lower is better.
type SearchResult struct {
	ID             int64   `json:"id"`
	Timestamp      string  `json:"timestamp,omitempty"`
	RespondentType string  `json:"respondent_type,omitempty"`
	ImpressedText  string  `json:"impressed_text,omitempty"`
	SuggestionText string  `json:"suggestion_text,omitempty"`
	Rank           float64 `json:"rank"`
}

// TextRow is one free-text answer with its respondent context.
type TextRow struct {
	ID             int64  `json:"id"`
	RespondentType string `json:"respondent_type,omitempty"`
	Text           string `json:"text"`
}

// FieldAggregate holds the raw per-field aggregates computed by the store.
// Levels is indexed by score-1. Total is the count of non-null values and
// always equals the sum of Levels.
type FieldAggregate struct {
	Average float64
	Total   int
	Levels  [5]int
}

// RespondentCount pairs a stored respondent type with its row count.
type RespondentCount struct {
	RespondentType string `json:"respondent_type"`
	Count          int    `json:"count"`
}

// Overview summarizes the whole dataset.
type Overview struct {
	TotalResponses   int               `json:"total_responses"`
	ByRespondentType []RespondentCount `json:"by_respondent_type"`
	WithImpressed    int               `json:"with_impressed_text"`
	WithSuggestion   int               `json:"with_suggestion_text"`
}

// Free-text kinds accepted by the search and listing operations.
const (
	TextImpressed  = "impressed"
	TextSuggestion = "suggestion"
	TextAll        = "all"
)
