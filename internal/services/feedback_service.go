package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// Default result limits applied when the caller passes none.
const (
	DefaultSearchLimit = 10
	DefaultTopicLimit  = 20
)

// ErrEmptyQuery is returned when a search is attempted without a query.
var ErrEmptyQuery = errors.New("search query is required")

// FeedbackStore abstracts the text retrieval operations FeedbackService
// needs.
type FeedbackStore interface {
	SearchFeedback(query, textType string, limit int) ([]survey.SearchResult, error)
	SearchTexts(kind, topic string, limit int) ([]survey.TextRow, error)
	ListTexts(kind string, limit int) ([]survey.TextRow, error)
}

// FeedbackService runs ranked search and topic listing over the free-text
// answers.
type FeedbackService struct {
	store FeedbackStore
}

func NewFeedbackService(store FeedbackStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Search performs a ranked full-text lookup. textType defaults to all and
// limit defaults to DefaultSearchLimit. An empty result is not an error.
func (s *FeedbackService) Search(query, textType string, limit int) ([]survey.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if textType == "" {
		textType = survey.TextAll
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	results, err := s.store.SearchFeedback(query, textType, limit)
	if err != nil {
		return nil, fmt.Errorf("search feedback: %w", err)
	}
	return results, nil
}

// Improvements lists suggestion texts, ranked by topic relevance when a
// topic is given and in insertion order otherwise.
func (s *FeedbackService) Improvements(topic string, limit int) ([]survey.TextRow, error) {
	return s.texts(survey.TextSuggestion, topic, limit)
}

// Impressions lists impressed texts with the same ordering rule as
// Improvements.
func (s *FeedbackService) Impressions(topic string, limit int) ([]survey.TextRow, error) {
	return s.texts(survey.TextImpressed, topic, limit)
}

func (s *FeedbackService) texts(kind, topic string, limit int) ([]survey.TextRow, error) {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}
	if strings.TrimSpace(topic) != "" {
		rows, err := s.store.SearchTexts(kind, topic, limit)
		if err != nil {
			return nil, fmt.Errorf("list %s by topic: %w", kind, err)
		}
		return rows, nil
	}
	rows, err := s.store.ListTexts(kind, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return rows, nil
}
