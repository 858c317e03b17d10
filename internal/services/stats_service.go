// Package services hosts the query layer over the survey store: per-field
// statistics, group comparison, and ranked free-text retrieval. Each
// service depends on a small store interface so it can be exercised
// against stubs.
package services

import (
	"fmt"
	"math"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// StatsStore abstracts the aggregates StatsService needs.
type StatsStore interface {
	FieldStats(field survey.Field, respondentType string) (survey.FieldAggregate, error)
	Overview() (survey.Overview, error)
}

// FieldStats is the per-field statistics block returned to callers.
// Distribution counts and percentage shares are keyed by the Thai level
// labels used in the formatted output.
type FieldStats struct {
	Label        string             `json:"label"`
	Average      float64            `json:"avg"`
	Total        int                `json:"total"`
	Distribution map[string]int     `json:"distribution"`
	Percentage   map[string]float64 `json:"percentage"`
}

// StatsService computes per-field statistics and the dataset overview.
type StatsService struct {
	store StatsStore
}

func NewStatsService(store StatsStore) *StatsService {
	return &StatsService{store: store}
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// round1 rounds half away from zero to 1 decimal place.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Statistics computes average, total, distribution, and percentage for
// every score field in the category, restricted to the respondent filter
// key. Fields with zero non-null responses are omitted entirely. An
// unknown category selects no fields; an unknown respondent key applies
// no filter. Both yield an empty (or unfiltered) result, not an error.
func (s *StatsService) Statistics(category, respondentType string) (map[string]FieldStats, error) {
	stored, _ := survey.RespondentTypeFor(respondentType)

	out := map[string]FieldStats{}
	for _, f := range survey.FieldsFor(category) {
		agg, err := s.store.FieldStats(f, stored)
		if err != nil {
			return nil, fmt.Errorf("statistics for %s: %w", f.Name, err)
		}
		if agg.Total == 0 {
			continue
		}
		fs := FieldStats{
			Label:        f.Label,
			Average:      round2(agg.Average),
			Total:        agg.Total,
			Distribution: map[string]int{},
			Percentage:   map[string]float64{},
		}
		for level := 1; level <= 5; level++ {
			count := agg.Levels[level-1]
			fs.Distribution[fmt.Sprintf("ระดับ %d (%s)", level, survey.LevelNames[level-1])] = count
			fs.Percentage[fmt.Sprintf("ระดับ %d", level)] = round1(float64(count) / float64(agg.Total) * 100)
		}
		out[f.Name] = fs
	}
	return out, nil
}

// Overview returns the dataset-level counts.
func (s *StatsService) Overview() (survey.Overview, error) {
	ov, err := s.store.Overview()
	if err != nil {
		return survey.Overview{}, fmt.Errorf("overview: %w", err)
	}
	return ov, nil
}
