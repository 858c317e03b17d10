package services

import (
	"fmt"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// CompareStore abstracts the per-group aggregate CompareService needs.
type CompareStore interface {
	GroupAverage(field survey.Field, respondentType string) (*float64, error)
}

// GroupComparison holds one field's averages broken out by respondent
// group, keyed by filter key (student, staff, observer). A nil average
// means that group gave no answers for the field — distinct from zero.
type GroupComparison struct {
	Label    string              `json:"label"`
	Averages map[string]*float64 `json:"averages"`
}

// CompareService computes side-by-side group averages.
type CompareService struct {
	store CompareStore
}

func NewCompareService(store CompareStore) *CompareService {
	return &CompareService{store: store}
}

// CompareGroups computes, for each field in the category, the rounded mean
// per respondent group. Only event and facility are comparison-relevant;
// any other category (knowledge and moral included) selects no fields and
// returns an empty map.
func (s *CompareService) CompareGroups(category string) (map[string]GroupComparison, error) {
	if category != survey.CategoryEvent && category != survey.CategoryFacility {
		return map[string]GroupComparison{}, nil
	}

	out := map[string]GroupComparison{}
	for _, f := range survey.FieldsFor(category) {
		gc := GroupComparison{Label: f.Label, Averages: map[string]*float64{}}
		for _, key := range survey.RespondentKeys {
			stored, _ := survey.RespondentTypeFor(key)
			avg, err := s.store.GroupAverage(f, stored)
			if err != nil {
				return nil, fmt.Errorf("compare %s/%s: %w", f.Name, key, err)
			}
			if avg != nil {
				v := round2(*avg)
				avg = &v
			}
			gc.Averages[key] = avg
		}
		out[f.Name] = gc
	}
	return out, nil
}
