package services

import (
	"errors"
	"testing"

	"github.com/jirateep/thudong-survey/internal/survey"
)

type stubCompareStore struct {
	// averages[field][storedRespondentType]
	averages map[string]map[string]float64
	err      error
}

func (s *stubCompareStore) GroupAverage(field survey.Field, respondentType string) (*float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	if byType, ok := s.averages[field.Name]; ok {
		if v, ok := byType[respondentType]; ok {
			out := v
			return &out, nil
		}
	}
	return nil, nil
}

func TestCompareGroupsShape(t *testing.T) {
	store := &stubCompareStore{averages: map[string]map[string]float64{
		"event_schedule": {
			survey.RespondentStudent: 13.0 / 3.0, // 4.333... -> 4.33
			survey.RespondentStaff:   5,
		},
	}}
	svc := NewCompareService(store)
	out, err := svc.CompareGroups(survey.CategoryEvent)
	if err != nil {
		t.Fatalf("CompareGroups error: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected all 6 event fields, got %d", len(out))
	}
	for name, gc := range out {
		if len(gc.Averages) != 3 {
			t.Fatalf("%s: expected 3 group keys, got %d", name, len(gc.Averages))
		}
	}

	gc := out["event_schedule"]
	if gc.Label != "กำหนดการ" {
		t.Fatalf("unexpected label %q", gc.Label)
	}
	if gc.Averages["student"] == nil || *gc.Averages["student"] != 4.33 {
		t.Fatalf("student average: %v", gc.Averages["student"])
	}
	if gc.Averages["staff"] == nil || *gc.Averages["staff"] != 5 {
		t.Fatalf("staff average: %v", gc.Averages["staff"])
	}
	if gc.Averages["observer"] != nil {
		t.Fatalf("group with no data must report nil, got %v", *gc.Averages["observer"])
	}
}

func TestCompareGroupsNoDataIsNilEverywhere(t *testing.T) {
	svc := NewCompareService(&stubCompareStore{})
	out, err := svc.CompareGroups(survey.CategoryFacility)
	if err != nil {
		t.Fatalf("CompareGroups error: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 facility fields, got %d", len(out))
	}
	for name, gc := range out {
		for key, avg := range gc.Averages {
			if avg != nil {
				t.Fatalf("%s/%s: expected nil, got %v", name, key, *avg)
			}
		}
	}
}

func TestCompareGroupsRejectsOtherCategories(t *testing.T) {
	svc := NewCompareService(&stubCompareStore{})
	for _, cat := range []string{survey.CategoryKnowledge, survey.CategoryMoral, survey.CategoryAll, "", "bogus"} {
		out, err := svc.CompareGroups(cat)
		if err != nil {
			t.Fatalf("CompareGroups(%q) error: %v", cat, err)
		}
		if len(out) != 0 {
			t.Fatalf("CompareGroups(%q): expected empty result, got %d fields", cat, len(out))
		}
	}
}

func TestCompareGroupsPropagatesStoreError(t *testing.T) {
	svc := NewCompareService(&stubCompareStore{err: errors.New("db closed")})
	if _, err := svc.CompareGroups(survey.CategoryEvent); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}
