package survey

import "testing"

func TestScoreFieldLayout(t *testing.T) {
	counts := map[string]int{}
	for _, f := range ScoreFields {
		counts[f.Category]++
	}
	expected := map[string]int{
		CategoryKnowledge: 7,
		CategoryMoral:     7,
		CategoryEvent:     6,
		CategoryFacility:  6,
	}
	total := 0
	for cat, want := range expected {
		if counts[cat] != want {
			t.Fatalf("expected %d %s fields, got %d", want, cat, counts[cat])
		}
		total += want
	}
	if len(ScoreFields) != total {
		t.Fatalf("expected %d score fields, got %d", total, len(ScoreFields))
	}
}

func TestFieldsForAllPreservesCategoryOrder(t *testing.T) {
	fields := FieldsFor(CategoryAll)
	if len(fields) != len(ScoreFields) {
		t.Fatalf("expected %d fields, got %d", len(ScoreFields), len(fields))
	}
	order := []string{CategoryKnowledge, CategoryMoral, CategoryEvent, CategoryFacility}
	idx := 0
	for _, f := range fields {
		for idx < len(order) && f.Category != order[idx] {
			idx++
		}
		if idx == len(order) {
			t.Fatalf("field %s out of category order", f.Name)
		}
	}
}

func TestFieldsForUnknownCategory(t *testing.T) {
	if got := FieldsFor("bogus"); len(got) != 0 {
		t.Fatalf("expected no fields for unknown category, got %d", len(got))
	}
}

func TestLabelFallback(t *testing.T) {
	if got := Label("facility_food"); got != "อาหาร เครื่องดื่ม" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := Label("no_such_field"); got != "no_such_field" {
		t.Fatalf("expected raw name fallback, got %q", got)
	}
}

func TestRespondentTypeFor(t *testing.T) {
	if v, ok := RespondentTypeFor("student"); !ok || v != RespondentStudent {
		t.Fatalf("student: got %q ok=%v", v, ok)
	}
	if v, ok := RespondentTypeFor("staff"); !ok || v != RespondentStaff {
		t.Fatalf("staff: got %q ok=%v", v, ok)
	}
	if v, ok := RespondentTypeFor("observer"); !ok || v != RespondentObserver {
		t.Fatalf("observer: got %q ok=%v", v, ok)
	}
	if v, ok := RespondentTypeFor("all"); ok || v != "" {
		t.Fatalf("all should apply no filter, got %q ok=%v", v, ok)
	}
	if v, ok := RespondentTypeFor("typo"); ok || v != "" {
		t.Fatalf("unknown key should apply no filter, got %q ok=%v", v, ok)
	}
}

func TestAnswerScales(t *testing.T) {
	if AgreementScores["มากที่สุด"] != 5 || AgreementScores["น้อยที่สุด"] != 1 {
		t.Fatalf("agreement scale endpoints wrong")
	}
	if SatisfactionScores["พอใจมากที่สุด"] != 5 || SatisfactionScores["พอใจน้อยที่สุด"] != 1 {
		t.Fatalf("satisfaction scale endpoints wrong")
	}
	if _, ok := AgreementScores["พอใจมาก"]; ok {
		t.Fatalf("satisfaction answer must not map on the agreement scale")
	}
}
