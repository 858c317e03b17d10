package importer

import (
	"strings"
	"testing"

	"github.com/jirateep/thudong-survey/internal/survey"
)

func row(overrides map[int]string) []string {
	cols := make([]string, 32)
	for i, v := range overrides {
		cols[i] = v
	}
	return cols
}

func TestParseRecordMapsScores(t *testing.T) {
	r := ParseRecord(row(map[int]string{
		0:  "12/14/2025 9:10:11",
		1:  survey.RespondentStudent,
		2:  "มากที่สุด",     // knowledge_history
		8:  "ปานกลาง",       // knowledge_daily
		9:  "ได้สติ",        // knowledge_other
		10: "มาก",           // moral_metta
		18: "พอใจมากที่สุด", // event_schedule
		29: "พอใจน้อย",      // facility_bathroom
		30: "ประทับใจพี่เลี้ยง",
		31: "อยากให้เพิ่มห้องน้ำ",
	}))

	if r.Timestamp != "12/14/2025 9:10:11" {
		t.Fatalf("timestamp: %q", r.Timestamp)
	}
	if r.RespondentType != survey.RespondentStudent {
		t.Fatalf("respondent type: %q", r.RespondentType)
	}
	want := map[string]int{
		"knowledge_history": 5,
		"knowledge_daily":   3,
		"moral_metta":       4,
		"event_schedule":    5,
		"facility_bathroom": 2,
	}
	if len(r.Scores) != len(want) {
		t.Fatalf("expected %d scores, got %d: %v", len(want), len(r.Scores), r.Scores)
	}
	for name, v := range want {
		if r.Scores[name] != v {
			t.Fatalf("%s: expected %d, got %d", name, v, r.Scores[name])
		}
	}
	if r.KnowledgeOther != "ได้สติ" {
		t.Fatalf("knowledge_other: %q", r.KnowledgeOther)
	}
	if r.ImpressedText != "ประทับใจพี่เลี้ยง" || r.SuggestionText != "อยากให้เพิ่มห้องน้ำ" {
		t.Fatalf("free text: %q / %q", r.ImpressedText, r.SuggestionText)
	}
}

func TestParseRecordCoercesInvalidToNull(t *testing.T) {
	r := ParseRecord(row(map[int]string{
		2:  "ดีมากๆ",    // not on the scale
		18: "มากที่สุด", // agreement text in a satisfaction column
		24: "พอใจมาก",
	}))
	if _, ok := r.Scores["knowledge_history"]; ok {
		t.Fatalf("unparseable answer must become a missing score")
	}
	if _, ok := r.Scores["event_schedule"]; ok {
		t.Fatalf("wrong-scale answer must become a missing score")
	}
	if r.Scores["facility_pr"] != 4 {
		t.Fatalf("facility_pr: expected 4, got %d", r.Scores["facility_pr"])
	}
}

func TestParseRecordShortRow(t *testing.T) {
	r := ParseRecord([]string{"ts", survey.RespondentStaff, "มาก"})
	if r.Scores["knowledge_history"] != 4 {
		t.Fatalf("knowledge_history: %v", r.Scores)
	}
	if len(r.Scores) != 1 || r.ImpressedText != "" {
		t.Fatalf("missing columns must parse as absent values")
	}
}

func TestParseSkipsHeaderAndBlankRows(t *testing.T) {
	csvData := "ประทับเวลา,สถานะ,q1\n" +
		"ts1," + survey.RespondentStaff + ",มาก\n" +
		",,\n" +
		"ts2," + survey.RespondentObserver + ",\"ปานกลาง\"\n"
	records, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Scores["knowledge_history"] != 3 {
		t.Fatalf("quoted answer not parsed: %v", records[1].Scores)
	}
}

func TestParseQuotedCommaText(t *testing.T) {
	cols := make([]string, 32)
	cols[0] = "ts"
	cols[1] = survey.RespondentStudent
	cols[30] = `"ประทับใจอาหาร, สถานที่"`
	csvData := "h\n" + strings.Join(cols, ",") + "\n"
	records, err := Parse(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ImpressedText != "ประทับใจอาหาร, สถานที่" {
		t.Fatalf("impressed text: %q", records[0].ImpressedText)
	}
}
