package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jirateep/thudong-survey/internal/services"
	"github.com/jirateep/thudong-survey/internal/survey"
)

func TestFormatStatisticsFollowsCategoryOrder(t *testing.T) {
	stats := map[string]services.FieldStats{
		"facility_food": {
			Label: "อาหาร เครื่องดื่ม", Average: 4.5, Total: 2,
			Percentage: map[string]float64{"ระดับ 5": 50, "ระดับ 4": 50, "ระดับ 3": 0},
		},
		"knowledge_dharma": {
			Label: "เกร็ดธรรมะ", Average: 4, Total: 1,
			Percentage: map[string]float64{"ระดับ 5": 0, "ระดับ 4": 100, "ระดับ 3": 0},
		},
	}
	out := formatStatistics("all", "all", stats)
	knowledgeAt := strings.Index(out, "ความรู้ที่ได้รับ")
	facilityAt := strings.Index(out, "สิ่งอำนวยความสะดวก")
	assert.Greater(t, knowledgeAt, -1)
	assert.Greater(t, facilityAt, knowledgeAt, "knowledge section must precede facility")
	// Categories without data get no section header.
	assert.NotContains(t, out, "คุณธรรมจริยธรรม")
}

func TestFormatComparisonNilIsDash(t *testing.T) {
	avg := 4.33
	comparison := map[string]services.GroupComparison{
		"event_schedule": {
			Label: "กำหนดการ",
			Averages: map[string]*float64{
				"student": &avg, "staff": nil, "observer": nil,
			},
		},
	}
	out := formatComparison(survey.CategoryEvent, comparison)
	assert.Contains(t, out, "| กำหนดการ | 4.33 | - | - |")
}

func TestFormatSearchResultsRespectsTextType(t *testing.T) {
	results := []survey.SearchResult{{
		ID:             1,
		RespondentType: survey.RespondentStudent,
		ImpressedText:  "ประทับใจอาหาร",
		SuggestionText: "เพิ่มห้องน้ำ",
	}}
	impressedOnly := formatSearchResults("อาหาร", survey.TextImpressed, results)
	assert.Contains(t, impressedOnly, "ประทับใจอาหาร")
	assert.NotContains(t, impressedOnly, "เพิ่มห้องน้ำ")

	both := formatSearchResults("อาหาร", survey.TextAll, results)
	assert.Contains(t, both, "ประทับใจอาหาร")
	assert.Contains(t, both, "เพิ่มห้องน้ำ")
}
