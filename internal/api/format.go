package api

import (
	"fmt"
	"strings"

	"github.com/jirateep/thudong-survey/internal/services"
	"github.com/jirateep/thudong-survey/internal/survey"
)

// Markdown rendering of tool results. The shapes here are part of the
// contract with tool-call clients; keep them stable.

func formatSearchResults(query, textType string, results []survey.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("ไม่พบผลลัพธ์สำหรับคำค้น %q", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## ผลการค้นหา %q\n\n", query)
	fmt.Fprintf(&b, "พบ %d รายการ\n\n", len(results))
	for i, r := range results {
		name := r.RespondentType
		if name == "" {
			name = "ไม่ระบุ"
		}
		fmt.Fprintf(&b, "### %d. %s\n", i+1, name)
		ts := r.Timestamp
		if ts == "" {
			ts = "N/A"
		}
		fmt.Fprintf(&b, "**วันที่:** %s\n\n", ts)
		if r.ImpressedText != "" && (textType == survey.TextAll || textType == survey.TextImpressed) {
			fmt.Fprintf(&b, "**ประทับใจ:** %s\n\n", r.ImpressedText)
		}
		if r.SuggestionText != "" && (textType == survey.TextAll || textType == survey.TextSuggestion) {
			fmt.Fprintf(&b, "**ข้อเสนอแนะ:** %s\n\n", r.SuggestionText)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}

func formatStatistics(category, respondentType string, stats map[string]services.FieldStats) string {
	if len(stats) == 0 {
		return "ไม่พบข้อมูลสถิติ"
	}
	var b strings.Builder
	b.WriteString("## สถิติความพึงพอใจ\n\n")
	cat := category
	if cat == survey.CategoryAll {
		cat = "ทุกหมวด"
	}
	rt := respondentType
	if rt == "" || rt == "all" {
		rt = "ทุกกลุ่ม"
	}
	fmt.Fprintf(&b, "**หมวด:** %s\n", cat)
	fmt.Fprintf(&b, "**กลุ่มผู้ตอบ:** %s\n\n", rt)

	// Walk the descriptor table so output follows category order even
	// though the stats mapping is unordered.
	lastCategory := ""
	for _, f := range survey.FieldsFor(survey.CategoryAll) {
		fs, ok := stats[f.Name]
		if !ok {
			continue
		}
		if f.Category != lastCategory {
			fmt.Fprintf(&b, "### %s\n\n", survey.CategoryTitles[f.Category])
			b.WriteString("| หัวข้อ | คะแนนเฉลี่ย | ผู้ตอบ | ระดับ 5 | ระดับ 4 | ระดับ 3 |\n")
			b.WriteString("|--------|------------|-------|---------|---------|--------|\n")
			lastCategory = f.Category
		}
		fmt.Fprintf(&b, "| %s | %v | %d | %v%% | %v%% | %v%% |\n",
			fs.Label, fs.Average, fs.Total,
			fs.Percentage["ระดับ 5"], fs.Percentage["ระดับ 4"], fs.Percentage["ระดับ 3"])
	}
	return b.String()
}

func formatOverview(ov survey.Overview) string {
	var b strings.Builder
	b.WriteString("## ภาพรวมแบบสอบถามธุดงค์\n\n")
	b.WriteString("**สถานที่:** วัดป่าร้อยปีหลวงพ่อวิริยังค์ จ.ราชบุรี\n")
	b.WriteString("**วันที่:** 12-15 ธันวาคม พ.ศ. 2568\n\n")
	b.WriteString("### จำนวนผู้ตอบ\n\n")
	fmt.Fprintf(&b, "- **ทั้งหมด:** %d คน\n", ov.TotalResponses)
	for _, rc := range ov.ByRespondentType {
		name := rc.RespondentType
		if name == "" {
			name = "ไม่ระบุ"
		}
		if ov.TotalResponses > 0 {
			pct := float64(rc.Count) / float64(ov.TotalResponses) * 100
			fmt.Fprintf(&b, "- %s: %d คน (%.1f%%)\n", name, rc.Count, pct)
		} else {
			fmt.Fprintf(&b, "- %s: %d คน\n", name, rc.Count)
		}
	}
	b.WriteString("\n### ข้อมูลข้อความอิสระ\n\n")
	fmt.Fprintf(&b, "- มีข้อความ \"ประทับใจ\": %d รายการ\n", ov.WithImpressed)
	fmt.Fprintf(&b, "- มีข้อความ \"ข้อเสนอแนะ\": %d รายการ\n", ov.WithSuggestion)
	return b.String()
}

func formatTextRows(title, topic string, rows []survey.TextRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if topic != "" {
		fmt.Fprintf(&b, "**หัวข้อ:** %s\n\n", topic)
	}
	fmt.Fprintf(&b, "พบ %d รายการ\n\n", len(rows))
	for i, r := range rows {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Text)
		fmt.Fprintf(&b, "   _(%s)_\n\n", r.RespondentType)
	}
	return b.String()
}

func formatComparison(category string, comparison map[string]services.GroupComparison) string {
	var b strings.Builder
	b.WriteString("## เปรียบเทียบความพึงพอใจระหว่างกลุ่ม\n\n")
	fmt.Fprintf(&b, "**หมวด:** %s\n\n", survey.CategoryTitles[category])
	b.WriteString("| หัวข้อ | นักศึกษา | คณะทำงาน | ผู้สังเกตการณ์ |\n")
	b.WriteString("|--------|----------|----------|----------------|\n")
	for _, f := range survey.FieldsFor(category) {
		gc, ok := comparison[f.Name]
		if !ok {
			continue
		}
		b.WriteString("| " + gc.Label)
		for _, key := range survey.RespondentKeys {
			if avg := gc.Averages[key]; avg != nil {
				fmt.Fprintf(&b, " | %v", *avg)
			} else {
				b.WriteString(" | -")
			}
		}
		b.WriteString(" |\n")
	}
	return b.String()
}
