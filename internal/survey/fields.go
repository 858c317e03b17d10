// Package survey defines the fixed schema of the post-Thudong evaluation
// form: the 26 Likert score fields with their Thai display labels, the
// closed set of respondent categories, and the answer-text mappings used
// at import time. Everything here is static data; the storage and service
// layers consult these tables instead of interpolating field names.
package survey

// Score field categories.
const (
	CategoryKnowledge = "knowledge"
	CategoryMoral     = "moral"
	CategoryEvent     = "event"
	CategoryFacility  = "facility"
	CategoryAll       = "all"
)

// Field describes one Likert score column of the responses table.
type Field struct {
	Name     string
	Category string
	Label    string
}

// ScoreFields lists all 26 score fields in category order
// (knowledge, moral, event, facility). The order is part of the
// contract: "all" statistics and formatted output follow it.
var ScoreFields = []Field{
	{"knowledge_history", CategoryKnowledge, "ประวัติพระอาจารย์หลวงพ่อ"},
	{"knowledge_dharma", CategoryKnowledge, "เกร็ดธรรมะ"},
	{"knowledge_samadhi", CategoryKnowledge, "ความรู้เกี่ยวกับสมาธิ"},
	{"knowledge_thudong", CategoryKnowledge, "ความรู้เกี่ยวกับการธุดงค์"},
	{"knowledge_benefit", CategoryKnowledge, "ประโยชน์ของสมาธิ"},
	{"knowledge_chavana", CategoryKnowledge, "ชวนะจิตในการแก้ปัญหา"},
	{"knowledge_daily", CategoryKnowledge, "การนำสมาธิไปใช้ในชีวิตประจำวัน"},
	{"moral_metta", CategoryMoral, "มีเมตตา"},
	{"moral_reason", CategoryMoral, "มีเหตุผล"},
	{"moral_responsible", CategoryMoral, "มีความรับผิดชอบ"},
	{"moral_discipline", CategoryMoral, "มีวินัย"},
	{"moral_patience", CategoryMoral, "มีความอดทน"},
	{"moral_sacrifice", CategoryMoral, "มีความเสียสละ"},
	{"moral_forgive", CategoryMoral, "รู้จักให้อภัย"},
	{"event_schedule", CategoryEvent, "กำหนดการ"},
	{"event_route", CategoryEvent, "เส้นทางเดินธุดงค์"},
	{"event_mentor", CategoryEvent, "พี่เลี้ยง/การกำกับแถว"},
	{"event_ceremony", CategoryEvent, "ศาสนพิธี"},
	{"event_speech", CategoryEvent, "พิธีกล่าวแสดงความรู้สึก"},
	{"event_objective", CategoryEvent, "จัดงานได้ตรงตามวัตถุประสงค์"},
	{"facility_pr", CategoryFacility, "การประชาสัมพันธ์"},
	{"facility_coordinate", CategoryFacility, "การติดต่อประสานงาน"},
	{"facility_atmosphere", CategoryFacility, "บรรยากาศสถานที่"},
	{"facility_tent", CategoryFacility, "เต้นท์/ที่พัก"},
	{"facility_food", CategoryFacility, "อาหาร เครื่องดื่ม"},
	{"facility_bathroom", CategoryFacility, "ห้องอาบน้ำ ห้องสุขา"},
}

// CategoryTitles maps a score category to its Thai section heading.
var CategoryTitles = map[string]string{
	CategoryKnowledge: "ความรู้ที่ได้รับ",
	CategoryMoral:     "คุณธรรมจริยธรรม",
	CategoryEvent:     "การจัดงาน",
	CategoryFacility:  "สิ่งอำนวยความสะดวก",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, len(ScoreFields))
	for _, f := range ScoreFields {
		m[f.Name] = f
	}
	return m
}()

// FieldsFor returns the score fields in the given category, or all 26 for
// CategoryAll. An unrecognized category selects nothing.
func FieldsFor(category string) []Field {
	if category == CategoryAll {
		out := make([]Field, len(ScoreFields))
		copy(out, ScoreFields)
		return out
	}
	var out []Field
	for _, f := range ScoreFields {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Label returns the display label for a score field, falling back to the
// raw field name when it is not part of the schema.
func Label(name string) string {
	if f, ok := fieldsByName[name]; ok {
		return f.Label
	}
	return name
}

// LevelNames gives the Thai qualifier for each score level, indexed by
// level-1 (1 = น้อยที่สุด ... 5 = มากที่สุด).
var LevelNames = [5]string{"น้อยที่สุด", "น้อย", "ปานกลาง", "มาก", "มากที่สุด"}

// Respondent categories as stored verbatim in the dataset.
const (
	RespondentStudent  = "นักศึกษาสอบภาคสนาม"
	RespondentStaff    = "คณะทำงาน"
	RespondentObserver = "ผู้เข้าร่วมงาน/สังเกตุการณ์"
)

// RespondentKeys lists the filter keys in presentation order.
var RespondentKeys = []string{"student", "staff", "observer"}

var respondentsByKey = map[string]string{
	"student":  RespondentStudent,
	"staff":    RespondentStaff,
	"observer": RespondentObserver,
}

// RespondentTypeFor maps a filter key to the stored respondent string.
// "all", the empty string, and anything unrecognized apply no filter.
func RespondentTypeFor(key string) (string, bool) {
	v, ok := respondentsByKey[key]
	return v, ok
}

// AgreementScores maps the knowledge/moral answer texts to score values.
var AgreementScores = map[string]int{
	"มากที่สุด":  5,
	"มาก":        4,
	"ปานกลาง":    3,
	"น้อย":       2,
	"น้อยที่สุด": 1,
}

// SatisfactionScores maps the event/facility answer texts to score values.
var SatisfactionScores = map[string]int{
	"พอใจมากที่สุด":  5,
	"พอใจมาก":        4,
	"พอใจปานกลาง":    3,
	"พอใจน้อย":       2,
	"พอใจน้อยที่สุด": 1,
}
