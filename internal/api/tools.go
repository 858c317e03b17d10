package api

// Tool describes one callable operation exposed to the tool-call client.
// Schemas follow the JSON Schema subset tool-call clients expect.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func enumProp(desc string, def string, values ...string) map[string]any {
	p := map[string]any{"type": "string", "enum": values, "description": desc}
	if def != "" {
		p["default"] = def
	}
	return p
}

func limitProp(def int) map[string]any {
	return map[string]any{"type": "number", "description": "จำนวนผลลัพธ์สูงสุด", "default": def}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Tools lists the six survey operations in the order clients see them.
var Tools = []Tool{
	{
		Name: "search_feedback",
		Description: `ค้นหาความคิดเห็นจากแบบสอบถามธุดงค์ วัดป่าร้อยปีหลวงพ่อวิริยังค์ 12-15 ธ.ค. 2568
ใช้สำหรับค้นหาข้อความจาก:
- สิ่งที่ประทับใจมากที่สุด
- สิ่งที่ควรปรับปรุง/ข้อเสนอแนะ

ตัวอย่างคำค้น: อาหาร, พี่เลี้ยง, ห้องน้ำ, สถานที่, พระอาจารย์`,
		InputSchema: objectSchema(map[string]any{
			"query": stringProp(`คำค้นหา เช่น "อาหาร", "พี่เลี้ยง", "ห้องน้ำ"`),
			"type":  enumProp("ประเภทข้อความ: impressed=ประทับใจ, suggestion=ข้อเสนอแนะ, all=ทั้งหมด", "all", "impressed", "suggestion", "all"),
			"limit": limitProp(10),
		}, "query"),
	},
	{
		Name: "get_statistics",
		Description: `สรุปสถิติความพึงพอใจรายหมวด จากแบบสอบถามธุดงค์ วัดป่าร้อยปี

หมวดที่มี:
- knowledge: ความรู้ที่ได้รับ (7 ข้อ)
- moral: คุณธรรมจริยธรรม (7 ข้อ)
- event: การจัดงาน (6 ข้อ)
- facility: สิ่งอำนวยความสะดวก (6 ข้อ)
- all: ทุกหมวด`,
		InputSchema: objectSchema(map[string]any{
			"category":        enumProp("หมวดที่ต้องการดูสถิติ", "all", "knowledge", "moral", "event", "facility", "all"),
			"respondent_type": enumProp("กลุ่มผู้ตอบ: student=นักศึกษา, staff=คณะทำงาน, observer=ผู้สังเกตการณ์", "all", "student", "staff", "observer", "all"),
		}),
	},
	{
		Name: "get_survey_overview",
		Description: `แสดงภาพรวมของแบบสอบถามธุดงค์ วัดป่าร้อยปี
- จำนวนผู้ตอบทั้งหมด
- แยกตามประเภทผู้ตอบ
- จำนวนที่มีข้อความประทับใจ/ข้อเสนอแนะ`,
		InputSchema: objectSchema(map[string]any{}),
	},
	{
		Name: "get_improvements",
		Description: `รวบรวมข้อเสนอแนะ/สิ่งที่ควรปรับปรุง จัดกลุ่มตามหัวข้อ
หัวข้อที่พบบ่อย: ห้องน้ำ, อาหาร, ที่พัก, กำหนดการ, พื้น/หิน, สุนัข`,
		InputSchema: objectSchema(map[string]any{
			"topic": stringProp(`หัวข้อที่สนใจ เช่น "ห้องน้ำ", "อาหาร" (ถ้าไม่ระบุจะแสดงทั้งหมด)`),
			"limit": limitProp(20),
		}),
	},
	{
		Name: "get_impressions",
		Description: `รวบรวมสิ่งที่ประทับใจ จัดกลุ่มตามหัวข้อ
หัวข้อที่พบบ่อย: พี่เลี้ยง, สถานที่, พระอาจารย์, อาหาร, กัลยาณมิตร, การเดินธุดงค์`,
		InputSchema: objectSchema(map[string]any{
			"topic": stringProp(`หัวข้อที่สนใจ เช่น "พี่เลี้ยง", "สถานที่" (ถ้าไม่ระบุจะแสดงทั้งหมด)`),
			"limit": limitProp(20),
		}),
	},
	{
		Name:        "compare_groups",
		Description: `เปรียบเทียบความพึงพอใจระหว่างกลุ่มผู้ตอบ (นักศึกษา vs คณะทำงาน vs ผู้สังเกตการณ์)`,
		InputSchema: objectSchema(map[string]any{
			"category": enumProp("หมวดที่ต้องการเปรียบเทียบ: event=การจัดงาน, facility=สิ่งอำนวยความสะดวก", "", "event", "facility"),
		}, "category"),
	},
}
