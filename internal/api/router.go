// Package api exposes the survey query operations over a tool-call HTTP
// surface: a tool registry plus a single dispatch endpoint returning text
// content blocks.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/jirateep/thudong-survey/internal/services"
)

// Router wires the tool-call endpoints to the query services.
type Router struct {
	stats    *services.StatsService
	compare  *services.CompareService
	feedback *services.FeedbackService
}

func NewRouter(stats *services.StatsService, compare *services.CompareService, feedback *services.FeedbackService) *Router {
	return &Router{stats: stats, compare: compare, feedback: feedback}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/tools", rt.handleListTools)     // GET
	mux.HandleFunc("/api/tools/call", rt.handleCallTool) // POST
}

type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolResult struct {
	Content []toolContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

func textResult(text string) toolResult {
	return toolResult{Content: []toolContent{{Type: "text", Text: text}}}
}

func errorResult(text string) toolResult {
	res := textResult(text)
	res.IsError = true
	return res
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/tools
func (rt *Router) handleListTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"tools": Tools})
}

// callRequest is the inbound tool invocation payload.
type callRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// argString reads a string argument, applying def when absent or empty.
func argString(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// argInt reads a numeric argument; JSON numbers decode as float64.
func argInt(args map[string]any, key string, def int) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return def
}

// POST /api/tools/call
func (rt *Router) handleCallTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Arguments == nil {
		req.Arguments = map[string]any{}
	}
	writeJSON(w, rt.dispatch(req.Name, req.Arguments))
}

// dispatch runs one tool. Execution failures become isError results rather
// than HTTP errors, per the tool-call convention.
func (rt *Router) dispatch(name string, args map[string]any) toolResult {
	switch name {
	case "search_feedback":
		query := argString(args, "query", "")
		textType := argString(args, "type", "all")
		limit := argInt(args, "limit", services.DefaultSearchLimit)
		results, err := rt.feedback.Search(query, textType, limit)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatSearchResults(query, textType, results))

	case "get_statistics":
		category := argString(args, "category", "all")
		respondentType := argString(args, "respondent_type", "all")
		stats, err := rt.stats.Statistics(category, respondentType)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatStatistics(category, respondentType, stats))

	case "get_survey_overview":
		ov, err := rt.stats.Overview()
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatOverview(ov))

	case "get_improvements":
		topic := argString(args, "topic", "")
		limit := argInt(args, "limit", services.DefaultTopicLimit)
		rows, err := rt.feedback.Improvements(topic, limit)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatTextRows("ข้อเสนอแนะ/สิ่งที่ควรปรับปรุง", topic, rows))

	case "get_impressions":
		topic := argString(args, "topic", "")
		limit := argInt(args, "limit", services.DefaultTopicLimit)
		rows, err := rt.feedback.Impressions(topic, limit)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatTextRows("สิ่งที่ประทับใจ", topic, rows))

	case "compare_groups":
		category := argString(args, "category", "")
		comparison, err := rt.compare.CompareGroups(category)
		if err != nil {
			return errorResult("Error: " + err.Error())
		}
		return textResult(formatComparison(category, comparison))

	default:
		return errorResult("Unknown tool: " + name)
	}
}
