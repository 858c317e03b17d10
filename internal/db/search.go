package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// sanitizeMatch wraps each term of a user query in double quotes so free
// text can never be parsed as FTS5 query syntax.
func sanitizeMatch(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		w = strings.Trim(w, `"`)
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " ")
}

// textColumn maps a free-text kind to its responses column.
func textColumn(kind string) (string, error) {
	switch kind {
	case survey.TextImpressed:
		return "impressed_text", nil
	case survey.TextSuggestion:
		return "suggestion_text", nil
	default:
		return "", fmt.Errorf("unknown text kind %q", kind)
	}
}

// SearchFeedback runs a ranked full-text lookup over both free-text fields
// and joins the hits back to their response rows. textType restricts the
// result to rows whose impressed or suggestion text is non-empty; it does
// not replace the relevance match. Results come back best match first.
func (s *Store) SearchFeedback(query, textType string, limit int) ([]survey.SearchResult, error) {
	var filter string
	switch textType {
	case survey.TextImpressed:
		filter = "AND r.impressed_text IS NOT NULL AND r.impressed_text != ''"
	case survey.TextSuggestion:
		filter = "AND r.suggestion_text IS NOT NULL AND r.suggestion_text != ''"
	}

	q := fmt.Sprintf(`
        SELECT r.id, r.timestamp, r.respondent_type, r.impressed_text, r.suggestion_text,
               bm25(responses_fts) AS rank
        FROM responses_fts f
        JOIN responses r ON f.rowid = r.id
        WHERE responses_fts MATCH ?
        %s
        ORDER BY rank
        LIMIT ?`, filter)

	rows, err := s.db.Query(q, sanitizeMatch(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search feedback: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("SearchFeedback: rows.Close", cerr)
		}
	}()

	out := []survey.SearchResult{}
	for rows.Next() {
		var sr survey.SearchResult
		var ts, rt, imp, sug sql.NullString
		if err := rows.Scan(&sr.ID, &ts, &rt, &imp, &sug, &sr.Rank); err != nil {
			return nil, fmt.Errorf("search feedback: scan: %w", err)
		}
		sr.Timestamp = ts.String
		sr.RespondentType = rt.String
		sr.ImpressedText = imp.String
		sr.SuggestionText = sug.String
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search feedback: %w", err)
	}
	return out, nil
}

// SearchTexts returns non-empty texts of the given kind ranked by topic
// relevance.
func (s *Store) SearchTexts(kind, topic string, limit int) ([]survey.TextRow, error) {
	col, err := textColumn(kind)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
        SELECT r.id, r.respondent_type, r.%s
        FROM responses_fts f
        JOIN responses r ON f.rowid = r.id
        WHERE responses_fts MATCH ?
        AND r.%s IS NOT NULL AND r.%s != ''
        ORDER BY bm25(responses_fts)
        LIMIT ?`, col, col, col)
	return s.queryTexts("SearchTexts", q, sanitizeMatch(topic), limit)
}

// ListTexts returns non-empty texts of the given kind in insertion order.
func (s *Store) ListTexts(kind string, limit int) ([]survey.TextRow, error) {
	col, err := textColumn(kind)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`
        SELECT id, respondent_type, %s
        FROM responses
        WHERE %s IS NOT NULL AND %s != ''
        ORDER BY id
        LIMIT ?`, col, col, col)
	return s.queryTexts("ListTexts", q, limit)
}

func (s *Store) queryTexts(op, q string, args ...any) ([]survey.TextRow, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr(op+": rows.Close", cerr)
		}
	}()

	out := []survey.TextRow{}
	for rows.Next() {
		var tr survey.TextRow
		var rt sql.NullString
		if err := rows.Scan(&tr.ID, &rt, &tr.Text); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		tr.RespondentType = rt.String
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
