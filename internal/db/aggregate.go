package db

import (
	"database/sql"
	"fmt"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// FieldStats computes the average, response count, and per-level counts
// for one score field over rows where it is non-null. A non-empty
// respondentType restricts the rows to that stored category. Column names
// come from the static field descriptors, never from caller input.
func (s *Store) FieldStats(field survey.Field, respondentType string) (survey.FieldAggregate, error) {
	col := field.Name
	q := fmt.Sprintf(`
        SELECT
            AVG(%s),
            COUNT(%s),
            COUNT(CASE WHEN %s = 1 THEN 1 END),
            COUNT(CASE WHEN %s = 2 THEN 1 END),
            COUNT(CASE WHEN %s = 3 THEN 1 END),
            COUNT(CASE WHEN %s = 4 THEN 1 END),
            COUNT(CASE WHEN %s = 5 THEN 1 END)
        FROM responses
        WHERE %s IS NOT NULL`, col, col, col, col, col, col, col, col)
	args := []any{}
	if respondentType != "" {
		q += " AND respondent_type = ?"
		args = append(args, respondentType)
	}

	var agg survey.FieldAggregate
	var avg sql.NullFloat64
	err := s.db.QueryRow(q, args...).Scan(
		&avg, &agg.Total,
		&agg.Levels[0], &agg.Levels[1], &agg.Levels[2], &agg.Levels[3], &agg.Levels[4],
	)
	if err != nil {
		return survey.FieldAggregate{}, fmt.Errorf("field stats %s: %w", col, err)
	}
	agg.Average = avg.Float64
	return agg, nil
}

// GroupAverage returns the mean of non-null values for one score field
// within one respondent category, or nil when that pair has no data.
func (s *Store) GroupAverage(field survey.Field, respondentType string) (*float64, error) {
	col := field.Name
	q := fmt.Sprintf(`SELECT AVG(%s) FROM responses WHERE respondent_type = ? AND %s IS NOT NULL`, col, col)
	var avg sql.NullFloat64
	if err := s.db.QueryRow(q, respondentType).Scan(&avg); err != nil {
		return nil, fmt.Errorf("group average %s: %w", col, err)
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

// Overview reports dataset-level counts: total rows, rows per respondent
// type, and rows carrying each free-text field.
func (s *Store) Overview() (survey.Overview, error) {
	var ov survey.Overview
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM responses`).Scan(&ov.TotalResponses); err != nil {
		return survey.Overview{}, fmt.Errorf("overview: total: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT respondent_type, COUNT(*)
        FROM responses
        GROUP BY respondent_type
        ORDER BY respondent_type`)
	if err != nil {
		return survey.Overview{}, fmt.Errorf("overview: by type: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logErr("Overview: rows.Close", cerr)
		}
	}()
	ov.ByRespondentType = []survey.RespondentCount{}
	for rows.Next() {
		var rc survey.RespondentCount
		var rt sql.NullString
		if err := rows.Scan(&rt, &rc.Count); err != nil {
			return survey.Overview{}, fmt.Errorf("overview: scan: %w", err)
		}
		rc.RespondentType = rt.String
		ov.ByRespondentType = append(ov.ByRespondentType, rc)
	}
	if err := rows.Err(); err != nil {
		return survey.Overview{}, fmt.Errorf("overview: %w", err)
	}

	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM responses WHERE impressed_text IS NOT NULL AND impressed_text != ''`,
	).Scan(&ov.WithImpressed); err != nil {
		return survey.Overview{}, fmt.Errorf("overview: impressed: %w", err)
	}
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM responses WHERE suggestion_text IS NOT NULL AND suggestion_text != ''`,
	).Scan(&ov.WithSuggestion); err != nil {
		return survey.Overview{}, fmt.Errorf("overview: suggestion: %w", err)
	}
	return ov, nil
}
