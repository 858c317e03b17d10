// Package importer reads the exported survey sheet (CSV) into response
// records. It is a boundary collaborator: unparseable or out-of-scale
// answers are coerced to null scores here, never rejected, so the store
// only ever sees valid values or absence.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jirateep/thudong-survey/internal/survey"
)

// Fixed column positions in the exported sheet.
const (
	colTimestamp      = 0
	colRespondentType = 1
	colKnowledgeOther = 9
	colMoralOther     = 17
	colImpressed      = 30
	colSuggestion     = 31
)

// scoreColumns maps each score field to its sheet column. The sheet lays
// the categories out contiguously with the free-text "other" columns after
// the knowledge and moral blocks.
var scoreColumns = func() map[string]int {
	base := map[string]int{
		survey.CategoryKnowledge: 2,
		survey.CategoryMoral:     10,
		survey.CategoryEvent:     18,
		survey.CategoryFacility:  24,
	}
	offset := map[string]int{}
	cols := make(map[string]int, len(survey.ScoreFields))
	for _, f := range survey.ScoreFields {
		cols[f.Name] = base[f.Category] + offset[f.Category]
		offset[f.Category]++
	}
	return cols
}()

func cell(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}

// ParseRecord converts one data row into a response. Answer texts that do
// not map onto the 1-5 scale become missing scores.
func ParseRecord(record []string) *survey.Response {
	r := &survey.Response{
		Timestamp:      cell(record, colTimestamp),
		RespondentType: cell(record, colRespondentType),
		Scores:         map[string]int{},
		KnowledgeOther: cell(record, colKnowledgeOther),
		MoralOther:     cell(record, colMoralOther),
		ImpressedText:  cell(record, colImpressed),
		SuggestionText: cell(record, colSuggestion),
	}
	for _, f := range survey.ScoreFields {
		answers := survey.AgreementScores
		if f.Category == survey.CategoryEvent || f.Category == survey.CategoryFacility {
			answers = survey.SatisfactionScores
		}
		if v, ok := answers[cell(record, scoreColumns[f.Name])]; ok {
			r.Scores[f.Name] = v
		}
	}
	return r
}

// ParseFile reads the sheet at path, skipping the header row and rows that
// are entirely blank.
func ParseFile(path string) ([]*survey.Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Parse reads CSV data from r. The sheet uses quoted fields for free text
// containing commas and newlines; rows may be ragged.
func Parse(r io.Reader) ([]*survey.Response, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []*survey.Response
	header := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if header {
			header = false
			continue
		}
		if blankRow(record) {
			continue
		}
		out = append(out, ParseRecord(record))
	}
	return out, nil
}

func blankRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
