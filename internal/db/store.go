// Package db implements the SQLite record store and its FTS5 search index
// mirror. The responses table owns the canonical field values; the
// responses_fts table is a derived projection kept in sync by the write
// path itself (every mutation updates both inside one transaction), never
// by database triggers, so the index invariant is enforced and testable at
// the application layer.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/jirateep/thudong-survey/internal/survey"
)

// ErrNotFound is returned when an update references a missing response id.
var ErrNotFound = errors.New("response not found")

// Store wraps a SQLite database holding the responses table and its
// full-text index. It must be closed after use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path and applies the schema.
func Open(path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, stmt := range pragmas {
		if _, err := sqlDB.Exec(stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	s := &Store{db: sqlDB}
	if err := s.applySchema(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) logErr(prefix string, err error) {
	if err != nil {
		log.Printf("survey store: %s: %v", prefix, err)
	}
}

func (s *Store) applySchema() error {
	stmts := []string{
		responsesDDL(),
		`CREATE VIRTUAL TABLE IF NOT EXISTS responses_fts USING fts5(
            impressed_text,
            suggestion_text,
            tokenize='unicode61 remove_diacritics 2'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_respondent_type ON responses(respondent_type)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// responsesDDL builds the responses table definition from the field
// descriptors so the column set can never drift from the schema tables.
func responsesDDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS responses (\n")
	b.WriteString("    id INTEGER PRIMARY KEY AUTOINCREMENT,\n")
	b.WriteString("    timestamp TEXT,\n")
	b.WriteString("    respondent_type TEXT,\n")
	for _, f := range survey.ScoreFields {
		fmt.Fprintf(&b, "    %s INTEGER,\n", f.Name)
	}
	b.WriteString("    knowledge_other TEXT,\n")
	b.WriteString("    moral_other TEXT,\n")
	b.WriteString("    impressed_text TEXT,\n")
	b.WriteString("    suggestion_text TEXT\n)")
	return b.String()
}

// insertColumns lists every writable column of the responses table in the
// order insertArgs produces values.
var insertColumns = func() []string {
	cols := []string{"timestamp", "respondent_type"}
	for _, f := range survey.ScoreFields {
		cols = append(cols, f.Name)
	}
	return append(cols, "knowledge_other", "moral_other", "impressed_text", "suggestion_text")
}()

var insertSQL = fmt.Sprintf(
	"INSERT INTO responses (%s) VALUES (%s)",
	strings.Join(insertColumns, ", "),
	strings.TrimSuffix(strings.Repeat("?, ", len(insertColumns)), ", "),
)

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func scoreArg(r *survey.Response, field string) sql.NullInt64 {
	if v, ok := r.Scores[field]; ok {
		return sql.NullInt64{Int64: int64(v), Valid: true}
	}
	return sql.NullInt64{}
}

func insertArgs(r *survey.Response) []any {
	args := []any{toNullString(r.Timestamp), toNullString(r.RespondentType)}
	for _, f := range survey.ScoreFields {
		args = append(args, scoreArg(r, f.Name))
	}
	return append(args,
		toNullString(r.KnowledgeOther),
		toNullString(r.MoralOther),
		toNullString(r.ImpressedText),
		toNullString(r.SuggestionText),
	)
}

// insertTx writes one response row and its index entry. Nulls are indexed
// as empty strings so every row has exactly one index entry.
func insertTx(tx *sql.Tx, r *survey.Response) (int64, error) {
	res, err := tx.Exec(insertSQL, insertArgs(r)...)
	if err != nil {
		return 0, fmt.Errorf("insert response: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert response: last id: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT INTO responses_fts (rowid, impressed_text, suggestion_text) VALUES (?, ?, ?)`,
		id, r.ImpressedText, r.SuggestionText,
	); err != nil {
		return 0, fmt.Errorf("index response %d: %w", id, err)
	}
	return id, nil
}

func (s *Store) withTx(fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logErr("rollback", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// InsertResponse stores one response and returns its assigned id. The row
// and its search index entry commit together.
func (s *Store) InsertResponse(r *survey.Response) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		var err error
		id, err = insertTx(tx, r)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertResponses stores a batch of responses in one transaction: either
// every record commits or none does.
func (s *Store) InsertResponses(records []*survey.Response) (int, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		for i, r := range records {
			if _, err := insertTx(tx, r); err != nil {
				return fmt.Errorf("batch record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// ReplaceAll clears the store and inserts the given records as a single
// transaction, so a failed re-import leaves the previous dataset intact.
func (s *Store) ReplaceAll(records []*survey.Response) (int, error) {
	err := s.withTx(func(tx *sql.Tx) error {
		if err := clearTx(tx); err != nil {
			return err
		}
		for i, r := range records {
			if _, err := insertTx(tx, r); err != nil {
				return fmt.Errorf("batch record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// UpdateResponse rewrites the row with the given id. The index entry is
// deleted and re-added rather than mutated in place; FTS5 tokenization
// does not support partial updates.
func (s *Store) UpdateResponse(id int64, r *survey.Response) error {
	var assigns []string
	for _, col := range insertColumns {
		assigns = append(assigns, col+" = ?")
	}
	updateSQL := fmt.Sprintf("UPDATE responses SET %s WHERE id = ?", strings.Join(assigns, ", "))
	return s.withTx(func(tx *sql.Tx) error {
		args := append(insertArgs(r), id)
		res, err := tx.Exec(updateSQL, args...)
		if err != nil {
			return fmt.Errorf("update response %d: %w", id, err)
		}
		if n, err := res.RowsAffected(); err != nil {
			return fmt.Errorf("update response %d: %w", id, err)
		} else if n == 0 {
			return ErrNotFound
		}
		if _, err := tx.Exec(`DELETE FROM responses_fts WHERE rowid = ?`, id); err != nil {
			return fmt.Errorf("deindex response %d: %w", id, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO responses_fts (rowid, impressed_text, suggestion_text) VALUES (?, ?, ?)`,
			id, r.ImpressedText, r.SuggestionText,
		); err != nil {
			return fmt.Errorf("reindex response %d: %w", id, err)
		}
		return nil
	})
}

func clearTx(tx *sql.Tx) error {
	if _, err := tx.Exec(`DELETE FROM responses`); err != nil {
		return fmt.Errorf("clear responses: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM responses_fts`); err != nil {
		return fmt.Errorf("clear responses_fts: %w", err)
	}
	return nil
}

// Clear removes every row from the record store and the search index
// atomically. Clearing an already-empty store is a no-op.
func (s *Store) Clear() error {
	return s.withTx(clearTx)
}
