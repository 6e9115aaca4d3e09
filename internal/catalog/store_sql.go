package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/juris-sim/jurisim/internal/grading"
)

// SQLStore persists the catalog in the principles table (sqlite or
// postgres). KeywordSet is re-derived on scan; only raw fields are stored.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) ReplaceAll(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM principles`); err != nil {
		return err
	}
	now := time.Now().Unix()
	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `INSERT INTO principles
			(case_id, case_title, case_description, side, principle, article, weight, keywords, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			e.CaseID, e.CaseTitle, e.CaseDescription, e.Side, e.Principle, e.Article, e.Weight, e.Keywords, now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Entries(ctx context.Context) ([]Entry, error) {
	return s.query(ctx, `SELECT case_id, case_title, case_description, side, principle, article, weight, keywords
		FROM principles ORDER BY id`)
}

func (s *SQLStore) EntriesForCase(ctx context.Context, caseID string) ([]Entry, error) {
	return s.query(ctx, `SELECT case_id, case_title, case_description, side, principle, article, weight, keywords
		FROM principles WHERE case_id=$1 ORDER BY id`, caseID)
}

func (s *SQLStore) Cases(ctx context.Context) ([]Case, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return Cases(entries), nil
}

func (s *SQLStore) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.CaseID, &e.CaseTitle, &e.CaseDescription, &e.Side,
			&e.Principle, &e.Article, &e.Weight, &e.Keywords); err != nil {
			return nil, err
		}
		e.Side = grading.Normalize(e.Side)
		e.KeywordSet = grading.ExtractKeywords(e.Keywords, e.Principle, e.Article)
		out = append(out, e)
	}
	return out, rows.Err()
}
