// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results persists pipeline runs and builds a retrieval index over
// the surviving articles and their screening decisions.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/saturation-search/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "results.db"
)

// Store manages the results SQLite database.
type Store struct {
	db         *sql.DB
	resultsDir string
	maxResults int
}

// NewStore opens or creates the results database at
// resultsDir/index/results.db. The schema is created if it does not exist.
func NewStore(cfg types.ResultsConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.ResultsDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		resultsDir: cfg.ResultsDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT,
			started TEXT,
			total_input INTEGER,
			unique_count INTEGER,
			duplicates_removed INTEGER,
			included INTEGER,
			excluded INTEGER,
			manual_review INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			article_id INTEGER NOT NULL,
			title TEXT,
			abstract TEXT,
			authors TEXT,
			year INTEGER,
			journal TEXT,
			doi TEXT,
			pmid TEXT,
			source_db TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_run_id ON articles(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_doi ON articles(doi)`,
		`CREATE TABLE IF NOT EXISTS matches (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			id_a INTEGER,
			id_b INTEGER,
			match_type TEXT,
			confidence REAL,
			reason TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS decisions (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			article_id INTEGER NOT NULL,
			decision TEXT NOT NULL,
			theme TEXT,
			confidence REAL,
			geo_score REAL,
			location_total INTEGER,
			inclusion_reasons TEXT,
			exclusion_reasons TEXT,
			manual_review_reasons TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_run_id ON decisions(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_decision ON decisions(decision)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over title+abstract with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='articles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE articles_fts USING fts5(title, abstract, content=articles, content_rowid=rowid)`,
			`CREATE TRIGGER articles_ai AFTER INSERT ON articles BEGIN
				INSERT INTO articles_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
			`CREATE TRIGGER articles_ad AFTER DELETE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
			END`,
			`CREATE TRIGGER articles_au AFTER UPDATE ON articles BEGIN
				INSERT INTO articles_fts(articles_fts, rowid, title, abstract) VALUES('delete', old.rowid, old.title, old.abstract);
				INSERT INTO articles_fts(rowid, title, abstract) VALUES (new.rowid, new.title, new.abstract);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Run bundles one complete pipeline run for persistence. Articles holds the
// unique survivors of duplicate detection; Decisions aligns positionally
// with Articles.
type Run struct {
	Query        string
	Articles     []types.ArticleRecord
	DedupReport  types.DeduplicationReport
	Decisions    []types.ScreeningDecision
	ScreenReport types.ScreeningReport
}

// SaveRun persists a pipeline run in one transaction and returns its run ID.
func (s *Store) SaveRun(ctx context.Context, run Run) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, started, total_input, unique_count, duplicates_removed,
			included, excluded, manual_review)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Query, time.Now().UTC().Format(time.RFC3339),
		run.DedupReport.TotalInput, run.DedupReport.UniqueCount, run.DedupReport.DuplicatesRemoved,
		run.ScreenReport.Included, run.ScreenReport.Excluded, run.ScreenReport.ManualReview,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	articleStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (run_id, article_id, title, abstract, authors, year, journal, doi, pmid, source_db)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing article insert: %w", err)
	}
	defer articleStmt.Close()

	for i, a := range run.Articles {
		authorsJSON, _ := json.Marshal(a.Authors)
		if _, err := articleStmt.ExecContext(ctx,
			runID, i, a.Title, a.Abstract, string(authorsJSON),
			a.Year, a.Journal, a.DOI, a.PMID, a.SourceDB,
		); err != nil {
			return 0, fmt.Errorf("inserting article %d: %w", i, err)
		}
	}

	matchStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matches (run_id, id_a, id_b, match_type, confidence, reason)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing match insert: %w", err)
	}
	defer matchStmt.Close()

	for _, m := range run.DedupReport.Matches {
		if _, err := matchStmt.ExecContext(ctx,
			runID, m.IDA, m.IDB, string(m.Type), m.Confidence, m.Reason,
		); err != nil {
			return 0, fmt.Errorf("inserting match: %w", err)
		}
	}

	decisionStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO decisions (run_id, article_id, decision, theme, confidence, geo_score,
			location_total, inclusion_reasons, exclusion_reasons, manual_review_reasons)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing decision insert: %w", err)
	}
	defer decisionStmt.Close()

	for _, d := range run.Decisions {
		inclJSON, _ := json.Marshal(d.InclusionReasons)
		exclJSON, _ := json.Marshal(d.ExclusionReasons)
		manualJSON, _ := json.Marshal(d.ManualReviewReasons)
		if _, err := decisionStmt.ExecContext(ctx,
			runID, d.ArticleID, string(d.Decision), string(d.Theme),
			d.ConfidenceScore, d.GeoRelevanceScore, d.LocationMatches.Total,
			string(inclJSON), string(exclJSON), string(manualJSON),
		); err != nil {
			return 0, fmt.Errorf("inserting decision for article %d: %w", d.ArticleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// LatestRunID returns the ID of the most recent run, or an error when the
// store is empty.
func (s *Store) LatestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no runs stored")
	}
	if err != nil {
		return 0, fmt.Errorf("looking up latest run: %w", err)
	}
	return id, nil
}
