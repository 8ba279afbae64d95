// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/saturation-search/pkg/types"
)

// QueryOptions holds parameters for results queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and abstract.
	Query string

	// RunID restricts to one run. Zero means the latest run.
	RunID int64

	// Decision filters by screening outcome.
	Decision types.Decision

	// Theme filters by assigned theme.
	Theme types.Theme

	// SourceDB filters by database of origin.
	SourceDB string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// QueryResult is an article with its screening decision attached.
type QueryResult struct {
	RunID   int64               `json:"run_id" yaml:"run_id"`
	Article types.ArticleRecord `json:"article" yaml:"article"`

	Decision        types.Decision `json:"decision,omitempty" yaml:"decision,omitempty"`
	Theme           types.Theme    `json:"theme,omitempty" yaml:"theme,omitempty"`
	ConfidenceScore float64        `json:"confidence_score" yaml:"confidence_score"`
	GeoScore        float64        `json:"geographic_relevance_score" yaml:"geographic_relevance_score"`
}

// Retrieve queries stored articles with optional full-text search and
// structured filters. Full-text queries are ranked by relevance; structured
// queries are sorted by article position within the run.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	runID := opts.RunID
	if runID == 0 {
		latest, err := s.LatestRunID(ctx)
		if err != nil {
			return nil, err
		}
		runID = latest
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT a.run_id, a.article_id, a.title, a.abstract, a.authors, a.year,
				a.journal, a.doi, a.pmid, a.source_db,
				d.decision, d.theme, d.confidence, d.geo_score
			FROM articles_fts
			JOIN articles a ON a.rowid = articles_fts.rowid
			LEFT JOIN decisions d ON d.run_id = a.run_id AND d.article_id = a.article_id
			WHERE articles_fts MATCH ? AND a.run_id = ?`)
		args = append(args, opts.Query, runID)
	} else {
		qb.WriteString(
			`SELECT a.run_id, a.article_id, a.title, a.abstract, a.authors, a.year,
				a.journal, a.doi, a.pmid, a.source_db,
				d.decision, d.theme, d.confidence, d.geo_score
			FROM articles a
			LEFT JOIN decisions d ON d.run_id = a.run_id AND d.article_id = a.article_id
			WHERE a.run_id = ?`)
		args = append(args, runID)
	}

	if opts.Decision != "" {
		qb.WriteString(` AND d.decision = ?`)
		args = append(args, string(opts.Decision))
	}
	if opts.Theme != "" {
		qb.WriteString(` AND d.theme = ?`)
		args = append(args, string(opts.Theme))
	}
	if opts.SourceDB != "" {
		qb.WriteString(` AND a.source_db = ?`)
		args = append(args, opts.SourceDB)
	}

	if useFTS {
		qb.WriteString(` ORDER BY articles_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY a.article_id`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []QueryResult
	for rows.Next() {
		var (
			qr          QueryResult
			authorsJSON sql.NullString
			decision    sql.NullString
			theme       sql.NullString
			confidence  sql.NullFloat64
			geoScore    sql.NullFloat64
		)

		if err := rows.Scan(
			&qr.RunID, &qr.Article.InternalID, &qr.Article.Title, &qr.Article.Abstract,
			&authorsJSON, &qr.Article.Year, &qr.Article.Journal,
			&qr.Article.DOI, &qr.Article.PMID, &qr.Article.SourceDB,
			&decision, &theme, &confidence, &geoScore,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &qr.Article.Authors)
		}
		if decision.Valid {
			qr.Decision = types.Decision(decision.String)
		}
		if theme.Valid {
			qr.Theme = types.Theme(theme.String)
		}
		if confidence.Valid {
			qr.ConfidenceScore = confidence.Float64
		}
		if geoScore.Valid {
			qr.GeoScore = geoScore.Float64
		}

		out = append(out, qr)
	}

	return out, rows.Err()
}
