// Package esg fetches and caches ESG scores for portfolio holdings.
//
// Scores come from Yahoo Finance's MSCI ESG data and are cached in a local
// SQLite database, since providers rate-limit aggressively and ESG ratings
// move slowly.
package esg

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/DhruvParmar10/XFIN/yahoo"
)

// DefaultExpiry is how long a cached entry stays valid. ESG ratings are
// refreshed quarterly at best, so 90 days is generous.
const DefaultExpiry = 90 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS esg_cache (
	ticker TEXT PRIMARY KEY,
	company_name TEXT,
	environmental_score REAL,
	social_score REAL,
	governance_score REAL,
	overall_esg_score REAL,
	total_esg REAL,
	peer_group TEXT,
	percentile REAL,
	data_source TEXT,
	fetch_date TEXT,
	raw_data TEXT
);`

// Store is the on-disk ESG cache.
type Store struct {
	db     *sql.DB
	expiry time.Duration
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening esg cache: %w", err)
	}
	// Concurrent readers while a fetch writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating esg cache schema: %w", err)
	}
	return &Store{db: db, expiry: DefaultExpiry}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SetExpiry overrides the cache validity window.
func (s *Store) SetExpiry(d time.Duration) { s.expiry = d }

// Get returns the cached scores for ticker, or nil when absent or expired.
func (s *Store) Get(ticker string) (*yahoo.Scores, error) {
	row := s.db.QueryRow(`
		SELECT environmental_score, social_score, governance_score,
		       overall_esg_score, total_esg, peer_group, percentile,
		       data_source, fetch_date
		FROM esg_cache WHERE ticker = ?`, ticker)

	var env, soc, gov, overall, total, percentile sql.NullFloat64
	var peerGroup, dataSource, fetchDate sql.NullString
	err := row.Scan(&env, &soc, &gov, &overall, &total, &peerGroup, &percentile, &dataSource, &fetchDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading esg cache for %s: %w", ticker, err)
	}

	fetched, err := time.Parse(time.RFC3339, fetchDate.String)
	if err != nil {
		return nil, nil // unreadable timestamp, treat as a miss
	}
	if time.Since(fetched) > s.expiry {
		return nil, nil
	}

	scores := &yahoo.Scores{
		PeerGroup:  peerGroup.String,
		DataSource: dataSource.String + " (cached)",
		FetchedAt:  fetched,
	}
	if env.Valid {
		scores.Environmental = &env.Float64
	}
	if soc.Valid {
		scores.Social = &soc.Float64
	}
	if gov.Valid {
		scores.Governance = &gov.Float64
	}
	if overall.Valid {
		scores.Overall = &overall.Float64
	}
	if total.Valid {
		scores.TotalESG = &total.Float64
	}
	if percentile.Valid {
		scores.Percentile = &percentile.Float64
	}
	return scores, nil
}

// Put stores scores for ticker, replacing any previous entry.
func (s *Store) Put(ticker, companyName string, scores *yahoo.Scores) error {
	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encoding esg scores: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO esg_cache
		(ticker, company_name, environmental_score, social_score,
		 governance_score, overall_esg_score, total_esg, peer_group,
		 percentile, data_source, fetch_date, raw_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ticker, companyName,
		nullable(scores.Environmental), nullable(scores.Social),
		nullable(scores.Governance), nullable(scores.Overall),
		nullable(scores.TotalESG), scores.PeerGroup,
		nullable(scores.Percentile), scores.DataSource,
		scores.FetchedAt.Format(time.RFC3339), string(raw))
	if err != nil {
		return fmt.Errorf("writing esg cache for %s: %w", ticker, err)
	}
	return nil
}

// Clear removes the entry for ticker, or everything when ticker is empty.
func (s *Store) Clear(ticker string) error {
	var err error
	if ticker == "" {
		_, err = s.db.Exec("DELETE FROM esg_cache")
	} else {
		_, err = s.db.Exec("DELETE FROM esg_cache WHERE ticker = ?", ticker)
	}
	if err != nil {
		return fmt.Errorf("clearing esg cache: %w", err)
	}
	return nil
}

// Stats describes the state of the cache.
type Stats struct {
	Total   int
	Valid   int
	Expired int
	Expiry  time.Duration
}

// Stats counts total and still-valid cache entries.
func (s *Store) Stats() (Stats, error) {
	st := Stats{Expiry: s.expiry}
	if err := s.db.QueryRow("SELECT COUNT(*) FROM esg_cache").Scan(&st.Total); err != nil {
		return st, fmt.Errorf("counting esg cache: %w", err)
	}
	cutoff := time.Now().Add(-s.expiry).Format(time.RFC3339)
	if err := s.db.QueryRow("SELECT COUNT(*) FROM esg_cache WHERE fetch_date > ?", cutoff).Scan(&st.Valid); err != nil {
		return st, fmt.Errorf("counting valid esg cache entries: %w", err)
	}
	st.Expired = st.Total - st.Valid
	return st, nil
}

func nullable(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
