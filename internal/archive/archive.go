// Package archive keeps an additive sqlite history of every new scored
// posting. It never feeds back into scoring or dedup; the seen file
// owns those decisions.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"job-monitor/internal/domain"
	"job-monitor/internal/track"

	_ "modernc.org/sqlite"
)

type DB struct {
	pool *sql.DB
}

func Open(path string) (*DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(1) // sqlite wants one writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	db := &DB{pool: pool}
	if err := db.migrate(); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return db, nil
}

func (d *DB) Close() error {
	if d == nil || d.pool == nil {
		return nil
	}
	return d.pool.Close()
}

func (d *DB) migrate() error {
	tx, err := d.pool.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS postings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  global_id TEXT NOT NULL,
  company TEXT NOT NULL,
  title TEXT NOT NULL,
  location TEXT NOT NULL,
  url TEXT NOT NULL,
  source TEXT NOT NULL,
  score INTEGER NOT NULL DEFAULT 0,
  reasons TEXT NOT NULL DEFAULT '[]',
  posted_date TEXT NOT NULL DEFAULT '',
  salary TEXT NOT NULL DEFAULT '',
  first_seen TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_postings_global_id
ON postings(global_id);
`); err != nil {
		return err
	}
	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_postings_first_seen
ON postings(first_seen);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// InsertIfNew appends a posting, reporting whether the archive had not
// seen its global id before. Relies on the unique index plus
// SELECT changes() — rows-affected with INSERT OR IGNORE is not
// reliable across drivers.
func (d *DB) InsertIfNew(ctx context.Context, sp domain.ScoredPosting) (bool, error) {
	reasons, _ := json.Marshal(sp.Reasons)
	_, err := d.pool.ExecContext(ctx, `
INSERT OR IGNORE INTO postings (global_id, company, title, location, url, source, score, reasons, posted_date, salary, first_seen)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		track.GlobalID(sp.Posting), sp.Company, sp.Title, sp.Location, sp.URL,
		string(sp.Source), sp.Score, string(reasons), sp.PostedDate, sp.Salary, sp.FirstSeen,
	)
	if err != nil {
		return false, fmt.Errorf("insert posting: %w", err)
	}
	var changes int
	if err := d.pool.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); err != nil {
		return true, nil
	}
	return changes > 0, nil
}

type Row struct {
	ID         int64    `json:"id"`
	GlobalID   string   `json:"globalId"`
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	URL        string   `json:"url"`
	Source     string   `json:"source"`
	Score      int      `json:"score"`
	Reasons    []string `json:"reasons"`
	PostedDate string   `json:"postedDate"`
	Salary     string   `json:"salary"`
	FirstSeen  string   `json:"firstSeen"`
}

type ListOpts struct {
	Sort   string // score | date | company | title
	Window string // 24h | 7d | all
	Limit  int
}

func (d *DB) List(ctx context.Context, opts ListOpts) ([]Row, error) {
	if opts.Limit <= 0 || opts.Limit > 2000 {
		opts.Limit = 200
	}

	// whitelist sort columns (prevents SQL injection)
	sortCol, order := "score", "DESC"
	switch opts.Sort {
	case "", "score":
	case "date":
		sortCol = "first_seen"
	case "company":
		sortCol, order = "company", "ASC"
	case "title":
		sortCol, order = "title", "ASC"
	default:
		return nil, fmt.Errorf("unknown sort %q", opts.Sort)
	}

	where := ""
	switch opts.Window {
	case "24h":
		where = "WHERE first_seen >= date('now','-1 day')"
	case "", "7d":
		where = "WHERE first_seen >= date('now','-7 days')"
	case "all":
	default:
		return nil, fmt.Errorf("unknown window %q", opts.Window)
	}

	query := fmt.Sprintf(`
SELECT id, global_id, company, title, location, url, source, score, reasons, posted_date, salary, first_seen
FROM postings
%s
ORDER BY %s %s, id ASC
LIMIT ?;`, where, sortCol, order)

	rows, err := d.pool.QueryContext(ctx, query, opts.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var reasonsJSON string
		if err := rows.Scan(
			&r.ID, &r.GlobalID, &r.Company, &r.Title, &r.Location, &r.URL,
			&r.Source, &r.Score, &reasonsJSON, &r.PostedDate, &r.Salary, &r.FirstSeen,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(reasonsJSON), &r.Reasons)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count reports the archive size, for the watch-mode status endpoint.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM postings;`).Scan(&n)
	return n, err
}
