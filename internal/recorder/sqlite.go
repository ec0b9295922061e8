package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analytics history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the tracker writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS refresh_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			source    TEXT,
			tickers   INTEGER,
			fallbacks INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_ts ON refresh_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS summary_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			portfolio        TEXT,
			total_value      REAL,
			total_cost       REAL,
			total_gain_loss  REAL,
			total_return_pct REAL,
			return_valid     INTEGER,
			holdings         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summary_ts ON summary_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS strategy_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			strategy_id     TEXT,
			portfolio       TEXT,
			summary         TEXT,
			recommendations INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_strategy_ts ON strategy_runs(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRefresh(evt *RefreshEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO refresh_events (timestamp, source, tickers, fallbacks)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.Source, evt.Tickers, evt.Fallbacks,
	)
	return err
}

func (r *SQLiteRecorder) RecordSummary(snap *SummarySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	valid := 0
	if snap.ReturnValid {
		valid = 1
	}
	_, err := r.db.Exec(`INSERT INTO summary_snapshots
		(timestamp, portfolio, total_value, total_cost, total_gain_loss, total_return_pct, return_valid, holdings)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Portfolio, snap.TotalValue, snap.TotalCost,
		snap.TotalGainLoss, snap.TotalReturnPct, valid, snap.Holdings,
	)
	return err
}

func (r *SQLiteRecorder) RecordStrategyRun(run *StrategyRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO strategy_runs
		(timestamp, strategy_id, portfolio, summary, recommendations)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), run.StrategyID, run.Portfolio, run.Summary, run.Recommendations,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
