package archive

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/mazen160/go-random"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Config selects where runs are archived, a remote libsql database if Url
// is set, otherwise a local sqlite file.
type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (c Config) Enabled() bool {
	return c.File != "" || c.Url != ""
}

func (c Config) open() (*sql.DB, error) {
	if c.Url != "" {
		dsn := c.Url
		if c.AuthToken != "" {
			parsed, err := url.Parse(c.Url)
			if err != nil {
				return nil, err
			}
			query := parsed.Query()
			query.Set("authToken", c.AuthToken)
			parsed.RawQuery = query.Encode()
			dsn = parsed.String()
		}
		return sql.Open("libsql", dsn)
	}

	if c.File != ":memory:" {
		err := os.MkdirAll(filepath.Dir(c.File), 0777)
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", c.File)
	if err != nil {
		return nil, err
	}
	// sqlite only allows one writer at a time
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Store is an append-only log of refresh runs.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open connects to the configured database and creates the schema.
func Open(ctx context.Context, config Config) (Store, error) {
	if !config.Enabled() {
		return Store{}, fmt.Errorf("archive is not configured")
	}
	db, err := config.open()
	if err != nil {
		return Store{}, fmt.Errorf("open archive: %w", err)
	}
	store, err := NewStore(ctx, db)
	if err != nil {
		db.Close()
		return Store{}, err
	}
	return store, nil
}

// NewStore wraps an existing database, creating the schema if needed.
func NewStore(ctx context.Context, db *sql.DB) (Store, error) {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return Store{}, fmt.Errorf("create archive schema: %w", err)
	}
	return Store{db: db, now: time.Now}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

type Entry struct {
	Updated  string
	Source   string
	Reason   string
	Rankings []string
}

type Run struct {
	Id        string
	Updated   string
	Source    string
	Reason    string
	CreatedAt time.Time
	Count     int
}

// Append stores one run and its rankings, returning the generated run id.
func (s Store) Append(ctx context.Context, entry Entry) (string, error) {
	id, err := random.String(8)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		"insert into runs(id, updated, source, reason, created_at) values (?, ?, ?, ?, ?)",
		id, entry.Updated, entry.Source, entry.Reason, s.now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for i, name := range entry.Rankings {
		_, err := tx.ExecContext(
			ctx,
			"insert into run_rankings(run_id, rank, name) values (?, ?, ?)",
			id, i+1, name,
		)
		if err != nil {
			return "", fmt.Errorf("insert ranking %d: %w", i+1, err)
		}
	}

	return id, tx.Commit()
}

// Recent lists up to `limit` runs, newest first.
func (s Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`select r.id, r.updated, r.source, r.reason, r.created_at, count(rr.rank)
		from runs r
		left join run_rankings rr on rr.run_id = r.id
		group by r.id
		order by r.created_at desc, r.rowid desc
		limit ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		err := rows.Scan(&run.Id, &run.Updated, &run.Source, &run.Reason, &createdAt, &run.Count)
		if err != nil {
			return nil, err
		}
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Rankings returns the names stored for a run in rank order.
func (s Store) Rankings(ctx context.Context, runId string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"select name from run_rankings where run_id = ? order by rank",
		runId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		err := rows.Scan(&name)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
