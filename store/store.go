// SPDX-License-Identifier: MIT

// Package store persists computed distance and split matrices in PostgreSQL
// so repeated queries against a large graph do not rerun the O(V³) engine.
//
// One row is written per ordered vertex pair. +Inf distances are stored as
// the float8 value 'Infinity'; a missing split vertex is stored as NULL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/katalvlaran/roadapsp/apsp"
	"github.com/katalvlaran/roadapsp/internal/logging"
	"github.com/katalvlaran/roadapsp/matrix"
)

var (
	// ErrNilDB indicates a Store without a database handle.
	ErrNilDB = errors.New("store: db is nil")

	// ErrNotFound indicates no stored result (or cell) for the requested name.
	ErrNotFound = errors.New("store: not found")

	// ErrEmptyName indicates an empty graph name.
	ErrEmptyName = errors.New("store: graph name must not be empty")
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS apsp_graph (
	name       TEXT PRIMARY KEY,
	vertices   INTEGER NOT NULL,
	has_pred   BOOLEAN NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`, `
CREATE TABLE IF NOT EXISTS apsp_cell (
	graph    TEXT NOT NULL REFERENCES apsp_graph(name) ON DELETE CASCADE,
	src      INTEGER NOT NULL,
	dst      INTEGER NOT NULL,
	distance DOUBLE PRECISION NOT NULL,
	split    INTEGER,
	PRIMARY KEY (graph, src, dst)
);`}

// Open connects to PostgreSQL through the pgx database/sql driver and
// verifies the connection.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store.Open: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store.Open: verify postgres connection: %w", err)
	}

	return db, nil
}

// Store is a SQL-backed repository of apsp results keyed by graph name.
type Store struct {
	DB *sql.DB
}

// New wraps db. The caller owns db and closes it.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// InitSchema creates the tables if they do not exist.
func (s *Store) InitSchema(ctx context.Context) (err error) {
	defer logging.Time(ctx, "store.InitSchema")(&err)

	if s.DB == nil {
		return ErrNilDB
	}
	for _, stmt := range schema {
		if _, err = s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store.InitSchema: %w", err)
		}
	}

	return nil
}

// Save replaces any stored result for name with res, in one transaction.
func (s *Store) Save(ctx context.Context, name string, res *apsp.Result) (err error) {
	defer logging.Time(ctx, "store.Save")(&err)

	if s.DB == nil {
		return ErrNilDB
	}
	if name == "" {
		return ErrEmptyName
	}
	if res == nil || res.Dist == nil {
		return fmt.Errorf("store.Save(%s): %w", name, matrix.ErrNilMatrix)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.Save(%s): db begin: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	n := res.Size()
	if _, err = tx.ExecContext(ctx, `
	INSERT INTO apsp_graph (name, vertices, has_pred, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (name) DO UPDATE
	SET vertices = EXCLUDED.vertices,
		has_pred = EXCLUDED.has_pred,
		updated_at = EXCLUDED.updated_at;
	`, name, n, res.Pred != nil); err != nil {
		return fmt.Errorf("store.Save(%s): upsert graph: %w", name, err)
	}
	// a previous, larger graph may have left extra cells behind
	if _, err = tx.ExecContext(ctx, `DELETE FROM apsp_cell WHERE graph = $1;`, name); err != nil {
		return fmt.Errorf("store.Save(%s): clear cells: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO apsp_cell (graph, src, dst, distance, split)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (graph, src, dst) DO UPDATE
	SET distance = EXCLUDED.distance,
		split = EXCLUDED.split;
	`)
	if err != nil {
		return fmt.Errorf("store.Save(%s): db prepare: %w", name, err)
	}
	defer stmt.Close()

	for _, c := range EncodeCells(res) {
		if _, err = stmt.ExecContext(ctx, name, c.Src, c.Dst, c.Distance, c.Split); err != nil {
			return fmt.Errorf("store.Save(%s) cell (%d,%d): %w", name, c.Src, c.Dst, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store.Save(%s): commit: %w", name, err)
	}

	return nil
}

// Distance returns one stored D[i][j].
func (s *Store) Distance(ctx context.Context, name string, i, j int) (float64, error) {
	if s.DB == nil {
		return 0, ErrNilDB
	}

	var d float64
	err := s.DB.QueryRowContext(ctx,
		`SELECT distance FROM apsp_cell WHERE graph = $1 AND src = $2 AND dst = $3;`,
		name, i, j).Scan(&d)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("store.Distance(%s,%d,%d): %w", name, i, j, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("store.Distance(%s,%d,%d): %w", name, i, j, err)
	}

	return d, nil
}

// Load rebuilds the full Result stored under name.
func (s *Store) Load(ctx context.Context, name string) (_ *apsp.Result, err error) {
	defer logging.Time(ctx, "store.Load")(&err)

	if s.DB == nil {
		return nil, ErrNilDB
	}

	var (
		n       int
		hasPred bool
	)
	err = s.DB.QueryRowContext(ctx,
		`SELECT vertices, has_pred FROM apsp_graph WHERE name = $1;`, name).Scan(&n, &hasPred)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store.Load(%s): %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store.Load(%s): query graph: %w", name, err)
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT src, dst, distance, split FROM apsp_cell WHERE graph = $1;`, name)
	if err != nil {
		return nil, fmt.Errorf("store.Load(%s): query cells: %w", name, err)
	}
	defer rows.Close()

	cells := make([]Cell, 0, n*n)
	var c Cell
	for rows.Next() {
		if err = rows.Scan(&c.Src, &c.Dst, &c.Distance, &c.Split); err != nil {
			return nil, fmt.Errorf("store.Load(%s): scan rows: %w", name, err)
		}
		cells = append(cells, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Load(%s): row iteration: %w", name, err)
	}

	res, err := DecodeCells(n, hasPred, cells)
	if err != nil {
		return nil, fmt.Errorf("store.Load(%s): %w", name, err)
	}

	return res, nil
}

// Cell is one persisted (src, dst) row. Distance keeps +Inf as is, which
// the driver writes as float8 'Infinity'; Split is NULL when no split
// vertex was recorded or predecessors were not tracked.
type Cell struct {
	Src, Dst int
	Distance float64
	Split    sql.NullInt64
}

// EncodeCells flattens res into V² rows in row-major order.
func EncodeCells(res *apsp.Result) []Cell {
	n := res.Size()
	d := res.Dist.Raw()
	var p []float64
	if res.Pred != nil {
		p = res.Pred.Raw()
	}

	out := make([]Cell, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := Cell{Src: i, Dst: j, Distance: d[i*n+j]}
			if p != nil && !math.IsInf(p[i*n+j], 1) {
				c.Split = sql.NullInt64{Int64: int64(p[i*n+j]), Valid: true}
			}
			out = append(out, c)
		}
	}

	return out
}

// DecodeCells rebuilds an n-vertex Result from rows. Cells not present keep
// the empty-graph defaults (0 on the diagonal, +Inf elsewhere); NULL splits
// become +Inf. Pred is nil unless hasPred.
func DecodeCells(n int, hasPred bool, cells []Cell) (*apsp.Result, error) {
	dist, err := matrix.NewSquare(n, 0, math.Inf(1))
	if err != nil {
		return nil, err
	}
	var pred *matrix.Dense
	if hasPred {
		if pred, err = matrix.NewSquare(n, 0, math.Inf(1)); err != nil {
			return nil, err
		}
	}

	var v float64
	for _, c := range cells {
		if err = dist.Set(c.Src, c.Dst, c.Distance); err != nil {
			return nil, err
		}
		if pred == nil {
			continue
		}
		v = math.Inf(1)
		if c.Split.Valid {
			v = float64(c.Split.Int64)
		}
		if err = pred.Set(c.Src, c.Dst, v); err != nil {
			return nil, err
		}
	}

	return &apsp.Result{Dist: dist, Pred: pred}, nil
}
