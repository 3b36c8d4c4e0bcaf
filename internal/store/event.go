package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out one monotonic sequence shared by every event
// table, so LLM calls and quiz outcomes can be interleaved in order.
// It stays on raw SQL because ent has no atomic counter; the RETURNING
// clause makes each increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// EventStore implements EventRepo and the read-side queries used by the CLI.
type EventStore struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var _ EventRepo = (*EventStore)(nil)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// exec runs an insert or update built with the ent builders.
func (r *EventStore) exec(ctx context.Context, q interface{ Query() (string, []any) }) error {
	query, args := q.Query()
	return r.drv.Exec(ctx, query, args, nil)
}

// query runs sel and returns the open rows; callers close them.
func (r *EventStore) query(ctx context.Context, sel *entsql.Selector) (*entsql.Rows, error) {
	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// apply adds the QueryOpts filters to sel. Results are newest first.
func (o QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	var preds []*entsql.Predicate
	if o.Purpose != "" {
		preds = append(preds, entsql.EQ("purpose", o.Purpose))
	}
	if o.After > 0 {
		preds = append(preds, entsql.GT("sequence", o.After))
	}
	if o.Before > 0 {
		preds = append(preds, entsql.LT("sequence", o.Before))
	}
	if !o.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", o.From.UnixMilli()))
	}
	if !o.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", o.To.UnixMilli()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if o.Limit > 0 {
		sel.Limit(o.Limit)
	}
	return sel
}

func now() int64 {
	return time.Now().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
