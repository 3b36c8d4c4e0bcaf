package store

import (
	"context"
	"fmt"
	"math"

	entsql "entgo.io/ent/dialect/sql"
)

var llmEventColumns = []string{
	"id", "sequence", "timestamp", "request_id", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success", "stop_reason",
	"error_message", "request_body", "response_body",
}

func (r *EventStore) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder().Insert(llmEventsTable).
		Columns(llmEventColumns[1:]...).
		Values(seqNum, now(), data.RequestID, data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.StopReason,
			data.ErrorMessage, data.RequestBody, data.ResponseBody)
	if err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row scanner) (LLMEvent, error) {
	var e LLMEvent
	var ts int64
	err := row.Scan(&e.ID, &e.Sequence, &ts, &e.RequestID, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.StopReason,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody)
	e.Timestamp = fromMillis(ts)
	return e, err
}

func (r *EventStore) queryLLMEvents(ctx context.Context, sel *entsql.Selector) ([]LLMEvent, error) {
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// QueryLLMEvents returns LLM events matching opts, newest first.
func (r *EventStore) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	sel := builder().Select(llmEventColumns...).From(entsql.Table(llmEventsTable))
	return r.queryLLMEvents(ctx, opts.apply(sel))
}

// GetLLMEvent returns the event with the given ID, or nil if none exists.
func (r *EventStore) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	sel := builder().Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ("id", id)).
		Limit(1)
	events, err := r.queryLLMEvents(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

// LLMUsageByPurpose aggregates token usage per purpose label.
func (r *EventStore) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	sel := builder().Select(
		"purpose",
		entsql.Count("id"),
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
		entsql.Avg("latency_ms"),
	).From(entsql.Table(llmEventsTable)).GroupBy("purpose").OrderBy("purpose")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query usage by purpose: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		var avg float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		u.AvgLatencyMs = int64(math.Round(avg))
		out = append(out, u)
	}
	return out, rows.Err()
}

// LLMUsageByModel aggregates token usage per model.
func (r *EventStore) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	sel := builder().Select(
		"model",
		entsql.Count("id"),
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
	).From(entsql.Table(llmEventsTable)).GroupBy("model").OrderBy("model")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query usage by model: %w", err)
	}
	defer rows.Close()

	var out []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Calls, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
