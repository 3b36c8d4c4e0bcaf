package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

var quizEventColumns = []string{
	"id", "sequence", "timestamp", "request_id", "topic", "source",
	"success", "failure_kind", "detail", "question_count", "latency_ms",
}

func (r *EventStore) AppendQuizGeneration(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder().Insert(quizEventsTable).
		Columns(quizEventColumns[1:]...).
		Values(seqNum, now(), data.RequestID, data.Topic, data.Source, data.Success,
			data.FailureKind, data.Detail, data.QuestionCount, data.LatencyMs)
	if err := r.exec(ctx, insert); err != nil {
		return fmt.Errorf("save quiz generation event: %w", err)
	}
	return nil
}

// QueryQuizEvents returns quiz generation events matching opts, newest
// first. The Purpose filter does not apply.
func (r *EventStore) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEvent, error) {
	opts.Purpose = ""
	sel := builder().Select(quizEventColumns...).From(entsql.Table(quizEventsTable))

	rows, err := r.query(ctx, opts.apply(sel))
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var events []QuizEvent
	for rows.Next() {
		var e QuizEvent
		var ts int64
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.RequestID, &e.Topic, &e.Source,
			&e.Success, &e.FailureKind, &e.Detail, &e.QuestionCount, &e.LatencyMs); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		e.Timestamp = fromMillis(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

// QuizOutcomes counts quiz generations per failure kind. Successes are
// reported under the empty kind.
func (r *EventStore) QuizOutcomes(ctx context.Context) ([]OutcomeCount, error) {
	sel := builder().Select("failure_kind", entsql.Count("id")).
		From(entsql.Table(quizEventsTable)).
		GroupBy("failure_kind").
		OrderBy("failure_kind")

	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query quiz outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Kind, &c.Count); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
