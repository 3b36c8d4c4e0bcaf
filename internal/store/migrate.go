package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	llmEventsTable  = "llm_request_events"
	quizEventsTable = "quiz_generation_events"
)

// eventColumns are shared by every event table: an auto-increment ID, the
// global sequence and a unix-millisecond timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
	}, extra...)
}

var (
	llmEventsColumns = eventColumns(
		&schema.Column{Name: "request_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "stop_reason", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	llmEventsSchema = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_timestamp", Columns: []*schema.Column{llmEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[6]}},
		},
	}

	quizEventsColumns = eventColumns(
		&schema.Column{Name: "request_id", Type: field.TypeString},
		&schema.Column{Name: "topic", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "failure_kind", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "detail", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "question_count", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	)
	quizEventsSchema = &schema.Table{
		Name:       quizEventsTable,
		Columns:    quizEventsColumns,
		PrimaryKey: []*schema.Column{quizEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizgenerationevent_timestamp", Columns: []*schema.Column{quizEventsColumns[2]}},
			{Name: "quizgenerationevent_request_id", Columns: []*schema.Column{quizEventsColumns[3]}},
			{Name: "quizgenerationevent_failure_kind", Columns: []*schema.Column{quizEventsColumns[7]}},
		},
	}

	tables = []*schema.Table{llmEventsSchema, quizEventsSchema}
)

// migrate creates missing tables, columns and indexes. Nothing is dropped.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
