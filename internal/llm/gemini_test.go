package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_QuizShape(t *testing.T) {
	schema := buildGeminiSchema(testQuizSchema().Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	questions := schema.Properties["questions"]
	if questions == nil || questions.Type != "ARRAY" {
		t.Fatalf("expected ARRAY questions property, got %+v", questions)
	}
	if questions.MinItems == nil || *questions.MinItems != 5 {
		t.Fatalf("expected minItems 5, got %v", questions.MinItems)
	}
	if questions.MaxItems == nil || *questions.MaxItems != 5 {
		t.Fatalf("expected maxItems 5, got %v", questions.MaxItems)
	}

	item := questions.Items
	if item.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %s", item.Type)
	}
	if item.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING options, got %s", item.Properties["options"].Items.Type)
	}
	if len(item.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(item.Required))
	}
}

func TestBuildGeminiSchema_Enum(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type": "string",
		"enum": []any{"easy", "medium", "hard"},
	})
	if schema.Type != "STRING" || len(schema.Enum) != 3 {
		t.Fatalf("unexpected schema: %+v", schema)
	}
}
