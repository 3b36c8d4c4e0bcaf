package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Anagha/Quizzy/internal/llm"
	"github.com/S-Anagha/Quizzy/internal/quiz"
)

func TestNormalizeTopic(t *testing.T) {
	assert.Equal(t, DefaultTopic, NormalizeTopic(""))
	assert.Equal(t, DefaultTopic, NormalizeTopic("  \t\n"))
	assert.Equal(t, "volcanoes", NormalizeTopic("  volcanoes "))
}

func TestGenerate_SendsPromptContract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "raw output"})
	gen := New(mock, DefaultConfig())

	raw, err := gen.Generate(context.Background(), "Photosynthesis")
	require.NoError(t, err)
	assert.Equal(t, "raw output", raw)

	req := mock.LastRequest()
	assert.Equal(t, "You return ONLY JSON arrays. Never markdown.", req.System)
	assert.Equal(t, 500, req.MaxTokens)
	assert.InDelta(t, 0.2, req.Temperature, 1e-9)
	assert.Equal(t, []string{"END"}, req.Stop)
	assert.Nil(t, req.Schema)

	require.Len(t, req.Messages, 1)
	msg := req.Messages[0].Content
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Contains(t, msg, `"Photosynthesis"`)
	assert.Contains(t, msg, "EXACTLY 5 questions")
	assert.Contains(t, msg, "EXACTLY 4 distinct options")
	assert.Contains(t, msg, "NO markdown")
}

func TestGenerate_DefaultTopic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "[]"})
	_, err := New(mock, DefaultConfig()).Generate(context.Background(), "   ")
	require.NoError(t, err)
	assert.Contains(t, mock.LastRequest().Messages[0].Content, `"general knowledge"`)
}

func TestGenerate_ProviderFailureIsUnavailable(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: cause})

	raw, err := New(mock, DefaultConfig()).Generate(context.Background(), "x")
	assert.Empty(t, raw)

	var f *quiz.Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, quiz.KindGenerationUnavailable, f.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, mock.CallCount(), "no retries at this layer")
}

func TestGenerate_TruncatedOutputIsPassedOn(t *testing.T) {
	truncated := `[{"question":"Q","options":["a","b"]`
	mock := llm.NewMockProvider(llm.MockResponse{Text: truncated, StopReason: "max_tokens"})

	raw, err := New(mock, DefaultConfig()).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, truncated, raw)

	_, err = quiz.Extract(raw)
	assert.Equal(t, quiz.KindMalformedJSON, quiz.KindOf(err))
}

func TestGenerate_SchemaRejectedTextIsPassedOn(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrInvalidResponse{
		Text: `{"questions":[]}`,
		Err:  errors.New("minItems"),
	}})

	raw, err := New(mock, DefaultConfig()).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, raw)
}

func TestGenerate_InvalidResponseWithoutTextIsUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("no choices")}})

	_, err := New(mock, DefaultConfig()).Generate(context.Background(), "x")
	assert.Equal(t, quiz.KindGenerationUnavailable, quiz.KindOf(err))
}

func TestGenerate_StructuredOutputAttachesSchema(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StructuredOutput = true
	mock := llm.NewMockProvider(llm.MockResponse{Text: "{}"})

	_, err := New(mock, cfg).Generate(context.Background(), "x")
	require.NoError(t, err)

	schema := mock.LastRequest().Schema
	require.NotNil(t, schema)
	assert.Equal(t, "quiz-set-5x4", schema.Name)
}

func TestGenerate_UsesQuizPurpose(t *testing.T) {
	var purpose string
	p := purposeRecorder{fn: func(ctx context.Context) { purpose = llm.PurposeFrom(ctx) }}

	_, err := New(p, DefaultConfig()).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, Purpose, purpose)
}

type purposeRecorder struct {
	fn func(ctx context.Context)
}

func (p purposeRecorder) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return &llm.Response{Text: "[]"}, nil
}

func (purposeRecorder) ModelID() string { return "recorder" }

func TestBuildUserMessage_CustomPolicy(t *testing.T) {
	msg := buildUserMessage("rivers", quiz.Policy{QuestionCount: 3, OptionCount: 2})
	assert.Contains(t, msg, "EXACTLY 3 questions")
	assert.Contains(t, msg, "EXACTLY 2 distinct options")
	assert.Contains(t, msg, `"options": ["A","B"]`)
	assert.True(t, strings.HasSuffix(msg, "Return ONLY the JSON array."))
}

func TestBuildUserMessage_QuotesTopic(t *testing.T) {
	msg := buildUserMessage(`the "Beatles"`, quiz.DefaultPolicy())
	assert.Contains(t, msg, `"the \"Beatles\""`)
}
