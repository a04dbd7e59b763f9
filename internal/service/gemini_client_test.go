package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Assessly/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyBackendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"invalid key message", &googleapi.Error{Code: http.StatusBadRequest, Message: "API key not valid. Please pass a valid API key."}, InvalidCredential},
		{"invalid key reason", &googleapi.Error{Code: http.StatusBadRequest, Errors: []googleapi.ErrorItem{{Reason: "API_KEY_INVALID"}}}, InvalidCredential},
		{"wrapped", fmt.Errorf("generate: %w", &googleapi.Error{Code: http.StatusForbidden, Body: `{"reason":"API_KEY_INVALID"}`}), InvalidCredential},
		{"quota", &googleapi.Error{Code: http.StatusTooManyRequests, Message: "Resource has been exhausted"}, BackendError},
		{"bad request for other reasons", &googleapi.Error{Code: http.StatusBadRequest, Message: "Request payload size exceeds the limit"}, BackendError},
		{"plain message", errors.New("rpc error: API key not valid"), InvalidCredential},
		{"network", errors.New("dial tcp: i/o timeout"), BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ge := classifyBackendError(tt.err)
			assert.Equal(t, tt.want, ge.Kind)
			assert.ErrorIs(t, ge, tt.err)
		})
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{"joined parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"high":`), genai.Text(`"h"}`)}}},
		}}, `{"high":"h"}`},
		{"skips non text", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("second")}}},
		}}, "second"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseText(tt.resp))
		})
	}
}

func TestGeminiClientRequiresCredential(t *testing.T) {
	cfg := &config.Config{}
	cfg.Gemini.Model = "gemini-2.5-flash"
	client := NewGenerationClient(cfg)

	_, err := client.Generate(context.Background(), " ", GenerationRequest{Prompt: "p"})
	require.Error(t, err)
	assert.Equal(t, MissingCredential, FailureKindOf(err))
}
