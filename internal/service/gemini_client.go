package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/lshigami/Assessly/config"
	"github.com/lshigami/Assessly/internal/model"
	"github.com/lshigami/Assessly/internal/schema"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	jsonMIMEType      = "application/json"
	invalidKeyReason  = "API_KEY_INVALID"
	invalidKeyMessage = "API key not valid"
)

// GenerationRequest is everything the backend needs for one call.
type GenerationRequest struct {
	Prompt     string
	Attachment *model.Attachment
	Contract   schema.Contract
}

// GenerationClient sends a request to the generative backend and returns the raw response text.
// The credential is an explicit argument: no client is kept between calls.
type GenerationClient interface {
	Generate(ctx context.Context, credential string, req GenerationRequest) (string, error)
}

type geminiClient struct {
	model       string
	temperature float32
}

func NewGenerationClient(cfg *config.Config) GenerationClient {
	return &geminiClient{model: cfg.Gemini.Model, temperature: cfg.Gemini.Temperature}
}

func (c *geminiClient) Generate(ctx context.Context, credential string, req GenerationRequest) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", failure(MissingCredential, errors.New("no API key configured"))
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(credential))
	if err != nil {
		return "", failure(BackendError, fmt.Errorf("create gemini client: %w", err))
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	m.SetTemperature(c.temperature)
	m.ResponseMIMEType = jsonMIMEType
	m.ResponseSchema = req.Contract

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.Attachment != nil && len(req.Attachment.Data) > 0 {
		parts = append(parts, genai.Blob{MIMEType: req.Attachment.MIMEType, Data: req.Attachment.Data})
	}

	log.Debug().Str("model", c.model).Int("promptLength", len(req.Prompt)).Bool("attachment", len(parts) > 1).Msg("Sending generation request to Gemini")
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", classifyBackendError(err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", failure(EmptyResponse, errors.New("gemini returned no text content"))
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate that has content.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

// classifyBackendError separates a rejected API key from every other backend failure.
func classifyBackendError(err error) *GenerationError {
	if isInvalidKey(err) {
		return failure(InvalidCredential, err)
	}
	return failure(BackendError, err)
}

func isInvalidKey(err error) bool {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Reason() == invalidKeyReason {
			return true
		}
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		for _, item := range gErr.Errors {
			if item.Reason == invalidKeyReason {
				return true
			}
		}
		switch gErr.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			if strings.Contains(gErr.Message, invalidKeyMessage) || strings.Contains(gErr.Body, invalidKeyReason) {
				return true
			}
		}
		return false
	}
	return strings.Contains(err.Error(), invalidKeyMessage)
}
