package inference

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/config"
	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/goccy/go-json"
)

type completionRequest struct {
	Model          string                       `json:"model"`
	Messages       []contracts.InferenceMessage `json:"messages"`
	ResponseFormat *responseFormat              `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	baseUrl    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient builds a client against an OpenAI-compatible
// chat-completions endpoint. The transport timeout is the fixed bound on every
// inference call.
func NewOpenAIClient(aiConfig config.AI) contracts.InferenceClient {
	return &openAIClient{
		baseUrl: aiConfig.BaseUrl,
		apiKey:  aiConfig.APIKey,
		model:   aiConfig.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(aiConfig.RequestTimeoutInSeconds) * time.Second,
		},
	}
}

func (c *openAIClient) Complete(ctx context.Context, input *contracts.CompletionInput) (string, error) {
	payload := completionRequest{
		Model:    c.model,
		Messages: input.Messages,
	}
	if input.JSONResponse {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.baseUrl+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", exceptions.ErrAIAnalysisFailed(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrAIAnalysisFailed(err)
	}
	defer resp.Body.Close()

	// The three outward-facing upstream failure classes; everything else is
	// generic.
	switch {
	case resp.StatusCode == constvars.StatusTooManyRequests:
		return "", exceptions.ErrAIUpstreamRateLimited(nil)
	case resp.StatusCode == constvars.StatusPaymentRequired:
		return "", exceptions.ErrAIUpstreamPaymentRequired(nil)
	case resp.StatusCode != constvars.StatusOK:
		return "", exceptions.ErrAIAnalysisFailed(fmt.Errorf(constvars.ErrDevInferenceUpstreamStatus, resp.StatusCode))
	}

	completion := new(completionResponse)
	if err := json.NewDecoder(resp.Body).Decode(completion); err != nil {
		return "", exceptions.ErrAIAnalysisFailed(err)
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrAIAnalysisFailed(fmt.Errorf(constvars.ErrDevInferenceEmptyChoice))
	}

	return completion.Choices[0].Message.Content, nil
}
