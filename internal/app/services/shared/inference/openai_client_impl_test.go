package inference

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maitreya20/care-tap-ai/internal/app/config"
	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func newTestClient(baseUrl string) contracts.InferenceClient {
	return NewOpenAIClient(config.AI{
		BaseUrl:                 baseUrl,
		APIKey:                  "test-api-key",
		Model:                   "gpt-4o-mini",
		RequestTimeoutInSeconds: 5,
	})
}

func completionBody(content string) string {
	return `{"choices": [{"message": {"content": ` + mustMarshalString(content) + `}}]}`
}

func mustMarshalString(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Completion", func(t *testing.T) {
		var captured completionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-api-key", r.Header.Get(constvars.HeaderAuthorization))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(completionBody(`{"triageLevel": "stable"}`)))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		content, err := client.Complete(ctx, &contracts.CompletionInput{
			Messages: []contracts.InferenceMessage{
				{Role: "system", Content: "instruction"},
				{Role: "user", Content: "patient summary"},
			},
			JSONResponse: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, `{"triageLevel": "stable"}`, content)
		assert.Equal(t, "gpt-4o-mini", captured.Model)
		assert.Len(t, captured.Messages, 2)
		if assert.NotNil(t, captured.ResponseFormat) {
			assert.Equal(t, "json_object", captured.ResponseFormat.Type)
		}
	})

	t.Run("Chat Completion Omits Response Format", func(t *testing.T) {
		var captured completionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Write([]byte(completionBody("free text reply")))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		content, err := client.Complete(ctx, &contracts.CompletionInput{
			Messages: []contracts.InferenceMessage{{Role: "user", Content: "hello"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, "free text reply", content)
		assert.Nil(t, captured.ResponseFormat)
	})

	t.Run("Upstream Rate Limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.Complete(ctx, &contracts.CompletionInput{})

		assertUpstreamError(t, err, constvars.StatusTooManyRequests, constvars.ErrClientAIServiceRateLimitExceeded)
	})

	t.Run("Upstream Payment Required", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.Complete(ctx, &contracts.CompletionInput{})

		assertUpstreamError(t, err, constvars.StatusPaymentRequired, constvars.ErrClientAIServicePaymentRequired)
	})

	t.Run("Other Upstream Failures Are Generic", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.Complete(ctx, &contracts.CompletionInput{})

		assertUpstreamError(t, err, constvars.StatusInternalServerError, constvars.ErrClientAIAnalysisFailed)
	})

	t.Run("Empty Choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.Complete(ctx, &contracts.CompletionInput{})

		assertUpstreamError(t, err, constvars.StatusInternalServerError, constvars.ErrClientAIAnalysisFailed)
	})

	t.Run("Unreachable Endpoint", func(t *testing.T) {
		client := newTestClient("http://127.0.0.1:1")
		_, err := client.Complete(ctx, &contracts.CompletionInput{})

		assertUpstreamError(t, err, constvars.StatusInternalServerError, constvars.ErrClientAIAnalysisFailed)
	})
}

func assertUpstreamError(t *testing.T, err error, statusCode int, clientMessage string) {
	t.Helper()

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	if !ok {
		t.Fatalf("expected *exceptions.CustomError, got %T", err)
	}
	assert.Equal(t, statusCode, customErr.StatusCode)
	assert.Equal(t, clientMessage, customErr.ClientMessage)
}
