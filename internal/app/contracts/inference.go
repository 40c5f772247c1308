package contracts

import "context"

type InferenceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InferenceClient submits a chat-completion request to the external model
// endpoint and returns the raw assistant text. JSONResponse asks the endpoint
// for a JSON-constrained output mode; it is a schema hint, the response
// validator is the enforcement point.
type InferenceClient interface {
	Complete(ctx context.Context, input *CompletionInput) (string, error)
}

type CompletionInput struct {
	Messages     []InferenceMessage
	JSONResponse bool
}
