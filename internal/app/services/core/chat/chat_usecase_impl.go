package chat

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"go.uber.org/zap"
)

// chatSystemPrompt is the fixed instruction prepended to every proxied
// conversation.
const chatSystemPrompt = `You are a medical information assistant for emergency responders. Answer concisely and factually. You do not diagnose; you help interpret medical terminology, medications, and first-aid procedures. Recommend contacting emergency services for anything urgent.`

type chatUsecase struct {
	rateLimiter     contracts.UserRateLimiter
	inferenceClient contracts.InferenceClient
	log             *zap.Logger
}

func NewChatUsecase(rateLimiter contracts.UserRateLimiter, inferenceClient contracts.InferenceClient, log *zap.Logger) contracts.ChatUsecase {
	return &chatUsecase{
		rateLimiter:     rateLimiter,
		inferenceClient: inferenceClient,
		log:             log,
	}
}

func (u *chatUsecase) SendMessage(ctx context.Context, userID string, request *requests.ChatRequest) (string, error) {
	if err := validateChatRequest(request); err != nil {
		return "", err
	}

	decision, err := u.rateLimiter.Allow(ctx, userID)
	if err != nil {
		return "", exceptions.ErrRateLimitBackend(err)
	}
	if !decision.Allowed {
		return "", exceptions.ErrRateLimitExceeded(nil)
	}

	messages := make([]contracts.InferenceMessage, 0, len(request.Messages)+1)
	messages = append(messages, contracts.InferenceMessage{Role: "system", Content: chatSystemPrompt})
	for _, message := range request.Messages {
		messages = append(messages, contracts.InferenceMessage{Role: message.Role, Content: message.Content})
	}

	reply, err := u.inferenceClient.Complete(ctx, &contracts.CompletionInput{Messages: messages})
	if err != nil {
		return "", err
	}

	u.log.Info("chatUsecase.SendMessage completed",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Int("message_count", len(request.Messages)),
	)
	return reply, nil
}

func validateChatRequest(request *requests.ChatRequest) error {
	if request == nil || len(request.Messages) == 0 {
		return exceptions.ErrMessagesRequired(nil)
	}
	if len(request.Messages) > requests.ChatMaxMessages {
		return exceptions.ErrTooManyMessages(nil)
	}
	for _, message := range request.Messages {
		if message.Role != requests.ChatMessageRoleUser && message.Role != requests.ChatMessageRoleAssistant {
			return exceptions.ErrInvalidMessageRole(nil)
		}
		if len(message.Content) > requests.ChatMaxMessageLength {
			return exceptions.ErrMessageTooLong(nil)
		}
	}
	return nil
}
