package chat

import (
	"net/http"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/requests"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/dto/responses"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChatController struct {
	ChatUsecase contracts.ChatUsecase
	Log         *zap.Logger
}

func NewChatController(chatUsecase contracts.ChatUsecase, log *zap.Logger) *ChatController {
	return &ChatController{
		ChatUsecase: chatUsecase,
		Log:         log,
	}
}

func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.CONTEXT_UID).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.ChatRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrMessagesRequired(err))
		return
	}

	reply, err := c.ChatUsecase.SendMessage(r.Context(), userID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, responses.Chat{Message: reply})
}
