package routers

import (
	"time"

	"github.com/Maitreya20/care-tap-ai/internal/app/delivery/http/middlewares"
	"github.com/Maitreya20/care-tap-ai/internal/app/services/core/chat"
	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, mw *middlewares.Middlewares, chatController *chat.ChatController) {
	burstLimiter := middlewares.NewRateLimiter(5, time.Second, 30*time.Second)
	router.With(mw.Authenticate, burstLimiter.Limit).Post("/", chatController.SendMessage)
}
