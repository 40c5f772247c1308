package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/exceptions"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/utils"
)

// Authenticate requires a valid bearer token and stores its subject as the
// acting user id. No roles are resolved here; the role gate fetches them fresh
// per request.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_UID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
