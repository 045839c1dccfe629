package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-daycare/internal/platform/logger"

	"github.com/google/uuid"
)

// HeaderRequestID se acepta del cliente y se devuelve siempre en la respuesta.
const HeaderRequestID = "X-Request-ID"

type ctxKey string

const requestIDKey ctxKey = "request_id"

// RequestID asigna un id por request (el del header o un uuid nuevo) y deja en el ctx
// un logger hijo de base con request_id, para que handlers y servicios logueen con él.
func RequestID(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			ctx = logger.WithContext(ctx, base.With(map[string]any{"request_id": id}))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
