package middleware

import (
	"net/http"

	"pharmacy-records/pkg/requestctx"
	"pharmacy-records/pkg/response"

	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderActor     = "X-Actor"
)

type RequestContextMiddleware struct{}

func NewRequestContextMiddleware() *RequestContextMiddleware {
	return &RequestContextMiddleware{}
}

// Handle tags the request with a request id and the acting party named by the
// caller. The actor is recorded in audit rows, it is not authenticated.
// Both values must fit their audit columns: an oversized request id is
// replaced, an oversized actor is rejected.
func (m *RequestContextMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := r.Header.Get(HeaderActor)
		if len(actor) > requestctx.MaxActorLength {
			response.BadRequest(w, "X-Actor header is too long")
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > requestctx.MaxRequestIDLength {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := requestctx.WithRequestID(r.Context(), requestID)
		if actor != "" {
			ctx = requestctx.WithActor(ctx, actor)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
