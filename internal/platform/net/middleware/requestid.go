package middleware

import (
	"net/http"
	"strings"

	pnet "authorcheck/internal/platform/net"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in and out
const HeaderRequestID = "X-Request-ID"

// maxInboundID bounds a caller supplied id before it is replaced
const maxInboundID = 128

// RequestID propagates a sane inbound X-Request-ID or mints a uuid v4, stores it on
// the context and mirrors it on the response
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if id == "" || len(id) > maxInboundID || strings.ContainsAny(id, "\r\n") {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
	})
}
