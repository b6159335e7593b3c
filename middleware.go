package authinfo

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edgekit/authinfo/observability"
)

// Middleware returns an HTTP middleware that decodes the auth headers of
// each request. On success the decoded context is attached to the request
// context (retrieve it with AuthFromContext) and the chain continues; on
// failure the middleware writes a JSON error body and stops the chain. The
// response is never touched on the success path.
func (d *Decoder) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac, err := d.Decode(r.Header)
			if err != nil {
				d.handleDecodeError(w, r, err)
				return
			}

			ctx := ContextWithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// handleDecodeError writes a typed decode failure as a JSON response.
// Untyped errors (the unsigned-mode JSON parse pass-through) get a 400
// with the raw message and no subcode.
func (d *Decoder) handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	d.logger.Warn("auth header rejected",
		observability.String("path", r.URL.Path),
		observability.String("method", r.Method),
		observability.Error(err),
	)

	var de *Error
	if !errors.As(err, &de) {
		de = &Error{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if de.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", d.header)
	}
	w.WriteHeader(de.Status)
	_ = json.NewEncoder(w).Encode(de)
}
