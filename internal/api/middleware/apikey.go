package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/mcoot/semantly-go/internal/api/apierr"
)

// APIKeyHeader is the header carrying the caller's API key
const APIKeyHeader = "x-api-key"

// APIKey creates middleware that rejects requests whose x-api-key header
// does not match the server-held key. Rejection happens before any
// business logic runs.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
