package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyHeader is accepted as an alternative to "Authorization: Bearer".
const APIKeyHeader = "X-API-Key"

const bearerPrefix = "Bearer "

// exemptPaths are routes that bypass authentication (usage, health, metrics).
var exemptPaths = map[string]struct{}{
	"/":        {},
	"/health":  {},
	"/healthz": {},
	"/metrics": {},
}

// BearerAuthMiddleware protects /analyze with static API keys.
// A key is sent as "Authorization: Bearer <key>" or in the X-API-Key header.
// If apiKeys has no non-empty entry, authentication is disabled.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, msg := requestToken(r)
			if msg == "" && !knownKey(keys, token) {
				msg = "invalid api key"
			}
			if msg != "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="jaundice"`)
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestToken returns the presented key, or a client-facing message when the
// request carries none.
func requestToken(r *http.Request) (string, string) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if !strings.HasPrefix(auth, bearerPrefix) {
			return "", "authorization header must use Bearer scheme"
		}
		return strings.TrimSpace(auth[len(bearerPrefix):]), ""
	}
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key, ""
	}
	return "", "missing authorization header"
}

func knownKey(keys [][]byte, token string) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, []byte(token))
	}
	return found == 1
}
