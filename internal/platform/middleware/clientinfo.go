package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

type clientInfoKey struct{}

// ClientInfo parses the User-Agent header into a short "Browser on OS"
// label and stores it in the context, so request logs identify the
// caller's client without recording the raw header.
func ClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		label := parseUserAgent(r.Header.Get("User-Agent"))
		ctx := context.WithValue(r.Context(), clientInfoKey{}, label)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientInfo retrieves the client label from the context.
func GetClientInfo(ctx context.Context) string {
	if v, ok := ctx.Value(clientInfoKey{}).(string); ok {
		return v
	}
	return ""
}

func parseUserAgent(userAgentString string) string {
	if userAgentString == "" {
		return "unknown"
	}

	ua := useragent.New(userAgentString)
	browser, _ := ua.Browser()
	browser = strings.TrimSpace(browser)
	if browser == "" {
		if ua.Bot() {
			return "bot"
		}
		return "unknown"
	}

	os := strings.TrimSpace(ua.OS())
	if os == "" {
		return browser
	}
	return browser + " on " + os
}
