package origin

import (
	"context"
	"net"

	"github.com/danielgtaylor/huma/v2"
)

type contextKey string

const clientIPKey contextKey = "clientIP"

// Middleware captures the client network origin for the public access
// endpoints, where every attempt is audited with its source address.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		ip := ctx.RemoteAddr()
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		newCtx := context.WithValue(ctx.Context(), clientIPKey, ip)
		next(huma.WithContext(ctx, newCtx))
	}
}

// ClientIP returns the captured origin, or "unknown" when none was recorded.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok && ip != "" {
		return ip
	}
	return "unknown"
}

// WithClientIP is used by tests to seed a known origin.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}
