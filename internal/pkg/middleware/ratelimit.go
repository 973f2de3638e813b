package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"gestao/internal/domain"
	"gestao/internal/pkg/cache"
	"gestao/internal/pkg/logger"
	"gestao/internal/pkg/response"
)

// RateLimiter limita requisições por IP usando um contador no cache com janela fixa.
// Se o cache falhar a requisição segue normalmente.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil || limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cache.RateLimitKey(clientIP(r))
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			switch {
			case err == cache.ErrCacheMiss:
				if setErr := client.Set(ctx, key, 1, window); setErr != nil {
					log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{"error": setErr.Error()})
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			case err != nil:
				log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				_ = response.JSON(w, http.StatusTooManyRequests, domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido. Tente novamente mais tarde.",
				})
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Warn("Falha ao incrementar contador de rate limit.", map[string]interface{}{"error": err.Error()})
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
