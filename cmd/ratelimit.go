package main

import (
	"net"
	"net/http"
	"time"
)

type rateLimitProfile struct {
	points        int
	window        time.Duration
	blockDuration time.Duration
	unlimited     bool
}

func profileForMode(mode string) rateLimitProfile {
	switch mode {
	case "test":
		return rateLimitProfile{unlimited: true}
	case "development":
		return rateLimitProfile{points: 1000, window: 15 * time.Minute, blockDuration: 10 * time.Second}
	default:
		return rateLimitProfile{points: 100, window: 15 * time.Minute, blockDuration: 60 * time.Second}
	}
}

// rateLimit is a fixed-window per-IP limiter backed by Redis. Health checks
// and requests carrying the test bypass header are never counted. Redis
// failures fail open so a cache outage cannot take the API down.
func (app *application) rateLimit(next http.Handler) http.Handler {
	profile := profileForMode(app.cfg.RateLimit.Mode)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if profile.unlimited || r.URL.Path == "/health" || r.Header.Get("X-Test-Token") != "" {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		ctx := r.Context()
		blockKey := "ratelimit:block:" + ip
		if blocked, err := app.redis.Exists(ctx, blockKey).Result(); err == nil && blocked > 0 {
			w.Header().Set("Retry-After", profile.blockDuration.String())
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		countKey := "ratelimit:count:" + ip
		count, err := app.redis.Incr(ctx, countKey).Result()
		if err != nil {
			app.errorLog.Printf("rate limiter unavailable: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			app.redis.Expire(ctx, countKey, profile.window)
		}
		if count > int64(profile.points) {
			app.redis.Set(ctx, blockKey, 1, profile.blockDuration)
			w.Header().Set("Retry-After", profile.blockDuration.String())
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
