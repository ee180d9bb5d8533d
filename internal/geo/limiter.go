package geo

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter ограничивает частоту запросов к внешним картографическим сервисам,
// отдельно для каждого хоста
type Limiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	every rate.Limit
	burst int
}

// NewLimiter создаёт ограничитель; неположительная частота отключает ограничение
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	every := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		every = rate.Inf
	}
	return &Limiter{
		hosts: make(map[string]*rate.Limiter),
		every: every,
		burst: max(burst, 1),
	}
}

// Wait блокируется, пока хост из rawURL не разрешит очередной запрос, или до отмены ctx
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("limiter: invalid upstream url: %w", err)
	}
	return l.forHost(parsed.Host).Wait(ctx)
}

func (l *Limiter) forHost(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.hosts[host]
	if !ok {
		limiter = rate.NewLimiter(l.every, l.burst)
		l.hosts[host] = limiter
	}
	return limiter
}
