package keepalive

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Pinger issues one GET against a target URL on a fixed interval, to keep
// free-tier hosting from idling the process out. Failures are logged and
// swallowed; there is no retry before the next tick.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
}

func New(url string, interval time.Duration) *Pinger {
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Run blocks until ctx is cancelled. Call it from its own goroutine.
func (p *Pinger) Run(ctx context.Context) {
	log.Printf("keep-alive: pinging %s every %s", p.url, p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		log.Printf("keep-alive: building request: %v", err)
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("keep-alive: ping failed: %v", err)
		return
	}
	resp.Body.Close()

	log.Printf("keep-alive: pinged %s (%d)", p.url, resp.StatusCode)
}
