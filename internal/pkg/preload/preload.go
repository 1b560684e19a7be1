// Package preload warms remote assets (hero images, fonts) before the
// site goes live. Each resource is fetched on its own goroutine and the
// aggregate waits for all of them to settle: one broken asset never
// blocks the readiness report, it just lands in Failed.
package preload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Report is the settled-state aggregate of one Preload call.
type Report struct {
	Total  int
	Loaded int
	Failed map[string]error
}

// AllSettled reports that every fetch resolved, successfully or not.
func (r Report) AllSettled() bool {
	return r.Loaded+len(r.Failed) == r.Total
}

type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Preload fetches every URL concurrently and returns once all have
// settled. Bodies are drained and discarded; warming the CDN/cache is
// the whole point.
func (l *Loader) Preload(ctx context.Context, urls []string) Report {
	report := Report{
		Total:  len(urls),
		Failed: make(map[string]error),
	}
	if len(urls) == 0 {
		return report
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, url := range urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			err := l.fetch(ctx, url)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[url] = err
			} else {
				report.Loaded++
			}
		}(url)
	}

	wg.Wait()
	return report
}

func (l *Loader) fetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	_, err = io.Copy(io.Discard, resp.Body)
	return err
}
