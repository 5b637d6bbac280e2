package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow collapses a burst of filesystem events into a single cache
// invalidation.
const debounceWindow = 250 * time.Millisecond

// listingCache memoizes the directory scan until invalidated.
type listingCache struct {
	mu      sync.Mutex
	entries []Entry
	valid   bool
}

func newListingCache() *listingCache {
	return &listingCache{}
}

func (c *listingCache) get(scan func() ([]Entry, error)) ([]Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return c.entries, nil
	}
	entries, err := scan()
	if err != nil {
		return nil, err
	}
	c.entries = entries
	c.valid = true
	return entries, nil
}

func (c *listingCache) invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

// Watch invalidates the listing cache when the patterns directory changes,
// so documents written or removed by other processes still show up in
// listings. Blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch patterns directory: %w", err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, ".pdf") {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, s.cache.invalidate)
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// A missed event is possible after a watch error; drop
			// the cache so the next listing rescans.
			s.cache.invalidate()
		}
	}
}
