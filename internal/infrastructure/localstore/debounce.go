package localstore

import (
	"log"
	"sync"
	"time"

	"tms_gruas/internal/usecase/interfaces"
)

// DefaultDebounce is the autosave delay after the last change.
const DefaultDebounce = 1500 * time.Millisecond

// Debouncer schedules a single pending write per key: every Save cancels the
// previous timer and re-arms it at the configured delay, so only the latest
// snapshot reaches the store. Flush writes the pending snapshot immediately
// (the page-hide/unload path).
type Debouncer struct {
	cache interfaces.IFormCache
	key   string
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending any
	has     bool
}

func NewDebouncer(cache interfaces.IFormCache, key string, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{cache: cache, key: key, delay: delay}
}

// Save records v as the snapshot to persist and restarts the delay window.
func (d *Debouncer) Save(v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = v
	d.has = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	v, has := d.pending, d.has
	d.has = false
	d.mu.Unlock()
	if !has {
		return
	}
	if err := d.cache.Save(d.key, v); err != nil {
		// Storage failures must not interrupt the session; the in-memory
		// state remains the working copy.
		log.Printf("[formcache][debounce] autosave failed key=%s err=%v", d.key, err)
	}
}

// Flush persists any pending snapshot without waiting for the delay.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending write without persisting it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.has = false
	d.pending = nil
}
