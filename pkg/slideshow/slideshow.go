// Package slideshow drives the full-screen viewer: which visible item is
// showing and the timer that advances it.
package slideshow

import (
	"sync"
	"time"

	"tableflip.dev/album/pkg/media"
	"tableflip.dev/album/pkg/view"
)

// DefaultInterval is how long each item shows before the next one.
const DefaultInterval = 4 * time.Second

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

// Clock schedules the advance timer.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Controller is either closed or open at an index into the visible list.
// While open, it advances every Interval. Navigation, resizing and closing
// restart the timer; fires from a replaced timer are ignored.
type Controller struct {
	Interval time.Duration
	Clock    Clock
	// OnAdvance is called, outside the lock, after a timed advance.
	OnAdvance func(index int)

	mu     sync.Mutex
	open   bool
	index  int
	length int
	gen    uint64
	timer  Timer
}

// New returns a closed Controller. A non-positive interval uses
// DefaultInterval.
func New(interval time.Duration) *Controller {
	return &Controller{Interval: interval}
}

func (c *Controller) clock() Clock {
	if c.Clock == nil {
		return realClock{}
	}
	return c.Clock
}

func (c *Controller) interval() time.Duration {
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return c.Interval
}

// Open shows the item with id from visible. An unknown id leaves the
// controller as it was.
func (c *Controller) Open(visible []media.Item, id string) bool {
	idx := view.IndexOf(visible, id)
	if idx < 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.index = idx
	c.length = len(visible)
	c.restartLocked()
	return true
}

// Close stops the slideshow.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = false
	c.index = 0
	c.stopLocked()
}

// Next moves forward one item, wrapping to the start.
func (c *Controller) Next(n int) {
	c.step(n, 1)
}

// Prev moves back one item, wrapping to the end.
func (c *Controller) Prev(n int) {
	c.step(n, -1)
}

func (c *Controller) step(n, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return
	}
	c.length = n
	if n == 0 {
		c.stopLocked()
		return
	}
	c.index = ((c.index+delta)%n + n) % n
	c.restartLocked()
}

// Resize records a new visible list length and restarts the timer. The
// index is kept even when it now falls outside the list; Current reports
// that as closed.
func (c *Controller) Resize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || n == c.length {
		return
	}
	c.length = n
	if n == 0 {
		c.stopLocked()
		return
	}
	c.restartLocked()
}

// Index returns the open index.
func (c *Controller) Index() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index, c.open
}

// IsOpen reports whether the slideshow is showing.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Current resolves the showing item against visible.
func (c *Controller) Current(visible []media.Item) (media.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.index < 0 || c.index >= len(visible) {
		return media.Item{}, false
	}
	return visible[c.index], true
}

func (c *Controller) stopLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) restartLocked() {
	c.stopLocked()
	gen := c.gen
	c.timer = c.clock().AfterFunc(c.interval(), func() {
		c.fire(gen)
	})
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.open || c.length == 0 {
		c.mu.Unlock()
		return
	}
	c.index = (c.index + 1) % c.length
	idx := c.index
	c.restartLocked()
	cb := c.OnAdvance
	c.mu.Unlock()

	if cb != nil {
		cb(idx)
	}
}
