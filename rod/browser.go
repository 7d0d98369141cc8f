package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// instance is one Chrome process and the pages currently open in it.
type instance struct {
	browser  *rod.Browser
	shutdown func() error
	inflight int
	retired  bool
}

// browser owns a headless Chrome process and replaces it after maxPages
// pages, since Chrome's memory use keeps growing over a long batch. A
// replaced process is shut down once its last page is released.
type browser struct {
	launch   func() (*instance, error)
	maxPages int

	mu        sync.Mutex
	current   *instance
	pages     int
	launching bool
}

func newBrowser(maxPages int) (*browser, error) {
	b := &browser{launch: launchChrome, maxPages: maxPages}
	inst, err := b.launch()
	if err != nil {
		return nil, err
	}
	b.current = inst
	return b, nil
}

// acquire returns the browser to open the next page in. When the page
// budget is spent it first launches a replacement; the launch runs without
// the lock, and pages acquired meanwhile keep using the old browser. The
// caller must call release when the page is closed.
func (b *browser) acquire() (*rod.Browser, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil, nil, fmt.Errorf("browser is closed")
	}

	if b.maxPages > 0 && b.pages >= b.maxPages && !b.launching {
		b.launching = true
		b.mu.Unlock()
		next, err := b.launch()
		b.mu.Lock()
		b.launching = false

		if b.current == nil {
			if err == nil {
				_ = next.shutdown()
			}
			return nil, nil, fmt.Errorf("browser is closed")
		}
		// A failed launch keeps the old browser; the next acquire retries.
		if err == nil {
			b.replace(next)
		}
	}

	b.pages++
	inst := b.current
	inst.inflight++
	return inst.browser, func() { b.release(inst) }, nil
}

func (b *browser) release(inst *instance) {
	b.mu.Lock()
	defer b.mu.Unlock()

	inst.inflight--
	if inst.retired && inst.inflight == 0 {
		_ = inst.shutdown()
	}
}

// replace retires the current browser in favor of next. Must be called
// with mu held.
func (b *browser) replace(next *instance) {
	old := b.current
	b.current = next
	b.pages = 0

	old.retired = true
	if old.inflight == 0 {
		_ = old.shutdown()
	}
}

func (b *browser) close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}
	err := b.current.shutdown()
	b.current = nil
	return err
}

func launchChrome() (*instance, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	br := rod.New().ControlURL(u)
	if err := br.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &instance{
		browser: br,
		shutdown: func() error {
			err := br.Close()
			l.Kill()
			return err
		},
	}, nil
}
