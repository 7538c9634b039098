// Package browser resolves tour step locators against a live web page
// through the Chrome DevTools protocol.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	json "github.com/goccy/go-json"

	"github.com/felixgeelhaar/tourguide/internal/ports"
)

// DefaultTimeout bounds every lookup.
const DefaultTimeout = 5 * time.Second

// Element is a DOM element matched by a CSS selector.
type Element struct {
	selector string
	box      ports.Rect
}

// Locator implements ports.ElementRef.
func (e *Element) Locator() string {
	return e.selector
}

// Options configures a Page.
type Options struct {
	Headless bool
	Timeout  time.Duration
	// ExecPath overrides the Chrome binary; empty means auto-detect.
	ExecPath string
	Logger   ports.Logger
}

// Page is a ports.Document backed by a headless Chrome tab.
type Page struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	timeout     time.Duration
	logger      ports.Logger
}

var _ ports.Document = (*Page)(nil)

// Open starts Chrome and navigates to url. Close releases the browser.
func Open(ctx context.Context, url string, opts Options) (*Page, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	tabCtx, cancel := chromedp.NewContext(allocCtx)

	p := &Page{
		ctx:         tabCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
		timeout:     opts.Timeout,
		logger:      opts.Logger,
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}

	if p.logger != nil {
		chromedp.ListenTarget(tabCtx, func(ev interface{}) {
			if ev, ok := ev.(*runtime.EventExceptionThrown); ok {
				p.logger.Warn(context.Background(), "page exception",
					ports.F("text", ev.ExceptionDetails.Text), ports.F("url", url))
			}
		})
	}

	navCtx, navCancel := context.WithTimeout(tabCtx, 4*p.timeout)
	defer navCancel()
	if err := chromedp.Run(navCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}
	return p, nil
}

// Close shuts the tab and the browser.
func (p *Page) Close() {
	p.cancel()
	p.allocCancel()
}

// measurement is what the lookup script returns.
type measurement struct {
	Found  bool    `json:"found"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

const measureScript = `(() => {
  const el = document.querySelector(%s);
  if (!el) return {found: false};
  const r = el.getBoundingClientRect();
  return {found: true, left: r.left, top: r.top, width: r.width, height: r.height};
})()`

// Measure looks up selector and returns its bounding box.
func (p *Page) Measure(selector string) (ports.Rect, bool, error) {
	if selector == "" {
		return ports.Rect{}, false, errors.New("empty selector")
	}
	quoted, err := json.Marshal(selector)
	if err != nil {
		return ports.Rect{}, false, err
	}

	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()

	var m measurement
	if err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(measureScript, quoted), &m)); err != nil {
		return ports.Rect{}, false, fmt.Errorf("failed to query %s: %w", selector, err)
	}
	if !m.Found {
		return ports.Rect{}, false, nil
	}
	return ports.Rect{Left: m.Left, Top: m.Top, Width: m.Width, Height: m.Height}, true, nil
}

// FindElement implements ports.ElementFinder. Lookup failures count as a
// missing element.
func (p *Page) FindElement(locator string) (ports.ElementRef, bool) {
	box, ok, err := p.Measure(locator)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug(context.Background(), "element lookup failed",
				ports.F("locator", locator), ports.F("error", err))
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &Element{selector: locator, box: box}, true
}

// BoundingBox re-measures the element so the box reflects layout changes
// since it was found.
func (p *Page) BoundingBox(ref ports.ElementRef) (ports.Rect, bool) {
	el, ok := ref.(*Element)
	if !ok || el == nil {
		return ports.Rect{}, false
	}
	box, ok, err := p.Measure(el.selector)
	if err != nil || !ok {
		return ports.Rect{}, false
	}
	el.box = box
	return box, true
}
