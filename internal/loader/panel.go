package loader

import (
	"context"
	"sync"
	"time"
)

// Panel holds the result of a single detail request, such as a game
// prediction. It shares the Loader's single-flight guard and failure sink
// but replaces its value instead of appending.
type Panel[T any] struct {
	mu sync.Mutex

	name      string
	sink      Sink
	observers []Observer
	timeout   time.Duration
	errorText string

	loading    bool
	value      T
	hasValue   bool
	lastErr    error
	generation uint64
	detached   bool
}

// PanelOptions configures a Panel.
type PanelOptions struct {
	Name string
	// ErrorText is what the user sees when a request fails.
	ErrorText string
	Timeout   time.Duration
	Sink      Sink
	// Observers see each successful request as a one-item page.
	Observers []Observer
}

// NewPanel creates an empty panel.
func NewPanel[T any](opts PanelOptions) *Panel[T] {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	sink := opts.Sink
	if sink == nil {
		sink = LogSink{}
	}
	errorText := opts.ErrorText
	if errorText == "" {
		errorText = "Sorry, something went wrong."
	}
	return &Panel[T]{
		name:      opts.Name,
		sink:      sink,
		observers: opts.Observers,
		timeout:   timeout,
		errorText: errorText,
	}
}

// PanelRequest fetches the value for a panel.
type PanelRequest[T any] func(ctx context.Context) (T, error)

// PanelPending is a panel request that passed the guard.
type PanelPending[T any] struct {
	fetch      PanelRequest[T]
	generation uint64
	timeout    time.Duration
}

// PanelResult is the outcome of a PanelPending request.
type PanelResult[T any] struct {
	Value      T
	Err        error
	Elapsed    time.Duration
	generation uint64
}

// Run performs the request under the panel timeout.
func (p PanelPending[T]) Run(ctx context.Context) PanelResult[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	v, err := p.fetch(ctx)
	return PanelResult[T]{Value: v, Err: err, Elapsed: time.Since(start), generation: p.generation}
}

// Begin clears the previous output and marks the panel busy. It returns
// false while a request is already in flight or after Detach.
func (p *Panel[T]) Begin(fetch PanelRequest[T]) (PanelPending[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loading || p.detached || fetch == nil {
		return PanelPending[T]{}, false
	}

	var zero T
	p.loading = true
	p.value = zero
	p.hasValue = false
	p.lastErr = nil

	return PanelPending[T]{fetch: fetch, generation: p.generation, timeout: p.timeout}, true
}

// Complete stores the value or the failure. It reports whether the result
// was applied.
func (p *Panel[T]) Complete(res PanelResult[T]) bool {
	p.mu.Lock()

	if res.generation != p.generation {
		p.mu.Unlock()
		return false
	}
	p.loading = false
	if p.detached {
		p.mu.Unlock()
		return false
	}

	if res.Err != nil {
		p.lastErr = res.Err
		p.mu.Unlock()
		p.sink.LogFailure(p.name, res.Err)
		return true
	}

	p.value = res.Value
	p.hasValue = true
	p.mu.Unlock()

	for _, o := range p.observers {
		o.ObservePage(PageStats{View: p.name, Count: 1, Elapsed: res.Elapsed})
	}
	return true
}

// Fetch runs a request inline. It returns false if the guard suppressed it.
func (p *Panel[T]) Fetch(ctx context.Context, fetch PanelRequest[T]) bool {
	pending, ok := p.Begin(fetch)
	if !ok {
		return false
	}
	p.Complete(pending.Run(ctx))
	return true
}

// Clear empties the panel and orphans any request in flight.
func (p *Panel[T]) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	p.generation++
	p.loading = false
	p.value = zero
	p.hasValue = false
	p.lastErr = nil
}

// Detach drops every later completion.
func (p *Panel[T]) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detached = true
}

// Value returns the last successful value.
func (p *Panel[T]) Value() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.hasValue
}

// Loading reports whether a request is in flight.
func (p *Panel[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Err is the failure of the last request, if it failed.
func (p *Panel[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// ErrorText is the user-facing message when Err is set, or "".
func (p *Panel[T]) ErrorText() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastErr == nil {
		return ""
	}
	return p.errorText
}

// Name returns the panel's report name.
func (p *Panel[T]) Name() string {
	return p.name
}
