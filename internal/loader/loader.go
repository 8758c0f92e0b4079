// Package loader implements incremental, single-flight list paging.
//
// A Loader owns an offset and a query filter. Each trigger asks a Fetcher for
// the next page, renders every item in the order received and appends the
// rows to a Mount. At most one page request is in flight per Loader; a
// trigger issued while loading is dropped before any I/O starts.
//
// Triggering is split so that it can run on a single-threaded UI loop:
//
//	pending, ok := l.Begin()      // synchronous guard and state change
//	res := pending.Run(ctx)       // the fetch, safe on any goroutine
//	l.Complete(res)               // apply the page back on the loop
//
// Trigger runs the three steps inline.
//
// Offsets assume an append-stable source: if the collection changes between
// pages, items can be skipped or repeated. Rows are not deduplicated by key.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTimeout bounds a single page request.
const DefaultTimeout = 10 * time.Second

// Fetcher returns the page of items that follows offset for query.
// An empty page means the source has nothing more to give.
type Fetcher[T any] func(ctx context.Context, offset int, query string) ([]T, error)

// RenderFunc turns one item into a row for the mount point.
type RenderFunc[T, R any] func(item T) R

// Mount is where rendered rows end up.
type Mount[R any] interface {
	Append(rows ...R)
	Clear()
}

// Labels are the footer texts shown for each loader state.
type Labels struct {
	Idle      string
	Loading   string
	Exhausted string
}

// DefaultLabels are used for any label left empty in Options.
var DefaultLabels = Labels{
	Idle:      "Load More",
	Loading:   "Loading...",
	Exhausted: "No more items",
}

// State is a snapshot of the paging cursor.
type State struct {
	Offset    int
	Query     string
	IsLoading bool
	Exhausted bool
}

// PageStats describes one applied page.
type PageStats struct {
	View    string
	Count   int
	Offset  int
	Elapsed time.Duration
}

// Observer is told about every page that reaches the mount.
type Observer interface {
	ObservePage(stats PageStats)
}

// Options configures a Loader.
type Options struct {
	// Name identifies the loader in failure reports and metrics.
	Name          string
	InitialOffset int
	InitialQuery  string
	Timeout       time.Duration
	Labels        Labels
	// Sink defaults to a LogSink on slog.Default.
	Sink      Sink
	Observers []Observer
}

// Loader pages through a data source and appends rendered rows to a mount.
type Loader[T, R any] struct {
	mu sync.Mutex

	name      string
	fetch     Fetcher[T]
	render    RenderFunc[T, R]
	mount     Mount[R]
	sink      Sink
	observers []Observer
	timeout   time.Duration
	labels    Labels

	state      State
	label      string
	lastErr    error
	generation uint64
	detached   bool
}

// New creates a Loader. fetch, render and mount are required.
func New[T, R any](fetch Fetcher[T], render RenderFunc[T, R], mount Mount[R], opts Options) (*Loader[T, R], error) {
	if fetch == nil || render == nil || mount == nil {
		return nil, errors.New("loader: fetch, render and mount are required")
	}
	if opts.InitialOffset < 0 {
		return nil, fmt.Errorf("loader: initial offset must not be negative, got %d", opts.InitialOffset)
	}

	labels := opts.Labels
	if labels.Idle == "" {
		labels.Idle = DefaultLabels.Idle
	}
	if labels.Loading == "" {
		labels.Loading = DefaultLabels.Loading
	}
	if labels.Exhausted == "" {
		labels.Exhausted = DefaultLabels.Exhausted
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	sink := opts.Sink
	if sink == nil {
		sink = LogSink{}
	}

	return &Loader[T, R]{
		name:      opts.Name,
		fetch:     fetch,
		render:    render,
		mount:     mount,
		sink:      sink,
		observers: opts.Observers,
		timeout:   timeout,
		labels:    labels,
		state: State{
			Offset: opts.InitialOffset,
			Query:  opts.InitialQuery,
		},
		label: labels.Idle,
	}, nil
}

// Pending is a page request that passed the single-flight guard.
type Pending[T any] struct {
	fetch      Fetcher[T]
	offset     int
	query      string
	generation uint64
	timeout    time.Duration
}

// Result is the outcome of a Pending request.
type Result[T any] struct {
	Offset     int
	Query      string
	Items      []T
	Err        error
	Elapsed    time.Duration
	generation uint64
}

// Run performs the fetch under the request timeout. It does not touch the
// loader, so it can run on any goroutine.
func (p Pending[T]) Run(ctx context.Context) Result[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	items, err := p.fetch(ctx, p.offset, p.query)
	return Result[T]{
		Offset:     p.offset,
		Query:      p.query,
		Items:      items,
		Err:        err,
		Elapsed:    time.Since(start),
		generation: p.generation,
	}
}

// Begin checks the guard and marks the loader busy. It returns false, and
// changes nothing, while a request is in flight, after the source ran dry,
// or once the loader is detached.
func (l *Loader[T, R]) Begin() (Pending[T], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.IsLoading || l.state.Exhausted || l.detached {
		return Pending[T]{}, false
	}

	l.state.IsLoading = true
	l.label = l.labels.Loading

	return Pending[T]{
		fetch:      l.fetch,
		offset:     l.state.Offset,
		query:      l.state.Query,
		generation: l.generation,
		timeout:    l.timeout,
	}, true
}

// Complete applies a finished request. It reports whether the result was
// applied; results from before the last Reset, and anything arriving after
// Detach, are dropped.
func (l *Loader[T, R]) Complete(res Result[T]) bool {
	l.mu.Lock()

	if res.generation != l.generation {
		l.mu.Unlock()
		return false
	}

	l.state.IsLoading = false
	l.label = l.labels.Idle

	if l.detached {
		l.mu.Unlock()
		return false
	}

	if res.Err != nil {
		l.lastErr = res.Err
		l.mu.Unlock()
		l.sink.LogFailure(l.name, res.Err)
		return true
	}

	rows := make([]R, 0, len(res.Items))
	for _, item := range res.Items {
		rows = append(rows, l.render(item))
	}
	if len(rows) > 0 {
		l.mount.Append(rows...)
	}

	l.state.Offset += len(res.Items)
	l.lastErr = nil
	if len(res.Items) == 0 {
		l.state.Exhausted = true
		l.label = l.labels.Exhausted
	}

	stats := PageStats{
		View:    l.name,
		Count:   len(res.Items),
		Offset:  l.state.Offset,
		Elapsed: res.Elapsed,
	}
	l.mu.Unlock()

	for _, o := range l.observers {
		o.ObservePage(stats)
	}
	return true
}

// Trigger loads the next page inline. It returns false if the guard
// suppressed the request.
func (l *Loader[T, R]) Trigger(ctx context.Context) bool {
	pending, ok := l.Begin()
	if !ok {
		return false
	}
	l.Complete(pending.Run(ctx))
	return true
}

// Reset starts over with a new query: offset zero, no rows, no error. A
// request still in flight is orphaned and its page will be dropped.
func (l *Loader[T, R]) Reset(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.state = State{Query: query}
	l.label = l.labels.Idle
	l.lastErr = nil

	if !l.detached {
		l.mount.Clear()
	}
}

// Detach marks the view as gone. Later completions never reach the mount.
func (l *Loader[T, R]) Detach() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.detached = true
}

// State returns a snapshot of the cursor.
func (l *Loader[T, R]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Label is the footer text for the current state.
func (l *Loader[T, R]) Label() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.label
}

// Err is the failure of the last completed request, if it failed.
func (l *Loader[T, R]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Name returns the loader's report name.
func (l *Loader[T, R]) Name() string {
	return l.name
}
