package loader

import "sync"

// Rows is an in-memory Mount that keeps rows in append order.
type Rows[R any] struct {
	mu   sync.RWMutex
	rows []R
}

// NewRows returns a mount seeded with initial rows, typically the ones a
// view already shows before the first page request.
func NewRows[R any](initial ...R) *Rows[R] {
	r := &Rows[R]{}
	r.rows = append(r.rows, initial...)
	return r
}

// Append adds rows at the end.
func (r *Rows[R]) Append(rows ...R) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
}

// Clear drops every row.
func (r *Rows[R]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
}

// Len returns the number of rows.
func (r *Rows[R]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// Snapshot returns a copy of the rows.
func (r *Rows[R]) Snapshot() []R {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]R, len(r.rows))
	copy(out, r.rows)
	return out
}
