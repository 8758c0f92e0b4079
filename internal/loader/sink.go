package loader

import (
	"log/slog"

	"courtside/internal/eventbus"
)

// Sink receives every fetch or parse failure. Failures are never dropped
// silently; a Sink is the minimum channel that makes them visible.
type Sink interface {
	LogFailure(context string, err error)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(context string, err error)

// LogFailure calls f.
func (f SinkFunc) LogFailure(context string, err error) { f(context, err) }

// LogSink writes failures to a slog logger. With a nil Logger it uses
// slog.Default, which is what loaders and panels fall back to when no
// sink was configured.
type LogSink struct {
	Logger *slog.Logger
}

// LogFailure writes one error record.
func (s LogSink) LogFailure(context string, err error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("load failed", "context", context, "error", err)
}

// MultiSink reports to every sink in order.
type MultiSink []Sink

// LogFailure forwards to each non-nil sink.
func (m MultiSink) LogFailure(context string, err error) {
	for _, s := range m {
		if s != nil {
			s.LogFailure(context, err)
		}
	}
}

// BusSink publishes loader activity on the event bus so the UI can show it.
type BusSink struct {
	bus eventbus.EventBus
}

// NewBusSink returns a sink and page observer backed by bus.
func NewBusSink(bus eventbus.EventBus) *BusSink {
	return &BusSink{bus: bus}
}

// LogFailure publishes a LoadFailedEvent.
func (s *BusSink) LogFailure(context string, err error) {
	s.bus.Publish(eventbus.LoadFailedEvent{View: context, Err: err})
}

// ObservePage publishes PageLoaded, or ListExhausted for an empty page.
func (s *BusSink) ObservePage(stats PageStats) {
	if stats.Count == 0 {
		s.bus.Publish(eventbus.ListExhaustedEvent{View: stats.View, Offset: stats.Offset})
		return
	}
	s.bus.Publish(eventbus.PageLoadedEvent{View: stats.View, Count: stats.Count, Offset: stats.Offset})
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stats PageStats)

// ObservePage calls f.
func (f ObserverFunc) ObservePage(stats PageStats) { f(stats) }
