package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageLoaded      EventType = "PageLoaded"
	EventLoadFailed      EventType = "LoadFailed"
	EventListReset       EventType = "ListReset"
	EventListExhausted   EventType = "ListExhausted"
	EventPredictionReady EventType = "PredictionReady"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageLoadedEvent is emitted after a page was appended to a list
type PageLoadedEvent struct {
	View   string
	Count  int
	Offset int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// LoadFailedEvent is emitted when a fetch or parse fails
type LoadFailedEvent struct {
	View string
	Err  error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// ListResetEvent is emitted when a list is cleared for a new query
type ListResetEvent struct {
	View  string
	Query string
}

func (e ListResetEvent) Type() EventType { return EventListReset }

// ListExhaustedEvent is emitted when the data source returns an empty page
type ListExhaustedEvent struct {
	View   string
	Offset int
}

func (e ListExhaustedEvent) Type() EventType { return EventListExhausted }

// PredictionReadyEvent is emitted when a prediction panel was filled
type PredictionReadyEvent struct {
	View string
}

func (e PredictionReadyEvent) Type() EventType { return EventPredictionReady }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	ServerURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
