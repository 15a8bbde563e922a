package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Registry change event types.
const (
	TypeApplicantAdded   = "applicant.added"
	TypeApplicantEdited  = "applicant.edited"
	TypeApplicantRemoved = "applicant.removed"
	TypeApplicantPinned  = "applicant.pinned"
	TypeRegistrySorted   = "registry.sorted"
	TypeRegistryCleared  = "registry.cleared"
	TypeRegistryReset    = "registry.reset"
)

// RegistryChangedEvent announces that the registry was changed.
// It carries the serialized registry as it stood after the change, so that
// handlers never need to read the registry themselves.
type RegistryChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type names the operation that changed the registry
	Type string `json:"type"`

	// Document is the serialized registry after the change
	Document []byte `json:"-"`

	// ApplicantCount is the number of applicants after the change
	ApplicantCount int `json:"applicant_count"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistryChangedEvent creates a new RegistryChangedEvent.
func NewRegistryChangedEvent(eventType string, document []byte, applicantCount int) *RegistryChangedEvent {
	return &RegistryChangedEvent{
		ID:             uuid.New(),
		Type:           eventType,
		Document:       document,
		ApplicantCount: applicantCount,
		CreatedAt:      time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RegistryChangedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *RegistryChangedEvent) error
}
