package jsonstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/phrazzld/trackascholar/internal/platform/logger"
)

// DocumentWriter persists a serialized registry.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, data []byte) error
}

// AutosaveHandler writes the registry snapshot carried by every
// RegistryChangedEvent to storage.
type AutosaveHandler struct {
	writer DocumentWriter
	logger *slog.Logger
}

// NewAutosaveHandler creates an AutosaveHandler writing through writer.
func NewAutosaveHandler(writer DocumentWriter, logger *slog.Logger) *AutosaveHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutosaveHandler{
		writer: writer,
		logger: logger.With(slog.String("component", "autosave")),
	}
}

var _ events.EventHandler = (*AutosaveHandler)(nil)

// HandleEvent implements events.EventHandler.
func (h *AutosaveHandler) HandleEvent(ctx context.Context, event *events.RegistryChangedEvent) error {
	log := logger.FromContextOrDefault(ctx, h.logger)

	if len(event.Document) == 0 {
		return fmt.Errorf("%w: event %s carries no document", ErrMalformedDocument, event.ID)
	}

	if err := h.writer.WriteDocument(ctx, event.Document); err != nil {
		return fmt.Errorf("autosave after %s failed: %w", event.Type, err)
	}

	log.Debug("registry autosaved",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int("applicant_count", event.ApplicantCount))
	return nil
}
