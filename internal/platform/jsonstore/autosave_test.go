package jsonstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/phrazzld/trackascholar/internal/platform/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written [][]byte
	err     error
}

func (w *recordingWriter) WriteDocument(_ context.Context, data []byte) error {
	if w.err != nil {
		return w.err
	}
	w.written = append(w.written, data)
	return nil
}

func TestAutosaveHandler(t *testing.T) {
	t.Parallel()

	t.Run("writes event document", func(t *testing.T) {
		t.Parallel()

		w := &recordingWriter{}
		h := jsonstore.NewAutosaveHandler(w, nil)
		doc := []byte(`{"applicants":[]}`)

		err := h.HandleEvent(context.Background(),
			events.NewRegistryChangedEvent(events.TypeRegistryCleared, doc, 0))
		require.NoError(t, err)
		require.Len(t, w.written, 1)
		assert.Equal(t, doc, w.written[0])
	})

	t.Run("rejects event without document", func(t *testing.T) {
		t.Parallel()

		w := &recordingWriter{}
		h := jsonstore.NewAutosaveHandler(w, nil)

		err := h.HandleEvent(context.Background(),
			events.NewRegistryChangedEvent(events.TypeApplicantAdded, nil, 1))
		assert.ErrorIs(t, err, jsonstore.ErrMalformedDocument)
		assert.Empty(t, w.written)
	})

	t.Run("propagates writer error", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("disk full")
		h := jsonstore.NewAutosaveHandler(&recordingWriter{err: writeErr}, nil)

		err := h.HandleEvent(context.Background(),
			events.NewRegistryChangedEvent(events.TypeApplicantAdded, []byte(`{}`), 1))
		assert.ErrorIs(t, err, writeErr)
		assert.Contains(t, err.Error(), events.TypeApplicantAdded)
	})
}
