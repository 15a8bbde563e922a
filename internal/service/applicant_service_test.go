package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/phrazzld/trackascholar/internal/platform/jsonstore"
	"github.com/phrazzld/trackascholar/internal/service"
	"github.com/phrazzld/trackascholar/internal/store"
	"github.com/phrazzld/trackascholar/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventEmitter is a mock implementation of events.EventEmitter
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.RegistryChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func ptr[T any](v T) *T {
	return &v
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *events.RegistryChangedEvent) bool {
		return e.Type == eventType && len(e.Document) > 0
	})
}

// newTestService returns a service over the typical registry and the mock
// emitter it reports to.
func newTestService(t *testing.T) (service.ApplicantService, *store.Registry, *MockEventEmitter) {
	t.Helper()

	registry := testutils.NewTypicalRegistry(t)
	emitter := &MockEventEmitter{}
	svc, err := service.NewApplicantService(registry, jsonstore.Serialize, emitter, nil)
	require.NoError(t, err)
	return svc, registry, emitter
}

func TestNewApplicantService(t *testing.T) {
	t.Parallel()

	emitter := &MockEventEmitter{}
	registry := store.NewRegistry()

	_, err := service.NewApplicantService(nil, jsonstore.Serialize, emitter, nil)
	assert.Error(t, err)
	_, err = service.NewApplicantService(registry, nil, emitter, nil)
	assert.Error(t, err)
	_, err = service.NewApplicantService(registry, jsonstore.Serialize, nil, nil)
	assert.Error(t, err)

	svc, err := service.NewApplicantService(registry, jsonstore.Serialize, events.NopEmitter{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestApplicantService_Add(t *testing.T) {
	t.Parallel()

	t.Run("valid applicant", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.RegistryChangedEvent) bool {
			return e.Type == events.TypeApplicantAdded && e.ApplicantCount == 6
		})).Return(nil).Once()

		entry, err := svc.Add(context.Background(), domain.ApplicantFields{
			Name:              "Fiona Kunz",
			Phone:             "9482427",
			Email:             "lydia@example.com",
			Scholarship:       "Science",
			ApplicationStatus: "Pending",
		})
		require.NoError(t, err)
		a := entry.Applicant
		assert.Equal(t, 6, entry.Index)
		assert.Equal(t, "pending", a.ApplicationStatus().String())
		assert.Equal(t, 6, registry.Len())
		assert.True(t, registry.HasApplicant(a))
		emitter.AssertExpectations(t)
	})

	t.Run("invalid field", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)

		_, err := svc.Add(context.Background(), domain.ApplicantFields{
			Name:              "Fiona Kunz",
			Phone:             "12",
			Email:             "lydia@example.com",
			Scholarship:       "Science",
			ApplicationStatus: "pending",
		})

		var fieldErr *domain.InvalidFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, domain.PhoneConstraints, fieldErr.Message)
		assert.Equal(t, 5, registry.Len())
		emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)

		_, err := svc.Add(context.Background(), domain.ApplicantFields{
			Name:              "Alice Pauline",
			Phone:             "999",
			Email:             "other@example.com",
			Scholarship:       "Other",
			ApplicationStatus: "rejected",
		})
		assert.ErrorIs(t, err, store.ErrDuplicateApplicant)
		assert.Equal(t, 5, registry.Len())
		emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
	})

	t.Run("emit failure keeps change and reports save failure", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := svc.Add(context.Background(), domain.ApplicantFields{
			Name:              "Fiona Kunz",
			Phone:             "9482427",
			Email:             "lydia@example.com",
			Scholarship:       "Science",
			ApplicationStatus: "pending",
		})
		assert.ErrorIs(t, err, service.ErrSaveFailed)
		assert.Equal(t, 6, registry.Len())
	})
}

func TestApplicantService_Edit(t *testing.T) {
	t.Parallel()

	t.Run("changes named fields only", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		emitter.On("EmitEvent", mock.Anything, eventOfType(events.TypeApplicantEdited)).Return(nil).Once()

		edited, err := svc.Edit(context.Background(), 2, service.ApplicantPatch{
			ApplicationStatus: ptr("accepted"),
			Majors:            ptr([]string{"Physics"}),
		})
		require.NoError(t, err)

		assert.Equal(t, "Benson Meier", edited.Name().String())
		assert.Equal(t, "accepted", edited.ApplicationStatus().String())
		require.Len(t, edited.Majors(), 1)
		assert.Equal(t, "Physics", edited.Majors()[0].String())
		assert.Same(t, edited, registry.Applicants().At(1))
		emitter.AssertExpectations(t)
	})

	t.Run("keeps pinned flag", func(t *testing.T) {
		t.Parallel()

		svc, _, emitter := newTestService(t)
		emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.SetPinned(context.Background(), 1, true)
		require.NoError(t, err)
		edited, err := svc.Edit(context.Background(), 1, service.ApplicantPatch{Phone: ptr("123")})
		require.NoError(t, err)
		assert.True(t, edited.IsPinned())
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		before := registry.Applicants().At(0)

		_, err := svc.Edit(context.Background(), 1, service.ApplicantPatch{Name: ptr("Carl Kurz")})
		assert.ErrorIs(t, err, store.ErrDuplicateApplicant)
		assert.Same(t, before, registry.Applicants().At(0))
		emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
	})

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		_, err := svc.Edit(context.Background(), 1, service.ApplicantPatch{})
		assert.ErrorIs(t, err, service.ErrNothingToEdit)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		_, err := svc.Edit(context.Background(), 1, service.ApplicantPatch{Email: ptr("not-an-email")})
		assert.ErrorIs(t, err, domain.ErrInvalidField)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		for _, index := range []int{0, -1, 6} {
			_, err := svc.Edit(context.Background(), index, service.ApplicantPatch{Phone: ptr("123")})
			assert.ErrorIs(t, err, service.ErrInvalidIndex, "index %d", index)
		}
	})
}

func TestApplicantService_Remove(t *testing.T) {
	t.Parallel()

	svc, registry, emitter := newTestService(t)
	emitter.On("EmitEvent", mock.Anything, eventOfType(events.TypeApplicantRemoved)).Return(nil).Once()

	removed, err := svc.Remove(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Carl Kurz", removed.Name().String())
	assert.False(t, registry.HasApplicant(removed))
	assert.Equal(t, 4, registry.Len())

	_, err = svc.Remove(context.Background(), 5)
	assert.ErrorIs(t, err, service.ErrInvalidIndex)
	emitter.AssertExpectations(t)
}

func TestApplicantService_SetPinned(t *testing.T) {
	t.Parallel()

	svc, _, emitter := newTestService(t)
	emitter.On("EmitEvent", mock.Anything, eventOfType(events.TypeApplicantPinned)).Return(nil).Twice()

	_, err := svc.SetPinned(context.Background(), 4, true)
	require.NoError(t, err)

	pinned := svc.List(context.Background(), domain.IsPinned)
	require.Len(t, pinned, 1)
	assert.Equal(t, 4, pinned[0].Index)
	assert.Equal(t, "Daniel Meier", pinned[0].Applicant.Name().String())

	_, err = svc.SetPinned(context.Background(), 4, false)
	require.NoError(t, err)
	assert.Empty(t, svc.List(context.Background(), domain.IsPinned))
	emitter.AssertExpectations(t)
}

func TestApplicantService_List(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	all := svc.List(context.Background(), nil)
	assert.Len(t, all, 5)

	pending := svc.List(context.Background(), domain.NewApplicationStatusPredicate("pending"))
	require.Len(t, pending, 2)
	assert.Equal(t, 2, pending[0].Index)
	assert.Equal(t, "Benson Meier", pending[0].Applicant.Name().String())
	assert.Equal(t, 4, pending[1].Index)
	assert.Equal(t, "Daniel Meier", pending[1].Applicant.Name().String())
}

func TestApplicantService_Sort(t *testing.T) {
	t.Parallel()

	svc, _, emitter := newTestService(t)
	emitter.On("EmitEvent", mock.Anything, eventOfType(events.TypeRegistrySorted)).Return(nil).Once()

	require.NoError(t, svc.Sort(context.Background(), domain.SortByStatus()))

	assert.Equal(t,
		[]string{"Benson Meier", "Daniel Meier", "Alice Pauline", "Elle Meyer", "Carl Kurz"},
		testutils.Names(svc.Applicants(context.Background()).Slice()))
	assert.Error(t, svc.Sort(context.Background(), nil))
	emitter.AssertExpectations(t)
}

func TestApplicantService_Clear(t *testing.T) {
	t.Parallel()

	svc, registry, emitter := newTestService(t)
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.RegistryChangedEvent) bool {
		return e.Type == events.TypeRegistryCleared && e.ApplicantCount == 0
	})).Return(nil).Once()

	require.NoError(t, svc.Clear(context.Background()))
	assert.Equal(t, 0, registry.Len())
	emitter.AssertExpectations(t)
}

func TestApplicantService_Replace(t *testing.T) {
	t.Parallel()

	t.Run("swaps contents", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		emitter.On("EmitEvent", mock.Anything, eventOfType(events.TypeRegistryReset)).Return(nil).Once()

		source := store.NewRegistry()
		require.NoError(t, source.Add(testutils.MustCreateApplicantForTest(t)))

		require.NoError(t, svc.Replace(context.Background(), source))
		assert.Equal(t, []string{testutils.DefaultName}, testutils.Names(registry.Applicants().Slice()))
		emitter.AssertExpectations(t)
	})

	t.Run("duplicate source leaves registry untouched", func(t *testing.T) {
		t.Parallel()

		svc, registry, emitter := newTestService(t)
		before := testutils.Names(registry.Applicants().Slice())

		a := testutils.MustCreateApplicantForTest(t)
		source := duplicateSource{a, a.WithPinned(true)}

		err := svc.Replace(context.Background(), source)
		assert.ErrorIs(t, err, store.ErrDuplicateApplicant)
		assert.Equal(t, before, testutils.Names(registry.Applicants().Slice()))
		emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
	})
}

// duplicateSource is a ReadOnlyRegistry that does not enforce uniqueness.
type duplicateSource []*domain.Applicant

func (d duplicateSource) Applicants() store.ApplicantList {
	return store.NewApplicantList(d)
}
