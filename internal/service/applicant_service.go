package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/phrazzld/trackascholar/internal/platform/logger"
	"github.com/phrazzld/trackascholar/internal/store"
)

// DocumentEncoder renders a registry as the document carried by change events.
type DocumentEncoder func(r store.ReadOnlyRegistry) ([]byte, error)

// ApplicantPatch lists the fields an edit changes. Nil fields keep their
// current value; a non-nil Majors replaces the whole major set.
type ApplicantPatch struct {
	Name              *string
	Phone             *string
	Email             *string
	Scholarship       *string
	ApplicationStatus *string
	Majors            *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p ApplicantPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil &&
		p.Scholarship == nil && p.ApplicationStatus == nil && p.Majors == nil
}

// Entry is an applicant together with its one-based index in the registry.
type Entry struct {
	Index     int
	Applicant *domain.Applicant
}

// ApplicantService provides applicant-related operations.
//
// Indexes are one-based positions in the full registry order, as returned
// by Applicants.
type ApplicantService interface {
	// Applicants returns a snapshot of the registry in its current order
	Applicants(ctx context.Context) store.ApplicantList

	// List returns, in registry order, the applicants matching p
	List(ctx context.Context, p domain.Predicate) []Entry

	// Add validates fields and appends the resulting applicant
	Add(ctx context.Context, fields domain.ApplicantFields) (Entry, error)

	// Edit applies patch to the applicant at index and returns the edited applicant
	Edit(ctx context.Context, index int, patch ApplicantPatch) (*domain.Applicant, error)

	// Remove deletes the applicant at index and returns it
	Remove(ctx context.Context, index int) (*domain.Applicant, error)

	// SetPinned pins or unpins the applicant at index
	SetPinned(ctx context.Context, index int, pinned bool) (*domain.Applicant, error)

	// Sort reorders the registry with cmp
	Sort(ctx context.Context, cmp domain.Comparator) error

	// Clear removes every applicant
	Clear(ctx context.Context) error

	// Replace swaps the registry contents for those of source. On error the
	// registry keeps its prior contents.
	Replace(ctx context.Context, source store.ReadOnlyRegistry) error
}

// applicantServiceImpl implements the ApplicantService interface
type applicantServiceImpl struct {
	mu           sync.Mutex
	registry     *store.Registry
	encode       DocumentEncoder
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewApplicantService creates a new ApplicantService owning registry.
// It returns an error if any of the required dependencies are nil.
func NewApplicantService(
	registry *store.Registry,
	encode DocumentEncoder,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (ApplicantService, error) {
	if registry == nil {
		return nil, &ApplicantServiceError{
			Operation: "create_service",
			Message:   "registry cannot be nil",
		}
	}
	if encode == nil {
		return nil, &ApplicantServiceError{
			Operation: "create_service",
			Message:   "encode cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &ApplicantServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &applicantServiceImpl{
		registry:     registry,
		encode:       encode,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "applicant_service"),
	}, nil
}

// Applicants implements ApplicantService.
func (s *applicantServiceImpl) Applicants(ctx context.Context) store.ApplicantList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Applicants()
}

// List implements ApplicantService.
func (s *applicantServiceImpl) List(ctx context.Context, p domain.Predicate) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []Entry
	for i, a := range s.registry.Filter(p) {
		entries = append(entries, Entry{Index: i + 1, Applicant: a})
	}
	return entries
}

// Add implements ApplicantService.
func (s *applicantServiceImpl) Add(
	ctx context.Context,
	fields domain.ApplicantFields,
) (Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	a, err := domain.NewApplicantFromFields(fields)
	if err != nil {
		log.Debug("rejected invalid applicant", "error", err)
		return Entry{}, NewApplicantServiceError("add", "invalid applicant", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.Add(a); err != nil {
		log.Debug("rejected applicant", "error", err)
		return Entry{}, NewApplicantServiceError("add", "failed to add applicant", err)
	}

	entry := Entry{Index: s.registry.Len(), Applicant: a}
	log.Debug("applicant added", "index", entry.Index)
	return entry, s.emitChange(ctx, events.TypeApplicantAdded)
}

// Edit implements ApplicantService.
func (s *applicantServiceImpl) Edit(
	ctx context.Context,
	index int,
	patch ApplicantPatch,
) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return nil, ErrNothingToEdit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.at(index)
	if err != nil {
		return nil, err
	}

	edited, err := applyPatch(target, patch)
	if err != nil {
		log.Debug("rejected invalid edit", "error", err, "index", index)
		return nil, NewApplicantServiceError("edit", "invalid applicant", err)
	}

	if err := s.registry.SetApplicant(target, edited); err != nil {
		log.Debug("rejected edit", "error", err, "index", index)
		return nil, NewApplicantServiceError("edit", "failed to edit applicant", err)
	}

	log.Debug("applicant edited", "index", index)
	return edited, s.emitChange(ctx, events.TypeApplicantEdited)
}

// Remove implements ApplicantService.
func (s *applicantServiceImpl) Remove(ctx context.Context, index int) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.at(index)
	if err != nil {
		return nil, err
	}

	if err := s.registry.Remove(target); err != nil {
		return nil, NewApplicantServiceError("remove", "failed to remove applicant", err)
	}

	log.Debug("applicant removed", "index", index, "applicant_count", s.registry.Len())
	return target, s.emitChange(ctx, events.TypeApplicantRemoved)
}

// SetPinned implements ApplicantService.
func (s *applicantServiceImpl) SetPinned(
	ctx context.Context,
	index int,
	pinned bool,
) (*domain.Applicant, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.at(index)
	if err != nil {
		return nil, err
	}

	edited := target.WithPinned(pinned)
	if err := s.registry.SetApplicant(target, edited); err != nil {
		return nil, NewApplicantServiceError("pin", "failed to update applicant", err)
	}

	log.Debug("applicant pin changed", "index", index, "pinned", pinned)
	return edited, s.emitChange(ctx, events.TypeApplicantPinned)
}

// Sort implements ApplicantService.
func (s *applicantServiceImpl) Sort(ctx context.Context, cmp domain.Comparator) error {
	if cmp == nil {
		return &ApplicantServiceError{Operation: "sort", Message: "comparator cannot be nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Sort(cmp)
	return s.emitChange(ctx, events.TypeRegistrySorted)
}

// Clear implements ApplicantService.
func (s *applicantServiceImpl) Clear(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Clear()
	log.Info("registry cleared")
	return s.emitChange(ctx, events.TypeRegistryCleared)
}

// Replace implements ApplicantService.
func (s *applicantServiceImpl) Replace(ctx context.Context, source store.ReadOnlyRegistry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if source == nil {
		return &ApplicantServiceError{Operation: "replace", Message: "source cannot be nil"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.ResetData(source); err != nil {
		log.Debug("rejected replacement registry", "error", err)
		return NewApplicantServiceError("replace", "failed to replace registry", err)
	}

	log.Info("registry replaced", "applicant_count", s.registry.Len())
	return s.emitChange(ctx, events.TypeRegistryReset)
}

// at returns the applicant at the one-based index. The caller must hold s.mu.
func (s *applicantServiceImpl) at(index int) (*domain.Applicant, error) {
	if index < 1 || index > s.registry.Len() {
		return nil, ErrInvalidIndex
	}
	return s.registry.Applicants().At(index - 1), nil
}

// emitChange announces the current registry state. The caller must hold s.mu,
// so that events are emitted in the order the changes were made.
// A failure leaves the in-memory change in place and is reported as ErrSaveFailed.
func (s *applicantServiceImpl) emitChange(ctx context.Context, eventType string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc, err := s.encode(s.registry)
	if err != nil {
		log.Error("failed to encode registry", "error", err, "event_type", eventType)
		return &ApplicantServiceError{
			Operation: eventType,
			Message:   "failed to encode registry",
			Err:       saveFailed(err),
		}
	}

	event := events.NewRegistryChangedEvent(eventType, doc, s.registry.Len())
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit registry change event",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType)
		return &ApplicantServiceError{
			Operation: eventType,
			Message:   "failed to emit event",
			Err:       saveFailed(err),
		}
	}
	return nil
}

// applyPatch builds the edited applicant through the domain constructors,
// keeping the pinned flag of target.
func applyPatch(target *domain.Applicant, patch ApplicantPatch) (*domain.Applicant, error) {
	majors := target.Majors()
	fields := domain.ApplicantFields{
		Name:              target.Name().String(),
		Phone:             target.Phone().String(),
		Email:             target.Email().String(),
		Scholarship:       target.Scholarship().String(),
		ApplicationStatus: target.ApplicationStatus().String(),
		Majors:            make([]string, len(majors)),
	}
	for i, m := range majors {
		fields.Majors[i] = m.String()
	}

	if patch.Name != nil {
		fields.Name = *patch.Name
	}
	if patch.Phone != nil {
		fields.Phone = *patch.Phone
	}
	if patch.Email != nil {
		fields.Email = *patch.Email
	}
	if patch.Scholarship != nil {
		fields.Scholarship = *patch.Scholarship
	}
	if patch.ApplicationStatus != nil {
		fields.ApplicationStatus = *patch.ApplicationStatus
	}
	if patch.Majors != nil {
		fields.Majors = *patch.Majors
	}

	edited, err := domain.NewApplicantFromFields(fields)
	if err != nil {
		return nil, err
	}
	return edited.WithPinned(target.IsPinned()), nil
}
