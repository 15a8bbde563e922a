package store

import (
	"iter"
	"slices"

	"github.com/phrazzld/trackascholar/internal/domain"
)

const entityApplicant = "applicant"

// ReadOnlyRegistry is a registry whose contents can be read but not changed.
type ReadOnlyRegistry interface {
	// Applicants returns a read-only view of the registry contents.
	Applicants() ApplicantList
}

// ApplicantList is a read-only view of an ordered list of applicants.
// It exposes no mutators; Slice returns a copy.
type ApplicantList struct {
	items []*domain.Applicant
}

// NewApplicantList returns a read-only view over a copy of items.
func NewApplicantList(items []*domain.Applicant) ApplicantList {
	return ApplicantList{items: slices.Clone(items)}
}

// Len returns the number of applicants in the list.
func (l ApplicantList) Len() int {
	return len(l.items)
}

// At returns the applicant at zero-based index i. It panics if i is out of range.
func (l ApplicantList) At(i int) *domain.Applicant {
	return l.items[i]
}

// All iterates over the list in order.
func (l ApplicantList) All() iter.Seq2[int, *domain.Applicant] {
	return slices.All(l.items)
}

// Applicants implements ReadOnlyRegistry, so a snapshot can be serialized
// or loaded into another registry.
func (l ApplicantList) Applicants() ApplicantList {
	return l
}

// Slice returns a copy of the list. Changes to the copy do not affect the registry.
func (l ApplicantList) Slice() []*domain.Applicant {
	return slices.Clone(l.items)
}

// Registry is an ordered collection of applicants, unique by name.
// The zero value is an empty registry ready to use.
type Registry struct {
	applicants []*domain.Applicant
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Applicants implements ReadOnlyRegistry. The returned view is a snapshot;
// later changes to the registry are not reflected in it.
func (r *Registry) Applicants() ApplicantList {
	if r == nil {
		return ApplicantList{}
	}
	return NewApplicantList(r.applicants)
}

// Len returns the number of applicants in the registry.
func (r *Registry) Len() int {
	return len(r.applicants)
}

// HasApplicant reports whether an applicant with the same name as a is present.
func (r *Registry) HasApplicant(a *domain.Applicant) bool {
	return r.indexOf(a) >= 0
}

func (r *Registry) indexOf(a *domain.Applicant) int {
	if a == nil {
		return -1
	}
	return slices.IndexFunc(r.applicants, a.IsSameApplicant)
}

// Add appends a to the registry.
// Returns ErrDuplicateApplicant if an applicant with the same name is present.
func (r *Registry) Add(a *domain.Applicant) error {
	if a == nil {
		return NewStoreError(entityApplicant, "add", "applicant is required", domain.ErrNilApplicant)
	}
	if r.HasApplicant(a) {
		return NewStoreError(entityApplicant, "add", "name already registered", ErrDuplicateApplicant)
	}
	r.applicants = append(r.applicants, a)
	return nil
}

// SetApplicant replaces target with edited, keeping its position.
// Returns ErrApplicantNotFound if target is not present and
// ErrDuplicateApplicant if edited renames target to the name of another
// applicant already in the registry.
func (r *Registry) SetApplicant(target, edited *domain.Applicant) error {
	if edited == nil {
		return NewStoreError(entityApplicant, "set", "applicant is required", domain.ErrNilApplicant)
	}
	i := r.indexOf(target)
	if i < 0 {
		return NewStoreError(entityApplicant, "set", "target not registered", ErrApplicantNotFound)
	}
	if !target.IsSameApplicant(edited) && r.HasApplicant(edited) {
		return NewStoreError(entityApplicant, "set", "name already registered", ErrDuplicateApplicant)
	}
	r.applicants[i] = edited
	return nil
}

// Remove deletes the applicant with the same name as a.
// Returns ErrApplicantNotFound if there is none.
func (r *Registry) Remove(a *domain.Applicant) error {
	i := r.indexOf(a)
	if i < 0 {
		return NewStoreError(entityApplicant, "remove", "applicant not registered", ErrApplicantNotFound)
	}
	r.applicants = slices.Delete(r.applicants, i, i+1)
	return nil
}

// ResetData replaces the registry contents with those of source, checking
// uniqueness element by element in source order. On the first collision it
// returns ErrDuplicateApplicant and the registry keeps its prior contents.
// A nil source is rejected with ErrNilSource.
func (r *Registry) ResetData(source ReadOnlyRegistry) error {
	if source == nil {
		return NewStoreError(entityApplicant, "reset", "source is required", ErrNilSource)
	}
	next := NewRegistry()
	for _, a := range source.Applicants().All() {
		if err := next.Add(a); err != nil {
			return NewStoreError(entityApplicant, "reset", "source rejected", err)
		}
	}
	r.applicants = next.applicants
	return nil
}

// Sort reorders the registry in place. Applicants that compare equal keep
// their relative order.
func (r *Registry) Sort(cmp domain.Comparator) {
	slices.SortStableFunc(r.applicants, cmp)
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.applicants = nil
}

// Filter yields, in registry order, the applicants matching p together with
// their zero-based position in the registry. A nil p matches every applicant.
// The registry must not be changed while the sequence is being iterated.
func (r *Registry) Filter(p domain.Predicate) iter.Seq2[int, *domain.Applicant] {
	if p == nil {
		p = domain.ShowAll
	}
	return func(yield func(int, *domain.Applicant) bool) {
		for i, a := range r.applicants {
			if p.Test(a) && !yield(i, a) {
				return
			}
		}
	}
}
