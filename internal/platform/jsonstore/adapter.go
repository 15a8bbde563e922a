package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/store"
)

// validate reports missing keys by their JSON name rather than the Go field name.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// jsonMajor is the stored form of a domain.Major.
type jsonMajor struct {
	MajorName *string `json:"majorName" validate:"required"`
}

// jsonApplicant is the stored form of a domain.Applicant. Fields are pointers
// so that an absent key can be told apart from an empty value.
type jsonApplicant struct {
	Name              *string     `json:"name" validate:"required"`
	Phone             *string     `json:"phone" validate:"required"`
	Email             *string     `json:"email" validate:"required"`
	Scholarship       *string     `json:"scholarship" validate:"required"`
	ApplicationStatus *string     `json:"applicationStatus" validate:"required"`
	Majors            []jsonMajor `json:"majors" validate:"dive"`
	Pinned            *string     `json:"pinned,omitempty"`
}

// jsonDocument is the top-level shape of the data file.
type jsonDocument struct {
	Applicants []jsonApplicant `json:"applicants"`
}

func stringPtr(s string) *string {
	return &s
}

func newJSONApplicant(a *domain.Applicant) jsonApplicant {
	majors := make([]jsonMajor, 0, len(a.Majors()))
	for _, m := range a.Majors() {
		majors = append(majors, jsonMajor{MajorName: stringPtr(m.String())})
	}
	return jsonApplicant{
		Name:              stringPtr(a.Name().String()),
		Phone:             stringPtr(a.Phone().String()),
		Email:             stringPtr(a.Email().String()),
		Scholarship:       stringPtr(a.Scholarship().String()),
		ApplicationStatus: stringPtr(a.ApplicationStatus().String()),
		Majors:            majors,
		Pinned:            stringPtr(a.Pinned().String()),
	}
}

// toModel checks that every required key is present, then rebuilds the
// applicant through the domain constructors.
func (j jsonApplicant) toModel() (*domain.Applicant, error) {
	if err := validate.Struct(j); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &MissingFieldError{Field: fieldErrs[0].Field()}
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	majors := make([]string, len(j.Majors))
	for i, m := range j.Majors {
		majors[i] = *m.MajorName
	}

	a, err := domain.NewApplicantFromFields(domain.ApplicantFields{
		Name:              *j.Name,
		Phone:             *j.Phone,
		Email:             *j.Email,
		Scholarship:       *j.Scholarship,
		ApplicationStatus: *j.ApplicationStatus,
		Majors:            majors,
	})
	if err != nil {
		return nil, err
	}

	if j.Pinned != nil {
		pinned, err := domain.ParseFlag(domain.PinnedFlagName, *j.Pinned)
		if err != nil {
			return nil, err
		}
		a = a.WithPinned(pinned.IsSet())
	}
	return a, nil
}

// Serialize renders the registry as a JSON document, in registry order.
func Serialize(r store.ReadOnlyRegistry) ([]byte, error) {
	list := r.Applicants()
	doc := jsonDocument{Applicants: make([]jsonApplicant, 0, list.Len())}
	for _, a := range list.All() {
		doc.Applicants = append(doc.Applicants, newJSONApplicant(a))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode applicant document: %w", err)
	}
	return data, nil
}

// ToModel decodes a JSON document into a new registry. Each record is checked
// for missing keys, validated by the domain constructors and inserted with
// Registry.Add, in array order. Any failure aborts the whole load: either a
// fully valid registry or an error is returned, never both.
//
// A document without an "applicants" key yields an empty registry.
func ToModel(data []byte) (*store.Registry, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	r := store.NewRegistry()
	for i, record := range doc.Applicants {
		a, err := record.toModel()
		if err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
		if err := r.Add(a); err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}
	}
	return r, nil
}
