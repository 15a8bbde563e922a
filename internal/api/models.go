package api

import (
	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/service"
)

// CreateApplicantRequest represents the request body for adding an applicant.
// Field values are validated by the domain; the tags only check presence.
type CreateApplicantRequest struct {
	Name              string   `json:"name" validate:"required"`
	Phone             string   `json:"phone" validate:"required"`
	Email             string   `json:"email" validate:"required"`
	Scholarship       string   `json:"scholarship" validate:"required"`
	ApplicationStatus string   `json:"application_status" validate:"required"`
	Majors            []string `json:"majors" validate:"omitempty"`
}

// toFields converts the request to raw applicant fields.
func (r CreateApplicantRequest) toFields() domain.ApplicantFields {
	return domain.ApplicantFields{
		Name:              r.Name,
		Phone:             r.Phone,
		Email:             r.Email,
		Scholarship:       r.Scholarship,
		ApplicationStatus: r.ApplicationStatus,
		Majors:            r.Majors,
	}
}

// EditApplicantRequest represents the request body for editing an applicant.
// Omitted fields keep their current value; majors, when present, replace the
// current set.
type EditApplicantRequest struct {
	Name              *string   `json:"name,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Scholarship       *string   `json:"scholarship,omitempty"`
	ApplicationStatus *string   `json:"application_status,omitempty"`
	Majors            *[]string `json:"majors,omitempty"`
}

// toPatch converts the request to a service patch.
func (r EditApplicantRequest) toPatch() service.ApplicantPatch {
	return service.ApplicantPatch{
		Name:              r.Name,
		Phone:             r.Phone,
		Email:             r.Email,
		Scholarship:       r.Scholarship,
		ApplicationStatus: r.ApplicationStatus,
		Majors:            r.Majors,
	}
}

// ApplicantResponse represents the response data for an applicant
type ApplicantResponse struct {
	// Index is the one-based position of the applicant in the registry
	Index             int      `json:"index"`
	Name              string   `json:"name"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Scholarship       string   `json:"scholarship"`
	ApplicationStatus string   `json:"application_status"`
	Majors            []string `json:"majors"`
	Pinned            bool     `json:"pinned"`
}

// ApplicantListResponse represents a listing of applicants
type ApplicantListResponse struct {
	Applicants []ApplicantResponse `json:"applicants"`
	Total      int                 `json:"total"`
}

// MessageResponse carries the outcome of a command that returns no applicant
type MessageResponse struct {
	Message string `json:"message"`
}

// applicantToResponse converts a domain.Applicant to an ApplicantResponse
func applicantToResponse(index int, a *domain.Applicant) ApplicantResponse {
	majors := make([]string, 0, len(a.Majors()))
	for _, m := range a.Majors() {
		majors = append(majors, m.String())
	}
	return ApplicantResponse{
		Index:             index,
		Name:              a.Name().String(),
		Phone:             a.Phone().String(),
		Email:             a.Email().String(),
		Scholarship:       a.Scholarship().String(),
		ApplicationStatus: a.ApplicationStatus().String(),
		Majors:            majors,
		Pinned:            a.IsPinned(),
	}
}

// entriesToResponse converts a service listing to an ApplicantListResponse
func entriesToResponse(entries []service.Entry) ApplicantListResponse {
	resp := ApplicantListResponse{
		Applicants: make([]ApplicantResponse, 0, len(entries)),
		Total:      len(entries),
	}
	for _, e := range entries {
		resp.Applicants = append(resp.Applicants, applicantToResponse(e.Index, e.Applicant))
	}
	return resp
}
