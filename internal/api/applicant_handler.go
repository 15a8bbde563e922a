package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/trackascholar/internal/api/shared"
	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/platform/jsonstore"
	"github.com/phrazzld/trackascholar/internal/platform/logger"
	"github.com/phrazzld/trackascholar/internal/service"
)

// IndexParam is the name of the path parameter holding an applicant index.
const IndexParam = "index"

// ApplicantHandler handles applicant-related HTTP requests
type ApplicantHandler struct {
	applicantService service.ApplicantService
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewApplicantHandler creates a new ApplicantHandler
func NewApplicantHandler(applicantService service.ApplicantService, logger *slog.Logger) *ApplicantHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicantHandler{
		applicantService: applicantService,
		validator:        validator.New(),
		logger:           logger.With("component", "applicant_handler"),
	}
}

// Routes registers the applicant endpoints on r.
func (h *ApplicantHandler) Routes(r chi.Router) {
	r.Get("/", h.ListApplicants)
	r.Post("/", h.CreateApplicant)
	r.Delete("/", h.ClearApplicants)
	r.Get("/pinned", h.ListPinnedApplicants)
	r.Post("/sort", h.SortApplicants)
	r.Get("/export", h.ExportApplicants)
	r.Post("/import", h.ImportApplicants)
	r.Put("/{index}", h.EditApplicant)
	r.Delete("/{index}", h.DeleteApplicant)
	r.Post("/{index}/pin", h.PinApplicant)
	r.Delete("/{index}/pin", h.UnpinApplicant)
}

// ListApplicants handles GET /api/applicants requests.
// The optional status query parameter filters by application status.
func (h *ApplicantHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	var predicate domain.Predicate = domain.ShowAll
	if raw := r.URL.Query().Get("status"); raw != "" {
		p, err := ParseStatusKeyword(raw)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		predicate = p
	}

	entries := h.applicantService.List(r.Context(), predicate)
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// ListPinnedApplicants handles GET /api/applicants/pinned requests
func (h *ApplicantHandler) ListPinnedApplicants(w http.ResponseWriter, r *http.Request) {
	entries := h.applicantService.List(r.Context(), domain.IsPinned)
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// CreateApplicant handles POST /api/applicants requests
func (h *ApplicantHandler) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicantRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.handleDecodeError(w, r, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	entry, err := h.applicantService.Add(r.Context(), req.toFields())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, applicantToResponse(entry.Index, entry.Applicant))
}

// EditApplicant handles PUT /api/applicants/{index} requests
func (h *ApplicantHandler) EditApplicant(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	var req EditApplicantRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.handleDecodeError(w, r, err)
		return
	}

	edited, err := h.applicantService.Edit(r.Context(), index, req.toPatch())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, applicantToResponse(index, edited))
}

// DeleteApplicant handles DELETE /api/applicants/{index} requests
func (h *ApplicantHandler) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	removed, err := h.applicantService.Remove(r.Context(), index)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, applicantToResponse(index, removed))
}

// PinApplicant handles POST /api/applicants/{index}/pin requests
func (h *ApplicantHandler) PinApplicant(w http.ResponseWriter, r *http.Request) {
	h.setPinned(w, r, true)
}

// UnpinApplicant handles DELETE /api/applicants/{index}/pin requests
func (h *ApplicantHandler) UnpinApplicant(w http.ResponseWriter, r *http.Request) {
	h.setPinned(w, r, false)
}

func (h *ApplicantHandler) setPinned(w http.ResponseWriter, r *http.Request, pinned bool) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	edited, err := h.applicantService.SetPinned(r.Context(), index, pinned)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, applicantToResponse(index, edited))
}

// SortApplicants handles POST /api/applicants/sort?by={name|scholarship|status}
// requests. The registry is reordered in place and the new listing returned.
func (h *ApplicantHandler) SortApplicants(w http.ResponseWriter, r *http.Request) {
	cmp, err := ParseSortKey(r.URL.Query().Get("by"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.applicantService.Sort(r.Context(), cmp); err != nil {
		h.handleError(w, r, err)
		return
	}

	entries := h.applicantService.List(r.Context(), domain.ShowAll)
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// ClearApplicants handles DELETE /api/applicants?confirm=yes requests.
// Without the confirmation the registry is left untouched.
func (h *ApplicantHandler) ClearApplicants(w http.ResponseWriter, r *http.Request) {
	if err := CheckConfirmation(r.URL.Query().Get("confirm")); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.applicantService.Clear(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Registry has been cleared"})
}

// ExportApplicants handles GET /api/applicants/export requests. The response
// body is the registry in the data file format.
func (h *ApplicantHandler) ExportApplicants(w http.ResponseWriter, r *http.Request) {
	data, err := jsonstore.Serialize(h.applicantService.Applicants(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to write export", "error", err)
	}
}

// ImportApplicants handles POST /api/applicants/import requests. The body is
// a document in the data file format; it replaces the registry only if every
// record loads.
func (h *ApplicantHandler) ImportApplicants(w http.ResponseWriter, r *http.Request) {
	data, err := shared.ReadBody(w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	imported, err := jsonstore.ToModel(data)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.applicantService.Replace(r.Context(), imported); err != nil {
		h.handleError(w, r, err)
		return
	}

	entries := h.applicantService.List(r.Context(), domain.ShowAll)
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// pathIndex parses the index path parameter, writing an error response if
// it is invalid.
func (h *ApplicantHandler) pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := ParseIndex(chi.URLParam(r, IndexParam))
	if err != nil {
		h.handleError(w, r, err)
		return 0, false
	}
	return index, true
}

func (h *ApplicantHandler) handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, shared.ErrEmptyBody) || errors.Is(err, shared.ErrBodyTooLarge) {
		h.handleError(w, r, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
}

// handleError maps err to a status code and safe message and writes the response.
func (h *ApplicantHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
