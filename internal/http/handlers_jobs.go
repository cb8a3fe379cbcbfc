package httpx

import (
	"errors"
	"net/http"

	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	"github.com/byeyali/airang-ssam-sub001/internal/service"
)

// JobHandlers provides HTTP handlers for job posting operations.
type JobHandlers struct {
	Listing *service.ListingService
	Jobs    *service.JobService
}

// ListJobs handles GET /api/jobs: the role-scoped, filtered, paginated
// listing of postings visible to the requester.
func (h *JobHandlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	result, err := h.Listing.ListJobs(r.Context(), requester, query)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// CreateJob handles POST /api/jobs.
func (h *JobHandlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.CreateJobRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Jobs.Create(r.Context(), requester, &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, job)
}

// GetJob handles GET /api/jobs/{id}.
func (h *JobHandlers) GetJob(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("job id is required"),
		})
		return
	}

	view, err := h.Jobs.GetByID(r.Context(), requester, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// CancelJob handles POST /api/jobs/{id}/cancel.
func (h *JobHandlers) CancelJob(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("job id is required"),
		})
		return
	}

	job, err := h.Jobs.Cancel(r.Context(), requester, id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}

// transitionRequest carries the target status for a lifecycle transition.
type transitionRequest struct {
	Status model.JobStatus `json:"status"`
}

// TransitionJob handles POST /api/jobs/{id}/transition, driven by the
// matching workflow with admin credentials.
func (h *JobHandlers) TransitionJob(w http.ResponseWriter, r *http.Request) {
	requester, ok := RequesterFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("job id is required"),
		})
		return
	}

	var req transitionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Jobs.Transition(r.Context(), requester, id, req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, job)
}
