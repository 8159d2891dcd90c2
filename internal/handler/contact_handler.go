package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/atelier/backend/internal/model"
	"github.com/atelier/backend/internal/repository"
	"github.com/atelier/backend/internal/service"
	"github.com/atelier/backend/internal/validate"
)

// ContactHandler handles contact form submission and admin review endpoints.
type ContactHandler struct {
	intake service.IntakeService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(intake service.IntakeService) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// submitRequest is the expected JSON body for POST /api/contact.
// website is the hidden honeypot field; captchaToken is optional.
type submitRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Website      string `json:"website"`
	CaptchaToken string `json:"captchaToken"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Please check your input and try again.",
		})
		return
	}

	meta := model.RequestMeta{
		IPAddress: clientAddr(r),
		UserAgent: r.Header.Get("User-Agent"),
	}

	sub, err := h.intake.Submit(r.Context(), service.SubmitRequest{
		Name:         req.Name,
		Email:        req.Email,
		Subject:      req.Subject,
		Message:      req.Message,
		Website:      req.Website,
		CaptchaToken: req.CaptchaToken,
	}, meta)

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Message: "Thank you for your message! We'll get back to you within 24 hours.",
			ID:      sub.ID,
		})
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrBotDetected):
		// Same shape as a validation failure; no hint which check fired.
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Invalid submission detected.",
		})
	default:
		slog.Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "Sorry, there was an error processing your message. Please try again later.",
		})
	}
}

func isValidationError(err error) bool {
	var verr *validate.Error
	return errors.As(err, &verr)
}

// listResponse is the JSON response for GET /api/contacts.
type listResponse struct {
	Success bool                  `json:"success"`
	Data    []*model.Submission   `json:"data"`
	Stats   model.SubmissionStats `json:"stats"`
}

// List handles GET /api/contacts (administrative).
// Supports query params: status, priority, limit.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.SubmissionFilter{
		Status:   model.Status(r.URL.Query().Get("status")),
		Priority: model.Priority(r.URL.Query().Get("priority")),
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	subs, stats, err := h.intake.List(r.Context(), filter)
	if err != nil {
		slog.Error("contact listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "Failed to fetch contact submissions",
		})
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.Submission{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: subs, Stats: stats})
}

// updateStatusRequest is the JSON body for PATCH /api/contacts/{id}/status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/contacts/{id}/status (administrative).
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	err := h.intake.UpdateStatus(r.Context(), id, model.Status(req.Status))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, apiResponse{
			Success: true,
			Message: "Status updated successfully",
		})
	case errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "invalid status value",
		})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, apiResponse{
			Success: false,
			Message: "Contact not found",
		})
	default:
		slog.Error("contact status update failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, apiResponse{
			Success: false,
			Message: "Failed to update contact status",
		})
	}
}

// clientAddr extracts the peer address for provenance metadata. Uses the
// same rightmost-trusted-hop extraction as the rate limiter so admission
// control and recorded provenance agree on the client identity.
func clientAddr(r *http.Request) string {
	return trustedClientIP(r, defaultTrustedProxyCount)
}
