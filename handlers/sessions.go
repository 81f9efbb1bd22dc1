// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/certificate-wizard/middleware"
	"github.com/danielhkuo/certificate-wizard/models"
	"github.com/danielhkuo/certificate-wizard/store"
	"github.com/danielhkuo/certificate-wizard/submission"
	"github.com/danielhkuo/certificate-wizard/wizard"
)

const MsgInvalidDate = "Please enter the date as YYYY-MM-DD."

type SessionHandler struct {
	store     store.Store
	submitter wizard.Submitter
	now       func() time.Time

	mu   sync.Mutex
	busy map[string]bool
}

func NewSessionHandler(st store.Store, sub wizard.Submitter) *SessionHandler {
	return &SessionHandler{
		store:     st,
		submitter: sub,
		now:       time.Now,
		busy:      make(map[string]bool),
	}
}

// acquire marks a session busy. It returns false if another mutating
// request already holds it.
func (h *SessionHandler) acquire(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.busy[id] {
		return false
	}
	h.busy[id] = true
	return true
}

func (h *SessionHandler) release(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.busy, id)
}

func (h *SessionHandler) isBusy(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.busy[id]
}

// load fetches a session and writes the error response when it can't
func (h *SessionHandler) load(w http.ResponseWriter, r *http.Request, id string) (*wizard.Session, bool) {
	s, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load session", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session store error")
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) save(w http.ResponseWriter, r *http.Request, s *wizard.Session) bool {
	if err := h.store.Save(r.Context(), s); err != nil {
		slog.Error("failed to save session", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session store error")
		return false
	}
	return true
}

// gate takes the busy flag for the session in the path, or answers 409
func (h *SessionHandler) gate(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return "", false
	}
	if !h.acquire(id) {
		middleware.ErrorResponse(w, http.StatusConflict, "Session is busy")
		return "", false
	}
	return id, true
}

func (h *SessionHandler) respond(w http.ResponseWriter, status int, s *wizard.Session, busy bool) {
	middleware.JSONResponse(w, status, buildView(s, busy, h.now()))
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	if n, err := h.store.Prune(r.Context()); err != nil {
		slog.Warn("failed to prune sessions", "error", err)
	} else if n > 0 {
		slog.Info("expired sessions pruned", "count", n)
	}

	s := wizard.New(uuid.NewString(), h.now())
	if !h.save(w, r, s) {
		return
	}

	slog.Info("session created", "session_id", s.ID)
	h.respond(w, http.StatusCreated, s, false)
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s, ok := h.load(w, r, id)
	if !ok {
		return
	}
	h.respond(w, http.StatusOK, s, h.isBusy(id))
}

// SelectType handles POST /sessions/{id}/select
func (h *SessionHandler) SelectType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gate(w, r)
	if !ok {
		return
	}
	defer h.release(id)

	var req models.SelectTypeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, ok := h.load(w, r, id)
	if !ok {
		return
	}

	err := s.SelectType(req.CertificateType, h.now())
	switch {
	case errors.Is(err, wizard.ErrWrongStep):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, models.ErrUnknownCertificateType):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown certificate type")
		return
	case err != nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.save(w, r, s) {
		return
	}

	slog.Info("certificate type selected", "session_id", id, "certificate_type", s.SelectedType)
	h.respond(w, http.StatusOK, s, false)
}

// GoBack handles POST /sessions/{id}/back
func (h *SessionHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gate(w, r)
	if !ok {
		return
	}
	defer h.release(id)

	s, ok := h.load(w, r, id)
	if !ok {
		return
	}

	if err := s.GoBack(h.now()); err != nil {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}

	if !h.save(w, r, s) {
		return
	}
	h.respond(w, http.StatusOK, s, false)
}

// Submit handles POST /sessions/{id}/submit
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gate(w, r)
	if !ok {
		return
	}
	defer h.release(id)

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	form := wizard.Form{
		Name:       req.Name,
		Email:      req.Email,
		BloodGroup: req.BloodGroup,
	}
	if req.Date != "" {
		d, err := models.ParseDate(req.Date)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, MsgInvalidDate)
			return
		}
		form.Date = d
	}

	s, ok := h.load(w, r, id)
	if !ok {
		return
	}

	msg, err := s.Submit(r.Context(), form, h.submitter, h.now())

	var validationErr *wizard.ValidationError
	if errors.As(err, &validationErr) {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, validationErr.Message)
		return
	}
	if errors.Is(err, wizard.ErrWrongStep) {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}

	// The outcome is recorded on the session whether or not the webhook accepted it
	if !h.save(w, r, s) {
		return
	}

	if err != nil {
		logSubmitFailure(id, s.SelectedType, err)
		middleware.ErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	slog.Info("certificate request submitted", "session_id", id, "certificate_type", s.SelectedType, "message", msg)
	h.respond(w, http.StatusOK, s, false)
}

func logSubmitFailure(id string, typ models.CertificateType, err error) {
	var remoteErr *submission.RemoteError
	if errors.As(err, &remoteErr) {
		slog.Warn("webhook rejected certificate request",
			"session_id", id,
			"certificate_type", typ,
			"status", remoteErr.StatusCode,
		)
		return
	}
	slog.Error("certificate request failed", "session_id", id, "certificate_type", typ, "error", err)
}

// Reset handles POST /sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gate(w, r)
	if !ok {
		return
	}
	defer h.release(id)

	s, ok := h.load(w, r, id)
	if !ok {
		return
	}

	s.Reset(h.now())
	if !h.save(w, r, s) {
		return
	}
	h.respond(w, http.StatusOK, s, false)
}

// Delete handles DELETE /sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gate(w, r)
	if !ok {
		return
	}
	defer h.release(id)

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete session", "session_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session store error")
		return
	}

	slog.Info("session deleted", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}
