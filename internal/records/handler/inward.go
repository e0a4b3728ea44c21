package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/validation"
	"compliancedesk/pkg/platform/httputil"
)

func (h *Handler) HandleListInward(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, err := h.service.ListInward(r.Context(), filter.InwardQuery{
		Department: q.Get("department"),
		Search:     q.Get("search"),
	})
	if err != nil {
		h.fail(w, r, "failed to list inward entries", err)
		return
	}
	if entries == nil {
		entries = []models.InwardRegisterEntry{}
	}
	httputil.WriteJSON(w, http.StatusOK, InwardListResponse{Entries: entries, Count: len(entries)})
}

func (h *Handler) HandleGetInward(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetInward(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to load inward entry", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) HandleCreateInward(w http.ResponseWriter, r *http.Request) {
	var draft validation.InwardDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode inward draft", err)
		return
	}
	e, err := h.service.CreateInward(r.Context(), draft)
	if err != nil {
		h.fail(w, r, "failed to create inward entry", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) HandleUpdateInward(w http.ResponseWriter, r *http.Request) {
	var draft validation.InwardDraft
	if err := httputil.DecodeJSON(r, &draft, httputil.AllowUnknownFields()); err != nil {
		h.fail(w, r, "failed to decode inward draft", err)
		return
	}
	e, err := h.service.UpdateInward(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		h.fail(w, r, "failed to update inward entry", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) HandleDeleteInward(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteInward(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to delete inward entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
