package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/models"
	"compliancedesk/internal/records/validation"
	"compliancedesk/pkg/platform/httputil"
)

func (h *Handler) HandleListNotices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	notices, err := h.service.ListNotices(r.Context(), filter.NoticeQuery{
		Stage:  q.Get("stage"),
		Search: q.Get("search"),
	})
	if err != nil {
		h.fail(w, r, "failed to list legal notices", err)
		return
	}
	if notices == nil {
		notices = []models.LegalNotice{}
	}
	httputil.WriteJSON(w, http.StatusOK, NoticeListResponse{Notices: notices, Count: len(notices)})
}

func (h *Handler) HandleGetNotice(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.GetNotice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to load legal notice", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) HandleValidateNotice(w http.ResponseWriter, r *http.Request) {
	var draft validation.LegalNoticeDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode legal notice draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toValidationResponse(h.service.ValidateNotice(r.Context(), draft)))
}

func (h *Handler) HandleCreateNotice(w http.ResponseWriter, r *http.Request) {
	var draft validation.LegalNoticeDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode legal notice draft", err)
		return
	}
	n, err := h.service.CreateNotice(r.Context(), draft)
	if err != nil {
		h.fail(w, r, "failed to create legal notice", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, n)
}

func (h *Handler) HandleUpdateNotice(w http.ResponseWriter, r *http.Request) {
	var draft validation.LegalNoticeDraft
	if err := httputil.DecodeJSON(r, &draft, httputil.AllowUnknownFields()); err != nil {
		h.fail(w, r, "failed to decode legal notice draft", err)
		return
	}
	n, err := h.service.UpdateNotice(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		h.fail(w, r, "failed to update legal notice", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) HandleAddReply(w http.ResponseWriter, r *http.Request) {
	var draft validation.ReplyDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode reply", err)
		return
	}
	n, err := h.service.AddReply(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		h.fail(w, r, "failed to add reply", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, n)
}

func (h *Handler) HandleDeleteNotice(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteNotice(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to delete legal notice", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
