package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"compliancedesk/internal/records/filter"
	"compliancedesk/internal/records/validation"
	"compliancedesk/pkg/platform/httputil"
	"compliancedesk/pkg/requestcontext"
)

func (h *Handler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	docs, err := h.service.ListDocuments(r.Context(), filter.DocumentQuery{
		Status: q.Get("status"),
		Type:   q.Get("type"),
		Search: q.Get("search"),
	})
	if err != nil {
		h.fail(w, r, "failed to list documents", err)
		return
	}
	now := requestcontext.Now(r.Context())
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d, now))
	}
	httputil.WriteJSON(w, http.StatusOK, DocumentListResponse{Documents: out, Count: len(out)})
}

func (h *Handler) HandleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "failed to load document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDocumentResponse(doc, requestcontext.Now(r.Context())))
}

func (h *Handler) HandleValidateDocument(w http.ResponseWriter, r *http.Request) {
	var draft validation.DocumentDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode document draft", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toValidationResponse(h.service.ValidateDocument(r.Context(), draft)))
}

func (h *Handler) HandleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var draft validation.DocumentDraft
	if err := httputil.DecodeJSON(r, &draft); err != nil {
		h.fail(w, r, "failed to decode document draft", err)
		return
	}
	doc, err := h.service.CreateDocument(r.Context(), draft)
	if err != nil {
		h.fail(w, r, "failed to create document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toDocumentResponse(doc, requestcontext.Now(r.Context())))
}

func (h *Handler) HandleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var draft validation.DocumentDraft
	if err := httputil.DecodeJSON(r, &draft, httputil.AllowUnknownFields()); err != nil {
		h.fail(w, r, "failed to decode document draft", err)
		return
	}
	doc, err := h.service.UpdateDocument(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		h.fail(w, r, "failed to update document", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toDocumentResponse(doc, requestcontext.Now(r.Context())))
}

func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDocument(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "failed to delete document", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
