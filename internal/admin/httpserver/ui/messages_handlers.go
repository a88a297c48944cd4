package ui

import (
	"fmt"
	"log"
	"mime"
	"net/http"
	"strconv"

	custommw "github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/middleware"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// MessagesPage lists contact messages with filtering and an optional detail
// panel. The selected id arrives as a query parameter so details are
// deep-linkable; opening a new message marks it read.
func (h *Handlers) MessagesPage(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	data := templates.MessagesData{
		Shell:    h.shell("Messages", "messages"),
		Statuses: messages.Statuses(),
		Query: messages.Query{
			Status: r.URL.Query().Get("status"),
			Search: r.URL.Query().Get("q"),
		},
		Error: flashMessage(r.URL.Query().Get("error")),
	}

	if err := h.Messages.Load(r.Context(), token); err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("messages: load failed: %v", err)
		data.Error = flashMessage("load")
	}

	if raw := r.URL.Query().Get("selected"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			if selected, err := h.Messages.Open(id); err == nil {
				data.Selected = &selected
			}
		}
	}

	all := h.Messages.Messages()
	data.Counts = messages.CountByStatus(all)
	data.Messages = messages.Filter(all, data.Query)
	h.render(w, "messages", data)
}

// MessageDelete removes a message optimistically; a backend failure
// restores the list and surfaces an inline error after redirect.
func (h *Handlers) MessageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	if err := h.Messages.Delete(r.Context(), token, id); err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("messages: delete %d failed: %v", id, err)
		http.Redirect(w, r, h.BasePath+"/messages?error=delete", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, h.BasePath+"/messages", http.StatusSeeOther)
}

// MessageStatus records a session-local status change (replied, archived).
func (h *Handlers) MessageStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	status := messages.Status(r.PostFormValue("status"))
	if err := h.Messages.SetStatus(id, status); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("%s/messages?selected=%d", h.BasePath, id), http.StatusSeeOther)
}

// MessageAttachment streams the attachment with the filename derived from
// the backend's Content-Disposition header.
func (h *Handlers) MessageAttachment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	fallback := fmt.Sprintf("piece-jointe-%d", id)
	att, err := h.Messages.Attachment(r.Context(), token, id, fallback)
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("messages: attachment %d failed: %v", id, err)
		http.Error(w, "Le téléchargement a échoué.", http.StatusBadGateway)
		return
	}

	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": att.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(att.Content)))
	_, _ = w.Write(att.Content)
}
