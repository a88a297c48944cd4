package ui

import (
	"net/http"

	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// QuotesPage lists quote requests. Quote data is demo-only and lives in
// memory; the page says so.
func (h *Handlers) QuotesPage(w http.ResponseWriter, r *http.Request) {
	data := templates.QuotesData{
		Shell:    h.shell("Demandes de devis", "quotes"),
		Statuses: quotes.Statuses(),
		Query: quotes.Query{
			Status: r.URL.Query().Get("status"),
			Search: r.URL.Query().Get("q"),
		},
	}

	if id := r.URL.Query().Get("selected"); id != "" {
		if selected, err := h.Quotes.Open(id); err == nil {
			data.Selected = &selected
		}
	}

	all := h.Quotes.All()
	data.Counts = quotes.CountByStatus(all)
	data.Quotes = quotes.Filter(all, data.Query)
	h.render(w, "quotes", data)
}

// QuoteStatus updates a quote's status.
func (h *Handlers) QuoteStatus(w http.ResponseWriter, r *http.Request) {
	id := pathString(r)
	if id == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.Quotes.SetStatus(id, quotes.Status(r.PostFormValue("status"))); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, h.BasePath+"/quotes?selected="+id, http.StatusSeeOther)
}

// QuoteDelete removes a quote from the demo list.
func (h *Handlers) QuoteDelete(w http.ResponseWriter, r *http.Request) {
	id := pathString(r)
	if id == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.Quotes.Delete(id); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, h.BasePath+"/quotes", http.StatusSeeOther)
}
