package ui

import (
	"log"
	"net/http"

	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// NewsletterPage lists subscribers. Subscriber data is demo-only.
func (h *Handlers) NewsletterPage(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("q")

	all := h.Newsletter.All()
	h.render(w, "newsletter", templates.NewsletterData{
		Shell:       h.shell("Abonnés newsletter", "newsletter"),
		Subscribers: newsletter.Filter(all, status, search),
		Counts:      newsletter.CountByStatus(all),
		Status:      status,
		Search:      search,
	})
}

// NewsletterStatus toggles a subscriber between active and unsubscribed.
func (h *Handlers) NewsletterStatus(w http.ResponseWriter, r *http.Request) {
	id := pathString(r)
	if id == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.Newsletter.SetStatus(id, newsletter.Status(r.PostFormValue("status"))); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, h.BasePath+"/newsletter", http.StatusSeeOther)
}

// NewsletterDelete removes a subscriber from the demo list.
func (h *Handlers) NewsletterDelete(w http.ResponseWriter, r *http.Request) {
	id := pathString(r)
	if id == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := h.Newsletter.Delete(id); err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, h.BasePath+"/newsletter", http.StatusSeeOther)
}

// NewsletterExport streams the full subscriber list as CSV.
func (h *Handlers) NewsletterExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="abonnes-newsletter.csv"`)
	if err := newsletter.ExportCSV(w, h.Newsletter.All()); err != nil {
		log.Printf("newsletter: export failed: %v", err)
	}
}
