package ui

import (
	"log"
	"net/http"

	custommw "github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/middleware"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// DashboardPage aggregates headline counts from every screen's data.
func (h *Handlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	data := templates.DashboardData{Shell: h.shell("Tableau de bord", "dashboard")}

	if err := h.Messages.Load(r.Context(), token); err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("dashboard: load messages failed: %v", err)
		data.Error = flashMessage("load")
	} else {
		counts := messages.CountByStatus(h.Messages.Messages())
		data.UnreadMessages = counts.ByStatus[messages.StatusNew]
	}

	if offers, err := h.Offers.List(r.Context(), token); err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("dashboard: load offers failed: %v", err)
		if data.Error == "" {
			data.Error = flashMessage("load")
		}
	} else {
		for _, offer := range offers {
			if offer.IsActive {
				data.ActiveOffers++
			}
		}
	}

	quoteCounts := quotes.CountByStatus(h.Quotes.All())
	data.PendingQuotes = quoteCounts.ByStatus[quotes.StatusNew]
	data.TotalSubscribers = len(h.Newsletter.All())

	h.render(w, "dashboard", data)
}
