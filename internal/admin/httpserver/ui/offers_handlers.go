package ui

import (
	"errors"
	"log"
	"net/http"

	custommw "github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/middleware"
	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// OffersPage lists job offers with activity filtering and search.
func (h *Handlers) OffersPage(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	data := templates.OffersData{
		Shell: h.shell("Offres d'emploi", "offers"),
		Query: joboffers.Query{
			Activity: r.URL.Query().Get("activity"),
			Search:   r.URL.Query().Get("q"),
		},
		Error: flashMessage(r.URL.Query().Get("error")),
	}

	offers, err := h.Offers.List(r.Context(), token)
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("offers: load failed: %v", err)
		data.Error = flashMessage("load")
	}

	data.Counts = joboffers.CountByActivity(offers)
	data.Offers = joboffers.Filter(offers, data.Query)
	h.render(w, "offers", data)
}

// OfferNewForm renders the empty editor.
func (h *Handlers) OfferNewForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "offer_edit", templates.OfferEditData{
		Shell: h.shell("Nouvelle offre", "offers"),
		Form:  joboffers.Form{IsActive: true},
	})
}

// OfferCreate validates the form and persists a new offer.
func (h *Handlers) OfferCreate(w http.ResponseWriter, r *http.Request) {
	h.saveOffer(w, r, 0)
}

// OfferEditForm loads an offer into the editor, re-parsing the stored HTML
// lists into one item per line.
func (h *Handlers) OfferEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	offer, err := h.Offers.Get(r.Context(), token, id)
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		if errors.Is(err, joboffers.ErrOfferNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		log.Printf("offers: get %d failed: %v", id, err)
		http.Redirect(w, r, h.BasePath+"/job-offers?error=load", http.StatusSeeOther)
		return
	}

	h.render(w, "offer_edit", templates.OfferEditData{
		Shell:   h.shell("Modifier l'offre", "offers"),
		OfferID: id,
		Form:    joboffers.FormFromOffer(*offer),
	})
}

// OfferUpdate validates the form and saves changes.
func (h *Handlers) OfferUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.saveOffer(w, r, id)
}

// saveOffer is the shared create/update path; id zero means create.
func (h *Handlers) saveOffer(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := joboffers.Form{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Profiles:    r.PostFormValue("profiles"),
		Conditions:  r.PostFormValue("conditions"),
		Location:    r.PostFormValue("location"),
		IsActive:    r.PostFormValue("is_active") != "",
	}

	title := "Nouvelle offre"
	if id != 0 {
		title = "Modifier l'offre"
	}
	data := templates.OfferEditData{
		Shell:   h.shell(title, "offers"),
		OfferID: id,
		Form:    form,
	}

	if err := form.Validate(); err != nil {
		var vErr *joboffers.ValidationError
		if errors.As(err, &vErr) {
			data.FieldErrors = vErr.FieldErrors
		}
		data.Error = "Veuillez corriger les champs marqués."
		h.renderStatus(w, http.StatusUnprocessableEntity, "offer_edit", data)
		return
	}

	token := custommw.TokenFromContext(r.Context())
	var err error
	if id == 0 {
		_, err = h.Offers.Create(r.Context(), token, form.Input())
	} else {
		_, err = h.Offers.Update(r.Context(), token, id, form.Input())
	}
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("offers: save %d failed: %v", id, err)
		data.Error = flashMessage("save")
		h.render(w, "offer_edit", data)
		return
	}
	http.Redirect(w, r, h.BasePath+"/job-offers", http.StatusSeeOther)
}

// OfferDelete removes an offer.
func (h *Handlers) OfferDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	if err := h.Offers.Delete(r.Context(), token, id); err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("offers: delete %d failed: %v", id, err)
		http.Redirect(w, r, h.BasePath+"/job-offers?error=delete", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, h.BasePath+"/job-offers", http.StatusSeeOther)
}
