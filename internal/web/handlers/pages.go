package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/web/cms"
	"github.com/Hec8/aissia-security-sub000/internal/web/nav"
	"github.com/Hec8/aissia-security-sub000/internal/web/templates"
)

const homeNewsCount = 3

// Home renders the landing page with the service cards and the latest news.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := templates.HomeData{
		Shell:    h.shell(r, "home.title", "/"),
		QuoteURL: nav.Href(h.locale(r), "/devis"),
	}

	services, err := h.Gateway.Services(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		data.Services = services
	}

	// News is decorative on the landing page; a failure only drops the block.
	if news, err := h.Gateway.News(r.Context()); err == nil {
		if len(news) > homeNewsCount {
			news = news[:homeNewsCount]
		}
		data.News = news
	}

	h.render(w, "home", data)
}

// Services renders the services listing.
func (h *Handlers) Services(w http.ResponseWriter, r *http.Request) {
	data := templates.ServicesData{Shell: h.shell(r, "services.title", "/services")}
	services, err := h.Gateway.Services(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		data.Services = services
	}
	h.render(w, "services", data)
}

// Products renders the products listing.
func (h *Handlers) Products(w http.ResponseWriter, r *http.Request) {
	data := templates.ProductsData{Shell: h.shell(r, "products.title", "/produits")}
	products, err := h.Gateway.Products(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		data.Products = products
	}
	h.render(w, "products", data)
}

// Trainings renders the trainings listing.
func (h *Handlers) Trainings(w http.ResponseWriter, r *http.Request) {
	data := templates.TrainingsData{Shell: h.shell(r, "trainings.title", "/formations")}
	trainings, err := h.Gateway.Trainings(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		data.Trainings = trainings
	}
	h.render(w, "trainings", data)
}

// Technologies renders the technology showcase, fed by the products whose
// category marks them as technology equipment.
func (h *Handlers) Technologies(w http.ResponseWriter, r *http.Request) {
	data := templates.ProductsData{Shell: h.shell(r, "technologies.title", "/technologies")}
	products, err := h.Gateway.Products(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		for _, p := range products {
			if strings.EqualFold(p.Category, "technologie") || strings.EqualFold(p.Category, "technology") {
				data.Products = append(data.Products, p)
			}
		}
	}
	h.render(w, "technologies", data)
}

// About renders the company presentation.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, "about", templates.AboutData{Shell: h.shell(r, "about.title", "/a-propos")})
}

// News renders the news listing.
func (h *Handlers) News(w http.ResponseWriter, r *http.Request) {
	data := templates.NewsData{Shell: h.shell(r, "news.title", "/actualites")}
	items, err := h.Gateway.News(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		data.Items = items
	}
	h.render(w, "news", data)
}

// NewsItem renders a single news article.
func (h *Handlers) NewsItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}
	item, err := h.Gateway.NewsItem(r.Context(), id)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			h.NotFound(w, r)
			return
		}
		data := templates.NewsData{Shell: h.shell(r, "news.title", "/actualites")}
		data.Error = h.loadError(r, err)
		h.render(w, "news", data)
		return
	}
	data := templates.NewsItemData{
		Shell: h.shell(r, "news.title", "/actualites/"+chi.URLParam(r, "id")),
		Item:  *item,
	}
	data.Title = item.Title
	h.render(w, "news_item", data)
}

// Recruitment renders the active job offers.
func (h *Handlers) Recruitment(w http.ResponseWriter, r *http.Request) {
	data := templates.RecruitmentData{Shell: h.shell(r, "recruitment.title", "/recrutement")}
	offers, err := h.Gateway.Jobs(r.Context())
	if err != nil {
		data.Error = h.loadError(r, err)
	} else {
		for _, offer := range offers {
			if offer.IsActive {
				data.Offers = append(data.Offers, offer)
			}
		}
	}
	h.render(w, "recruitment", data)
}

// Offer renders a single job offer located by slug.
func (h *Handlers) Offer(w http.ResponseWriter, r *http.Request) {
	offer, ok := h.offerBySlug(w, r)
	if !ok {
		return
	}
	slug := chi.URLParam(r, "slug")
	data := templates.OfferData{
		Shell:    h.shell(r, "recruitment.title", "/recrutement/"+slug),
		Offer:    offer,
		ApplyURL: nav.Href(h.locale(r), "/recrutement/"+slug+"/postuler"),
	}
	data.Title = offer.Title
	h.render(w, "offer", data)
}

// ContentPage renders a CMS-backed static page (legal notice, privacy, terms).
func (h *Handlers) ContentPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.Content.Get(slug, h.locale(r))
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.loadError(r, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	data := templates.ContentData{
		Shell: h.shell(r, "site.name", "/pages/"+slug),
		Page:  page,
	}
	data.Title = page.Title
	h.render(w, "content", data)
}

// offerBySlug resolves a job offer from the public list; the backend has no
// single-offer endpoint.
func (h *Handlers) offerBySlug(w http.ResponseWriter, r *http.Request) (backend.JobOffer, bool) {
	slug := chi.URLParam(r, "slug")
	offers, err := h.Gateway.Jobs(r.Context())
	if err != nil {
		data := templates.RecruitmentData{Shell: h.shell(r, "recruitment.title", "/recrutement")}
		data.Error = h.loadError(r, err)
		h.render(w, "recruitment", data)
		return backend.JobOffer{}, false
	}
	for _, offer := range offers {
		if offer.Slug == slug && offer.IsActive {
			return offer, true
		}
	}
	h.NotFound(w, r)
	return backend.JobOffer{}, false
}
