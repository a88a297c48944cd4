package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/web/nav"
	"github.com/Hec8/aissia-security-sub000/internal/web/templates"
)

// ContactForm renders the empty contact form.
func (h *Handlers) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "contact", templates.ContactData{Shell: h.shell(r, "contact.title", "/contact")})
}

// ContactSubmit validates and forwards the contact form to the backend. A
// failure re-renders the form with the submitted values and an inline error.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	data := templates.ContactData{Shell: h.shell(r, "contact.title", "/contact")}
	if err := r.ParseForm(); err != nil {
		data.Error = data.T["form.error"]
		h.render(w, "contact", data)
		return
	}

	data.Form = templates.ContactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if data.Form.Name == "" || data.Form.Email == "" || data.Form.Subject == "" || data.Form.Message == "" {
		data.Error = data.T["form.required"]
		h.render(w, "contact", data)
		return
	}

	err := h.Gateway.SubmitContact(r.Context(), backend.ContactRequest{
		Name:    data.Form.Name,
		Email:   data.Form.Email,
		Phone:   data.Form.Phone,
		Subject: data.Form.Subject,
		Message: data.Form.Message,
	})
	if err != nil {
		data.Error = h.submitError(r, err)
		h.render(w, "contact", data)
		return
	}

	data.Success = true
	data.Form = templates.ContactForm{}
	h.render(w, "contact", data)
}

// QuoteForm renders the quote-request form with the service list; the
// ?service= query preselects an entry.
func (h *Handlers) QuoteForm(w http.ResponseWriter, r *http.Request) {
	data := templates.QuoteData{Shell: h.shell(r, "quote.title", "/devis")}
	data.Form.Service = r.URL.Query().Get("service")
	if services, err := h.Gateway.Services(r.Context()); err == nil {
		data.Services = services
	}
	h.render(w, "quote", data)
}

// QuoteSubmit forwards a quote request as a tagged contact message; the
// backend has no dedicated quote endpoint.
func (h *Handlers) QuoteSubmit(w http.ResponseWriter, r *http.Request) {
	data := templates.QuoteData{Shell: h.shell(r, "quote.title", "/devis")}
	if err := r.ParseForm(); err != nil {
		data.Error = data.T["form.error"]
		h.render(w, "quote", data)
		return
	}

	data.Form = templates.QuoteForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Company: strings.TrimSpace(r.PostFormValue("company")),
		Service: strings.TrimSpace(r.PostFormValue("service")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if services, err := h.Gateway.Services(r.Context()); err == nil {
		data.Services = services
	}
	if data.Form.Name == "" || data.Form.Email == "" || data.Form.Message == "" {
		data.Error = data.T["form.required"]
		h.render(w, "quote", data)
		return
	}

	subject := data.T["quote.title"]
	if data.Form.Service != "" {
		subject += " : " + data.Form.Service
	}
	message := data.Form.Message
	if data.Form.Company != "" {
		message = data.T["quote.company"] + " : " + data.Form.Company + "\n\n" + message
	}

	err := h.Gateway.SubmitContact(r.Context(), backend.ContactRequest{
		Name:    data.Form.Name,
		Email:   data.Form.Email,
		Phone:   data.Form.Phone,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		data.Error = h.submitError(r, err)
		h.render(w, "quote", data)
		return
	}

	data.Success = true
	data.Form = templates.QuoteForm{}
	h.render(w, "quote", data)
}

// ApplyForm renders the job-application form for an offer.
func (h *Handlers) ApplyForm(w http.ResponseWriter, r *http.Request) {
	offer, ok := h.offerBySlug(w, r)
	if !ok {
		return
	}
	data := templates.ApplyData{
		Shell: h.shell(r, "apply.title", "/recrutement/"+offer.Slug+"/postuler"),
		Offer: offer,
	}
	h.render(w, "apply", data)
}

// ApplySubmit forwards a job application as a tagged contact message.
func (h *Handlers) ApplySubmit(w http.ResponseWriter, r *http.Request) {
	offer, ok := h.offerBySlug(w, r)
	if !ok {
		return
	}
	data := templates.ApplyData{
		Shell: h.shell(r, "apply.title", "/recrutement/"+offer.Slug+"/postuler"),
		Offer: offer,
	}
	if err := r.ParseForm(); err != nil {
		data.Error = data.T["form.error"]
		h.render(w, "apply", data)
		return
	}

	data.Form = templates.ApplicationForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if data.Form.Name == "" || data.Form.Email == "" || data.Form.Message == "" {
		data.Error = data.T["form.required"]
		h.render(w, "apply", data)
		return
	}

	err := h.Gateway.SubmitContact(r.Context(), backend.ContactRequest{
		Name:    data.Form.Name,
		Email:   data.Form.Email,
		Phone:   data.Form.Phone,
		Subject: data.T["apply.title"] + " : " + offer.Title,
		Message: data.Form.Message,
	})
	if err != nil {
		data.Error = h.submitError(r, err)
		h.render(w, "apply", data)
		return
	}

	data.Success = true
	data.Form = templates.ApplicationForm{}
	h.render(w, "apply", data)
}

// NewsletterSubscribe handles the footer signup and redirects back to the
// originating page with a status flag.
func (h *Handlers) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	redirectTo := h.newsletterReturnPath(r)

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, withNewsletterFlag(redirectTo, "error"), http.StatusSeeOther)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	if _, err := mail.ParseAddress(email); err != nil {
		http.Redirect(w, r, withNewsletterFlag(redirectTo, "invalid"), http.StatusSeeOther)
		return
	}
	if err := h.Gateway.SubscribeNewsletter(r.Context(), email); err != nil {
		h.loadError(r, err)
		http.Redirect(w, r, withNewsletterFlag(redirectTo, "error"), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, withNewsletterFlag(redirectTo, "ok"), http.StatusSeeOther)
}

// submitError maps a form submission failure to the localized inline message,
// preferring the backend-provided text.
func (h *Handlers) submitError(r *http.Request, err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return h.loadError(r, err)
}

// newsletterReturnPath resolves the local page to bounce back to after a
// footer signup, defaulting to the locale home.
func (h *Handlers) newsletterReturnPath(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer != "" {
		if u, err := r.URL.Parse(referer); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return nav.Href(h.locale(r), "/")
}

func withNewsletterFlag(path, flag string) string {
	return path + "?newsletter=" + flag
}
