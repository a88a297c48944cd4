package ui

import (
	"errors"
	"log"
	"net/http"

	custommw "github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/middleware"
	"github.com/Hec8/aissia-security-sub000/internal/admin/profile"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// ProfilePage shows the admin identity fetched from the backend.
func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	data := templates.ProfileData{Shell: h.shell("Profil", "profile")}

	admin, err := h.Profile.Me(r.Context(), token)
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		log.Printf("profile: me failed: %v", err)
		data.Error = flashMessage("load")
		h.render(w, "profile", data)
		return
	}
	h.setAdminName(admin.Name)
	data.Shell = h.shell("Profil", "profile")
	data.Admin = *admin
	h.render(w, "profile", data)
}

// ProfileUpdate saves name/email changes and an optional new password.
func (h *Handlers) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	token := custommw.TokenFromContext(r.Context())

	form := profile.Form{
		Name:                 r.PostFormValue("name"),
		Email:                r.PostFormValue("email"),
		Password:             r.PostFormValue("password"),
		PasswordConfirmation: r.PostFormValue("password_confirmation"),
	}

	data := templates.ProfileData{
		Shell: h.shell("Profil", "profile"),
		Admin: backend.Admin{Name: form.Name, Email: form.Email},
	}

	admin, err := h.Profile.Update(r.Context(), token, form)
	if err != nil {
		if custommw.RedirectOnUnauthorized(w, r, h.Tokens, h.LoginPath, err) {
			return
		}
		switch {
		case errors.Is(err, profile.ErrPasswordMismatch):
			data.Error = "La confirmation ne correspond pas au mot de passe."
		default:
			log.Printf("profile: update failed: %v", err)
			data.Error = flashMessage("save")
		}
		h.render(w, "profile", data)
		return
	}

	h.setAdminName(admin.Name)
	data.Shell = h.shell("Profil", "profile")
	data.Admin = *admin
	data.Message = "Profil mis à jour."
	h.render(w, "profile", data)
}
