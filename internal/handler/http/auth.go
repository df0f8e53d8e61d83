package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserFromContext(r.Context()); ok {
		redirect(w, r, "/")
		return
	}

	h.renderLogin(w, r, http.StatusOK, models.LoginForm{}, nil, r.URL.Query().Get("next"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserFromContext(ctx); ok {
		redirect(w, r, "/")
		return
	}

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.LoginForm{
		Username: models.NormalizeUsername(r.PostForm.Get("username")),
		Password: r.PostForm.Get("password"),
		Remember: formBool(r.PostForm.Get("remember")),
	}
	next := r.Form.Get("next")

	if errs := form.Validate(); errs.HasErrors() {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, form, errs, next)
		return
	}

	user, err := h.services.AuthService.Verify(ctx, form.Username, form.Password)
	if errors.Is(err, service.ErrAuthenticationFailed) {
		log.Info().Str("username", form.Username).Msg("login failed")
		h.renderLogin(w, r, http.StatusUnauthorized, form, nil, next,
			models.Flash{Category: models.FlashDanger, Message: models.MsgLoginFailed})
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	session, err := h.services.SessionService.Issue(ctx, user, form.Remember)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("session creation failed")
		h.renderError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	redirect(w, r, safeNext(next))
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, form models.LoginForm, errs models.FormErrors, next string, flashes ...models.Flash) {
	h.render(w, r, status, models.View{
		Page:    "login",
		Title:   "Log in",
		Flashes: flashes,
		Form:    form,
		Errors:  errs,
		Data:    models.LoginPage{Next: safeNext(next)},
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	redirect(w, r, "/")
}

func (h *Handler) registrationForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserFromContext(r.Context()); ok {
		redirect(w, r, "/")
		return
	}

	h.renderRegistration(w, r, http.StatusOK, models.RegistrationForm{}, nil)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserFromContext(ctx); ok {
		redirect(w, r, "/")
		return
	}

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.RegistrationForm{
		Username:         models.NormalizeUsername(r.PostForm.Get("username")),
		Password:         r.PostForm.Get("password"),
		ApprovedPassword: r.PostForm.Get("approved_password"),
	}

	errs := form.Validate()
	if _, failed := errs["username"]; !failed {
		taken, err := h.services.AuthService.UsernameTaken(ctx, form.Username)
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if taken {
			errs.Add("username", models.MsgUsernameTaken)
		}
	}
	if errs.HasErrors() {
		h.renderRegistration(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	_, err := h.services.AuthService.Register(ctx, form.Username, form.Password)
	if fieldErrs, ok := validationErrors(err); ok {
		h.renderRegistration(w, r, http.StatusUnprocessableEntity, form, fieldErrs)
		return
	}
	if errors.Is(err, service.ErrDuplicateUsername) {
		// lost a race with a concurrent registration of the same name
		log.Info().Str("username", form.Username).Msg("duplicate username on registration")
		h.renderRegistration(w, r, http.StatusConflict, form,
			models.FormErrors{"username": {models.MsgUsernameTaken}},
			models.Flash{Category: models.FlashDanger, Message: models.MsgUsernameTaken})
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.setFlash(w, models.FlashSuccess, models.MsgSignedUp)
	redirect(w, r, "/")
}

func (h *Handler) renderRegistration(w http.ResponseWriter, r *http.Request, status int, form models.RegistrationForm, errs models.FormErrors, flashes ...models.Flash) {
	h.render(w, r, status, models.View{
		Page:    "register",
		Title:   "Sign up",
		Flashes: flashes,
		Form:    form,
		Errors:  errs,
	})
}
