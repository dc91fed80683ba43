package auth

import (
	"net/http"
	"strings"

	"studyroom/config"
	"studyroom/infras/otel"
	"studyroom/internal/domains/auth/model/dto"
	"studyroom/internal/domains/auth/service"
	"studyroom/internal/views"
	"studyroom/shared/constant"
	"studyroom/shared/failure"
	"studyroom/shared/timezone"
	"studyroom/shared/validator"
	"studyroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formUsername = "username"
	formPassword = "password"

	pathDashboard = "/staff-dashboard"
	pathHome      = "/"

	loginTitle    = "Staff login"
	loginRejected = "Invalid username or password."
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	views   views.Renderer
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, views views.Renderer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		views:   views,
		otel:    otel,
	}
}

func (handler *Handler) Pages(router chi.Router) {
	router.Get("/staff-login", handler.LoginForm)
	router.Post("/staff-login", handler.LoginPage)
	router.Get("/logout", handler.Logout)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
	})
}

func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	handler.views.Render(w, r, http.StatusOK, views.PageStaffLogin, loginTitle, views.StaffLogin{})
}

// LoginPage signs staff in from the login form and sets the session cookie.
func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginPage")
	defer scope.End()

	r = r.WithContext(ctx)

	req := dto.LoginRequest{
		Username: r.PostFormValue(formUsername),
		Password: r.PostFormValue(formPassword),
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to sign staff in")
			handler.views.Render(w, r, failure.GetCode(err), views.PageError, "Error", views.Error{Message: failure.GetMessage(err)})

			return
		}

		page := views.StaffLogin{Username: strings.TrimSpace(req.Username), Error: loginRejected}
		handler.views.Render(w, r, http.StatusUnauthorized, views.PageStaffLogin, loginTitle, page)

		return
	}

	http.SetCookie(w, handler.sessionCookie(res.Token, res.MaxAge(timezone.Now())))

	scope.AddEvent("Staff signed in")
	response.Redirect(w, r, pathDashboard)
}

// Logout ends the session, clears the cookie and returns to the home page.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if cookie, err := r.Cookie(handler.cfg.Session.CookieName); err == nil {
		if err := handler.service.Logout(ctx, cookie.Value); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to end staff session")
		}
	}

	http.SetCookie(w, handler.sessionCookie(constant.Empty, -1))
	response.Redirect(w, r, pathHome)
}

// Login signs staff in for API use.
// @Summary Staff login
// @Description Exchanges staff credentials for a session token. Send it back as a Bearer token or the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.InvalidLogin)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	http.SetCookie(w, handler.sessionCookie(res.Token, res.MaxAge(timezone.Now())))

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    value,
		Path:     pathHome,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.cfg.Server.Env == constant.ServerEnvProduction,
		SameSite: http.SameSiteLaxMode,
	}
}
