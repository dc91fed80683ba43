package middleware

import (
	"context"
	"net/http"
	"strings"

	"studyroom/config"
	"studyroom/infras/otel"
	authService "studyroom/internal/domains/auth/service"
	"studyroom/shared/constant"
	"studyroom/shared/failure"
	"studyroom/transport/http/response"
)

const (
	bearerPrefix   = "Bearer "
	pathStaffLogin = "/staff-login"
)

// Staff resolves the staff session carried by a request, from the session cookie
// or a bearer token.
type Staff interface {
	Identify(next http.Handler) http.Handler
	StaffGate(next http.Handler) http.Handler
	StaffAPI(next http.Handler) http.Handler
}

type staffImpl struct {
	auth authService.Auth
	otel otel.Otel
	cfg  *config.Config
}

func NewStaffMiddleware(auth authService.Auth, otel otel.Otel, cfg *config.Config) Staff {
	return &staffImpl{
		auth: auth,
		otel: otel,
		cfg:  cfg,
	}
}

// Identify attaches the signed-in staff member when there is one and never blocks.
func (m *staffImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, err := m.authenticate(r); err == nil {
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// StaffGate sends visitors without a live session to the login page.
func (m *staffImpl) StaffGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := m.authenticate(r)
		if err != nil {
			response.Redirect(w, r, pathStaffLogin)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffAPI answers 401 for requests without a live session.
func (m *staffImpl) StaffAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := m.authenticate(r)
		if err != nil {
			response.WithError(w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *staffImpl) authenticate(r *http.Request) (context.Context, error) {
	ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "staff.middleware")
	defer scope.End()

	token := m.token(r)
	if token == constant.Empty {
		return nil, failure.LoginRequired
	}

	session, err := m.auth.Authenticate(ctx, token)
	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			scope.TraceError(err)
		}

		return nil, err
	}

	scope.SetAttribute("staff.username", session.Username)

	ctx = context.WithValue(r.Context(), constant.ContextKeyUserID, session.Username)
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, session.ID)

	return ctx, nil
}

func (m *staffImpl) token(r *http.Request) string {
	if cookie, err := r.Cookie(m.cfg.Session.CookieName); err == nil && cookie.Value != constant.Empty {
		return cookie.Value
	}

	if header := r.Header.Get(constant.RequestHeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return constant.Empty
}
