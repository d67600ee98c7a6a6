package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/kioskhub/docs"
	authhandlers "github.com/GlebRadaev/kioskhub/internal/handlers/auth"
	kioskhandlers "github.com/GlebRadaev/kioskhub/internal/handlers/kiosks"
	sessionhandlers "github.com/GlebRadaev/kioskhub/internal/handlers/sessions"
	withdrawalhandlers "github.com/GlebRadaev/kioskhub/internal/handlers/withdrawals"
	"github.com/GlebRadaev/kioskhub/internal/service"
	"github.com/GlebRadaev/kioskhub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type KioskHandler interface {
	ListKiosks(w http.ResponseWriter, r *http.Request)
	ListAvailableKiosks(w http.ResponseWriter, r *http.Request)
	GetKiosk(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ReleaseCharger(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	KioskHandler      KioskHandler
	SessionHandler    SessionHandler
	WithdrawalHandler WithdrawalHandler
	TokenValidator    auth.TokenValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		KioskHandler:      kioskhandlers.New(s.KioskService),
		SessionHandler:    sessionhandlers.New(s.SessionService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		TokenValidator:    s.TokenValidator,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional(h.TokenValidator))
			r.Route("/kiosks", func(r chi.Router) {
				r.Get("/", h.KioskHandler.ListKiosks)
				r.Get("/available", h.KioskHandler.ListAvailableKiosks)
				r.Get("/{kioskID}", h.KioskHandler.GetKiosk)
				r.Post("/{kioskID}/sessions", h.SessionHandler.Open)
			})
			r.Route("/sessions/{sessionID}", func(r chi.Router) {
				r.Get("/", h.SessionHandler.Get)
				r.Delete("/", h.SessionHandler.Close)
				r.Post("/reload", h.SessionHandler.Reload)
				r.Post("/select", h.SessionHandler.Select)
				r.Post("/cancel", h.SessionHandler.Cancel)
				r.Post("/confirm", h.SessionHandler.Confirm)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.With(auth.Required(h.TokenValidator)).Get("/withdrawals", h.WithdrawalHandler.GetWithdrawals)
		})

		r.With(auth.Required(h.TokenValidator)).Post("/chargers/{chargerID}/release", h.WithdrawalHandler.ReleaseCharger)
	})

	return r
}
