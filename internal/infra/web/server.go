package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"membership-credits/internal/domain/ports/repository"
	"membership-credits/internal/infra/logging"
	"membership-credits/internal/infra/metrics"
	"membership-credits/internal/usecase"
)

type Server struct {
	credits  usecase.CreditsUseCase
	purchase usecase.PurchaseUseCase
	invoices repository.InvoiceRepository
	users    repository.UserRepository
	sessions repository.SessionRepository
	settings repository.SettingsRepository
	auth     *AuthManager
	menu     *Menu
	dev      bool
	log      *zerolog.Logger
}

func NewServer(
	credits usecase.CreditsUseCase,
	purchase usecase.PurchaseUseCase,
	invoices repository.InvoiceRepository,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	settings repository.SettingsRepository,
	auth *AuthManager,
	menu *Menu,
	dev bool,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		credits:  credits,
		purchase: purchase,
		invoices: invoices,
		users:    users,
		sessions: sessions,
		settings: settings,
		auth:     auth,
		menu:     menu,
		dev:      dev,
		log:      logger,
	}
}

// Routes builds the router: member pages behind the session middleware, the
// admin settings API behind bearer auth, plus health and metrics.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.Get("/credits", s.handleHistory)
		r.Get("/credits/add", s.handleAddForm)
		r.Post("/credits/add", s.handleAddSubmit)
		r.Get("/pay/{secureID}", s.handlePay)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.auth.Middleware)
		r.Get("/settings/credits", s.handleSettingsGet)
		r.Put("/settings/credits", s.handleSettingsPut)
	})

	if s.dev {
		// Dev-only stand-in for the host login flow: mints a session cookie.
		r.Post("/dev/login", s.handleDevLogin)
	}

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.WithTraceID(r.Context(), uuid.NewString())
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		metrics.ObserveHTTPRequest(route, r.Method, rec.status, float64(elapsed.Milliseconds()))
		logging.With(ctx, s.log).Debug().
			Str("method", r.Method).Str("route", route).
			Int("status", rec.status).Dur("elapsed", elapsed).
			Msg("http request")
	})
}
