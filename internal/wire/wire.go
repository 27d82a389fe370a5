package wire

import (
	"net/http"

	"wedding-planner/internal/adaptor"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/middleware"
	"wedding-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes on top of repo
func Wiring(repo *repository.Repository, issuer *auth.TokenIssuer, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, issuer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, issuer, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	issuer *auth.TokenIssuer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, issuer, logger)
	wireEvent(r, handler.Event, issuer, logger)
	wireVendor(r, handler.Vendor, issuer, logger)
	wireBooking(r, handler.Booking, issuer, logger)
	wireContact(r, handler.Contact, issuer, logger)
	wireApplication(r, handler.Application, issuer, logger)
	wireAdmin(r, handler.Admin, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// userOnly authenticates the bearer token and insists on a couple principal.
func userOnly(issuer auth.Verifier, log *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Authenticate(issuer, log),
		middleware.RequireUser(log),
	}
}

func adminOnly(issuer auth.Verifier, log *zap.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Authenticate(issuer, log),
		middleware.RequireAdmin(log),
	}
}
