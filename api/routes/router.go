package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/venturehub/venturehub-backend/api/controllers"
	"github.com/venturehub/venturehub-backend/api/middleware"
	"github.com/venturehub/venturehub-backend/internal/adminops"
	"github.com/venturehub/venturehub-backend/internal/applications"
	"github.com/venturehub/venturehub-backend/internal/auth"
	"github.com/venturehub/venturehub-backend/internal/connections"
	"github.com/venturehub/venturehub-backend/internal/favorites"
	"github.com/venturehub/venturehub-backend/internal/investors"
	"github.com/venturehub/venturehub-backend/internal/manufacturers"
	"github.com/venturehub/venturehub-backend/internal/messages"
	"github.com/venturehub/venturehub-backend/internal/startups"
	"github.com/venturehub/venturehub-backend/pkg/auth/session"
	"github.com/venturehub/venturehub-backend/pkg/config"
	"github.com/venturehub/venturehub-backend/pkg/db"
	"github.com/venturehub/venturehub-backend/pkg/enums"
	"github.com/venturehub/venturehub-backend/pkg/logger"
	"github.com/venturehub/venturehub-backend/pkg/metrics"
	"github.com/venturehub/venturehub-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Services groups the domain services the router exposes.
type Services struct {
	Auth          auth.Service
	Register      auth.RegisterService
	Startups      startups.Service
	Applications  applications.Service
	Connections   connections.Service
	Favorites     favorites.Service
	Investors     investors.Service
	Manufacturers manufacturers.Service
	Messages      messages.Service
	Admin         adminops.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions sessionManager,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		roleRoutes := []struct {
			path string
			role enums.Role
		}{
			{"startup", enums.RoleStartup},
			{"investor", enums.RoleInvestor},
			{"manufacturer", enums.RoleManufacturer},
		}
		for _, rr := range roleRoutes {
			role := rr.role
			r.Route("/"+rr.path, func(r chi.Router) {
				r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, role, logg))
				r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(svcs.Register, svcs.Auth, role, logg))
			})
		}
		r.Post("/logout", controllers.AuthLogout(sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(sessions, cfg.JWT, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, enums.RoleAdmin, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/startups", func(r chi.Router) {
			r.Get("/", controllers.StartupBrowse(svcs.Startups, logg))

			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireRole(string(enums.RoleStartup), logg))
				r.Get("/", controllers.StartupMe(svcs.Startups, logg))
				r.Put("/", controllers.StartupUpdate(svcs.Startups, logg))
				r.Route("/applications", func(r chi.Router) {
					r.Get("/", controllers.StartupApplications(svcs.Applications, logg))
					r.Post("/", controllers.ApplicationsApply(svcs.Applications, logg))
					r.Get("/{applicationId}", controllers.ApplicationDetail(svcs.Applications, logg))
					r.Delete("/{applicationId}", controllers.ApplicationDelete(svcs.Applications, logg))
				})
				r.Route("/connections", func(r chi.Router) {
					r.Get("/", controllers.StartupConnections(svcs.Connections, logg))
					r.Post("/{connectionId}/accept", controllers.ConnectionAccept(svcs.Connections, logg))
					r.Post("/{connectionId}/reject", controllers.ConnectionReject(svcs.Connections, logg))
					r.Post("/{connectionId}/unfriend", controllers.ConnectionUnfriend(svcs.Connections, logg))
				})
			})

			r.Get("/{startupId}", controllers.StartupDetail(svcs.Startups, logg))
		})

		r.Route("/investors", func(r chi.Router) {
			r.Get("/", controllers.InvestorList(svcs.Investors, logg))

			r.Route("/me", func(r chi.Router) {
				r.Use(middleware.RequireRole(string(enums.RoleInvestor), logg))
				r.Get("/", controllers.InvestorProfile(svcs.Investors, logg))
				r.Put("/", controllers.InvestorProfileUpdate(svcs.Investors, logg))
				r.Route("/applications", func(r chi.Router) {
					r.Get("/", controllers.InvestorApplications(svcs.Applications, logg))
					r.Get("/{applicationId}", controllers.ApplicationDetail(svcs.Applications, logg))
					r.Post("/{applicationId}/decision", controllers.ApplicationDecision(svcs.Applications, logg))
				})
				r.Route("/favorites", func(r chi.Router) {
					r.Get("/", controllers.FavoriteList(svcs.Favorites, logg))
					r.Post("/{startupId}/toggle", controllers.FavoriteToggle(svcs.Favorites, logg))
				})
			})
		})

		r.Route("/manufacturers/me", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.RoleManufacturer), logg))
			r.Get("/", controllers.ManufacturerProfile(svcs.Manufacturers, logg))
			r.Put("/", controllers.ManufacturerProfileUpdate(svcs.Manufacturers, logg))
			r.Route("/connections", func(r chi.Router) {
				r.Get("/", controllers.ManufacturerConnections(svcs.Connections, logg))
				r.Post("/", controllers.ManufacturerConnect(svcs.Connections, logg))
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/inbox", controllers.MessageInbox(svcs.Messages, logg))
			r.Get("/sent", controllers.MessageSent(svcs.Messages, logg))
			r.Get("/unread-count", controllers.MessageUnreadCount(svcs.Messages, logg))
			r.Post("/", controllers.MessageCompose(svcs.Messages, logg))
			r.Get("/{messageId}", controllers.MessageDetail(svcs.Messages, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
		r.Get("/stats", controllers.AdminStats(svcs.Admin, logg))
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminUsers(svcs.Admin, logg))
			r.Get("/{userId}", controllers.AdminUserDetail(svcs.Admin, logg))
			r.Delete("/{userId}", controllers.AdminUserDelete(svcs.Admin, logg))
		})
		r.Route("/startups", func(r chi.Router) {
			r.Get("/", controllers.AdminStartups(svcs.Admin, logg))
			r.Post("/{startupId}/approve", controllers.AdminStartupApprove(svcs.Admin, logg))
			r.Post("/{startupId}/reject", controllers.AdminStartupReject(svcs.Admin, logg))
		})
		r.Get("/applications", controllers.AdminApplications(svcs.Admin, logg))
		r.Get("/connections", controllers.AdminConnections(svcs.Admin, logg))
	})

	return r
}
