package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/zencrm-backend/api/controllers"
	"github.com/angelmondragon/zencrm-backend/api/middleware"
	"github.com/angelmondragon/zencrm-backend/internal/auth"
	"github.com/angelmondragon/zencrm-backend/internal/contacts"
	"github.com/angelmondragon/zencrm-backend/internal/dashboard"
	"github.com/angelmondragon/zencrm-backend/internal/deals"
	"github.com/angelmondragon/zencrm-backend/internal/interactions"
	"github.com/angelmondragon/zencrm-backend/internal/tasks"
	"github.com/angelmondragon/zencrm-backend/internal/users"
	"github.com/angelmondragon/zencrm-backend/pkg/config"
	"github.com/angelmondragon/zencrm-backend/pkg/enums"
	"github.com/angelmondragon/zencrm-backend/pkg/logger"
	"github.com/angelmondragon/zencrm-backend/pkg/metrics"
	"github.com/angelmondragon/zencrm-backend/pkg/redis"
)

// Dependencies carries everything the router needs to mount the API surface.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	HTTPMetrics *metrics.HTTPMetrics

	AuthService      auth.Service
	RegisterService  auth.RegisterService
	UserService      users.Service
	ContactService   contacts.Service
	InteractionSvc   interactions.Service
	TaskService      tasks.Service
	DealService      deals.Service
	DashboardService dashboard.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"postgres": deps.DB,
			"redis":    pingerOrNil(deps.Redis),
		}))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.RegisterService, deps.AuthService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(deps.AuthService, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", controllers.UsersMe(deps.UserService, logg))
			r.With(middleware.RequireRole(string(enums.UserRoleAdmin), logg)).Get("/", controllers.UsersList(deps.UserService, logg))
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", controllers.ContactCreate(deps.ContactService, logg))
			r.Get("/", controllers.ContactList(deps.ContactService, logg))
			r.Get("/{contactID}", controllers.ContactGet(deps.ContactService, logg))
			r.Put("/{contactID}", controllers.ContactUpdate(deps.ContactService, logg))
			r.Delete("/{contactID}", controllers.ContactDelete(deps.ContactService, logg))
			r.Get("/{contactID}/interactions", controllers.InteractionListByContact(deps.InteractionSvc, logg))
		})

		r.Route("/interactions", func(r chi.Router) {
			r.Post("/", controllers.InteractionCreate(deps.InteractionSvc, logg))
			r.Get("/", controllers.InteractionList(deps.InteractionSvc, logg))
			r.Get("/{interactionID}", controllers.InteractionGet(deps.InteractionSvc, logg))
			r.Put("/{interactionID}", controllers.InteractionUpdate(deps.InteractionSvc, logg))
			r.Delete("/{interactionID}", controllers.InteractionDelete(deps.InteractionSvc, logg))
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", controllers.TaskCreate(deps.TaskService, logg))
			r.Get("/", controllers.TaskList(deps.TaskService, logg))
			r.Get("/{taskID}", controllers.TaskGet(deps.TaskService, logg))
			r.Put("/{taskID}", controllers.TaskUpdate(deps.TaskService, logg))
			r.Delete("/{taskID}", controllers.TaskDelete(deps.TaskService, logg))
		})

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", controllers.DealCreate(deps.DealService, logg))
			r.Get("/", controllers.DealList(deps.DealService, logg))
			r.Get("/{dealID}", controllers.DealGet(deps.DealService, logg))
			r.Put("/{dealID}", controllers.DealUpdate(deps.DealService, logg))
			r.Delete("/{dealID}", controllers.DealDelete(deps.DealService, logg))
		})

		r.Get("/dashboard/stats", controllers.DashboardStats(deps.DashboardService, logg))
	})

	return r
}

// pingerOrNil avoids handing a typed-nil redis client to the readiness probe.
func pingerOrNil(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
