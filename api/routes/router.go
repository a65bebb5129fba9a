package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/riwi/jobboard-backend/api/controllers"
	"github.com/riwi/jobboard-backend/api/middleware"
	"github.com/riwi/jobboard-backend/internal/access"
	"github.com/riwi/jobboard-backend/internal/applications"
	"github.com/riwi/jobboard-backend/internal/auth"
	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/internal/vacancies"
	"github.com/riwi/jobboard-backend/pkg/auth/session"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/metrics"
	"github.com/riwi/jobboard-backend/pkg/redis"
)

// RedisStore is the Redis surface the HTTP layer needs: readiness,
// idempotency replay and auth rate limiting. Pass nil when Redis is off.
type RedisStore interface {
	redis.Pinger
	redis.IdempotencyStore
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	RateLimitKey(scope string) string
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisStore RedisStore,
	sessions session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	authService auth.Service,
	registerService auth.RegisterService,
	vacancyService vacancies.Service,
	applicationService applications.Service,
	userService users.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.FrontendURL),
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

	authenticate := middleware.Auth(cfg.JWT, sessions, logg)
	allow := func(op access.Operation) func(http.Handler) http.Handler {
		return middleware.Authorize(op, logg)
	}
	idempotent := middleware.Idempotency(redisStore, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisStore))
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.With(allow(access.OpVacanciesListPublic)).Get("/vacancies/public", controllers.VacancyListActive(vacancyService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.Security.APIKey, logg))

		r.With(middleware.AuthRateLimit(registerPolicy, redisStore, logg), allow(access.OpAuthRegister)).
			Post("/auth/register", controllers.AuthRegister(registerService, cfg, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisStore, logg), allow(access.OpAuthLogin)).
			Post("/auth/login", controllers.AuthLogin(authService, cfg, logg))
		r.With(allow(access.OpAuthLogout)).
			Post("/auth/logout", controllers.AuthLogout(authService, cfg, logg))

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.With(allow(access.OpVacanciesCreate), idempotent).Post("/vacancies", controllers.VacancyCreate(vacancyService, logg))
			r.With(allow(access.OpVacanciesList)).Get("/vacancies", controllers.VacancyListActive(vacancyService, logg))
			r.With(allow(access.OpVacanciesGet)).Get("/vacancies/{id}", controllers.VacancyGet(vacancyService, logg))
			r.With(allow(access.OpVacanciesUpdate)).Patch("/vacancies/{id}", controllers.VacancyUpdate(vacancyService, logg))
			r.With(allow(access.OpVacanciesToggleActive)).Patch("/vacancies/{id}/toggle-active", controllers.VacancyToggleActive(vacancyService, logg))
			r.With(allow(access.OpVacanciesDelete)).Delete("/vacancies/{id}", controllers.VacancyDelete(vacancyService, logg))

			r.With(allow(access.OpApplicationsApply), idempotent).Post("/applications/apply", controllers.ApplicationApply(applicationService, logg))
			r.With(allow(access.OpApplicationsList)).Get("/applications", controllers.ApplicationList(applicationService, logg))
			r.With(allow(access.OpApplicationsListMine)).Get("/applications/my-applications", controllers.ApplicationListMine(applicationService, logg))
			r.With(allow(access.OpApplicationsListByVacancy)).Get("/applications/vacancy/{vacancyId}", controllers.ApplicationListByVacancy(applicationService, logg))
			r.With(allow(access.OpApplicationsRemove)).Delete("/applications/{id}", controllers.ApplicationRemove(applicationService, logg))
			r.With(allow(access.OpApplicationsUpdateStatus)).Patch("/applications/{id}/status", controllers.ApplicationUpdateStatus(applicationService, logg))

			r.With(allow(access.OpUsersList)).Get("/users", controllers.UserList(userService, logg))
			r.With(allow(access.OpUsersGet)).Get("/users/{id}", controllers.UserGet(userService, logg))
			r.With(allow(access.OpUsersUpdate)).Patch("/users/{id}", controllers.UserUpdate(userService, logg))
			r.With(allow(access.OpUsersDelete)).Delete("/users/{id}", controllers.UserDelete(userService, logg))
		})
	})

	return r
}
