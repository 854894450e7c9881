package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/mutuals/internal/outreach/service"
	"github.com/aussiebroadwan/mutuals/internal/outreach/store"
	"github.com/aussiebroadwan/mutuals/pkg/httpx"
	"github.com/aussiebroadwan/mutuals/pkg/metrics"
	"github.com/aussiebroadwan/mutuals/pkg/mutualsdk"
	"github.com/aussiebroadwan/mutuals/pkg/slogx"

	_ "github.com/aussiebroadwan/mutuals/api/outreach" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits groups the limiter profiles the router hands out per route.
type RateLimits struct {
	Strict   httpx.RateLimitConfig // register, login
	Moderate httpx.RateLimitConfig // discovery, import, generation
	Lenient  httpx.RateLimitConfig // CRUD
	Public   httpx.RateLimitConfig // probes, metrics
}

// DefaultRateLimits reads each profile's RATELIMIT_{STRICT,MODERATE,LENIENT,PUBLIC}_*
// overrides over the per-minute defaults.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.LimitFromEnv("STRICT", httpx.PerMinute(5)),
		Moderate: httpx.LimitFromEnv("MODERATE", httpx.PerMinute(20)),
		Lenient:  httpx.LimitFromEnv("LENIENT", httpx.PerMinute(100)),
		Public:   httpx.LimitFromEnv("PUBLIC", httpx.PerMinute(1000)),
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	Limits       RateLimits
	CookieSecure bool

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService       *service.UserService
	SessionService    *service.SessionService
	PreferenceService *service.PreferenceService
	JobService        *service.JobService
	EmployeeService   *service.EmployeeService
	MutualService     *service.MutualService
	MessageService    *service.MessageService
	StatsService      *service.StatsService
	DiscoveryService  *service.DiscoveryService
	ToolsService      *service.ToolsService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		Limits:       DefaultRateLimits(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// slogx must come first: metrics reads the matched pattern off the
	// request the mux sees, which is the one slogx hands down.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUser()
	r.registerPreferences()
	r.registerJobs()
	r.registerMutuals()
	r.registerMessages()
	r.registerStats()
	r.registerTools()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Mutuals API
//	@version		0.1.0
//	@description	Track job applications, the employees at each company and the mutual connections
//	@description	who can introduce you, then draft and follow up on introduction requests.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/mutuals
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						mutuals_session
//	@description				Opaque session token set by register and login. Also accepted as "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with session authentication and a per-user limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.SessionService, mutualsdk.SessionCookie),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
		CookieSecure:   r.CookieSecure,
	}

	// Register and login are rate limited by IP + username to slow down guessing
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIPAndJSONField(r.Limits.Strict, "username"),
		),
	)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.Limits.Strict, "username"),
		),
	)
	r.Mux.Handle("POST /api/auth/logout", r.secured(h.HandleLogout, r.Limits.Lenient))
}

func (r *Router) registerUser() {
	h := &UserHandler{UserService: r.UserService}

	me := r.secured(h.HandleGet, r.Limits.Lenient)
	r.Mux.Handle("GET /api/auth/me", me)
	r.Mux.Handle("GET /api/user", me)
	r.Mux.Handle("PATCH /api/user", r.secured(h.HandleUpdate, r.Limits.Lenient))

	r.Mux.Handle("POST /api/linkedin/connect", r.secured(h.HandleConnectLinkedIn, r.Limits.Lenient))
	r.Mux.Handle("DELETE /api/linkedin/disconnect", r.secured(h.HandleDisconnectLinkedIn, r.Limits.Lenient))
}

func (r *Router) registerPreferences() {
	h := &PreferencesHandler{PreferenceService: r.PreferenceService}

	r.Mux.Handle("GET /api/job-preferences", r.secured(h.HandleGet, r.Limits.Lenient))
	r.Mux.Handle("POST /api/job-preferences", r.secured(h.HandleSave, r.Limits.Lenient))
}

func (r *Router) registerJobs() {
	h := &JobsHandler{
		JobService:       r.JobService,
		EmployeeService:  r.EmployeeService,
		DiscoveryService: r.DiscoveryService,
	}

	r.Mux.Handle("GET /api/jobs", r.secured(h.HandleList, r.Limits.Lenient))
	r.Mux.Handle("POST /api/jobs", r.secured(h.HandleCreate, r.Limits.Lenient))
	r.Mux.Handle("GET /api/jobs/{id}", r.secured(h.HandleGet, r.Limits.Lenient))
	r.Mux.Handle("DELETE /api/jobs/{id}", r.secured(h.HandleDelete, r.Limits.Lenient))

	r.Mux.Handle("GET /api/jobs/{id}/employees", r.secured(h.HandleListEmployees, r.Limits.Lenient))
	r.Mux.Handle("POST /api/jobs/{id}/employees", r.secured(h.HandleCreateEmployee, r.Limits.Lenient))
	r.Mux.Handle("GET /api/employees/{id}", r.secured(h.HandleGetEmployee, r.Limits.Lenient))

	// Both hit the LinkedIn directory, keep them on the moderate profile
	r.Mux.Handle("POST /api/jobs/import", r.secured(h.HandleImport, r.Limits.Moderate))
	r.Mux.Handle("POST /api/jobs/{id}/discover", r.secured(h.HandleDiscover, r.Limits.Moderate))
}

func (r *Router) registerMutuals() {
	h := &MutualsHandler{MutualService: r.MutualService}

	list := r.secured(h.HandleList, r.Limits.Lenient)
	create := r.secured(h.HandleCreate, r.Limits.Lenient)
	get := r.secured(h.HandleGet, r.Limits.Lenient)
	update := r.secured(h.HandleUpdate, r.Limits.Lenient)

	for _, base := range []string{"/api/mutuals", "/api/mutual-connections"} {
		r.Mux.Handle("GET "+base, list)
		r.Mux.Handle("POST "+base, create)
		r.Mux.Handle("GET "+base+"/{id}", get)
		r.Mux.Handle("PATCH "+base+"/{id}", update)
	}

	r.Mux.Handle("GET /api/mutuals/{id}/template", r.secured(h.HandleTemplate, r.Limits.Lenient))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessageService: r.MessageService}

	r.Mux.Handle("GET /api/messages", r.secured(h.HandleList, r.Limits.Lenient))
	r.Mux.Handle("POST /api/messages", r.secured(h.HandleCreate, r.Limits.Lenient))
	r.Mux.Handle("GET /api/messages/{id}", r.secured(h.HandleGet, r.Limits.Lenient))
	r.Mux.Handle("PATCH /api/messages/{id}", r.secured(h.HandleUpdate, r.Limits.Lenient))
	r.Mux.Handle("DELETE /api/messages/{id}", r.secured(h.HandleDelete, r.Limits.Lenient))
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	stats := r.secured(h.HandleStats, r.Limits.Lenient)
	r.Mux.Handle("GET /api/stats", stats)
	r.Mux.Handle("GET /api/dashboard/stats", stats)
	r.Mux.Handle("GET /api/stats/activity", r.secured(h.HandleActivity, r.Limits.Lenient))
}

func (r *Router) registerTools() {
	h := &ToolsHandler{ToolsService: r.ToolsService}

	r.Mux.Handle("POST /api/tools/resume", r.secured(h.HandleResume, r.Limits.Moderate))
	r.Mux.Handle("POST /api/tools/cover-letter", r.secured(h.HandleCoverLetter, r.Limits.Moderate))
	r.Mux.Handle("POST /api/tools/linkedin-profile", r.secured(h.HandleLinkedInProfile, r.Limits.Moderate))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.Limits.Public),
		),
	)
	r.Mux.Handle("GET /metrics",
		httpx.Chain(metrics.Handler(),
			httpx.RateLimitByIP(r.Limits.Public),
		),
	)
}
