// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, sessions,
// CORS, security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Cookie sessions and security headers suited to a server-rendered app
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/auth"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/config"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/handlers"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/http/middleware"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/services"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/web"
	"github.com/Neha-N8242/HR-Insight-Dashboard/internal/xlsx"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), cookie sessions,
// rate limiting, CORS and security headers, health and metrics endpoints,
// and then mounts the page and form routes.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip (templates compress well; PDFs are left alone by size heuristics)
//  7. Metrics
//  8. Cookie sessions (before anything that reads the session)
//  9. Rate limiter (per employee/IP)
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, predictor services.Predictor, mirror xlsx.Mirror, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(web.Templates())

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB; the largest form is a feedback textarea)
	r.Use(limitBody(1 << 20))

	// 6) Compress HTML responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Cookie-backed sessions
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		Secure:   cfg.Session.Secure,
		HttpOnly: cfg.Session.HTTPOnly,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(auth.SessionName, store))

	// 9) Token-bucket rate limiter. The key resolver reads the session
	// (mounted in step 8), so logged-in employees and applicant sessions
	// get their own buckets; anonymous traffic shares an IP bucket.
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByEmployeeOrIP(auth.CurrentEmployee))
	r.Use(rl.Handler())

	// 10) CORS posture. The app is same-origin; CORS only matters when a
	// deployment fronts it from another host, and then only for an explicit
	// allowlist because the session cookie requires credentialed requests.
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS).
	// NoStore keeps dashboards, predictions, and transcripts out of caches.
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Page not found.")
	})
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed.")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db/pipeline/mirror
	mirrorErr := func(err error) {
		log.Error().Err(err).Msg("xlsx mirror append failed")
	}
	profileSvc := &services.ProfileService{DB: db, Pipeline: predictor, Mirror: mirror, MirrorErr: mirrorErr}
	taskSvc := &services.TaskService{DB: db}
	chatSvc := &services.ChatService{DB: db}
	authSvc := &services.AuthService{DB: db}
	appSvc := &services.ApplicationService{DB: db, Mirror: mirror, MirrorErr: mirrorErr}

	h := handlers.New(profileSvc, taskSvc, chatSvc, authSvc, appSvc)

	// Pages
	r.GET("/", h.Welcome)
	r.GET("/employee_login_page", h.LoginPage)
	r.GET("/forgot_password", h.ForgotPasswordPage)
	r.GET("/set_password_page", h.SetPasswordPage)
	r.GET("/employee/dashboard", h.Dashboard)
	r.GET("/applicant", h.ApplicantEntry)
	r.GET("/applicant/portal", h.ApplicantPortal)

	// Forms
	r.POST("/employee_login", h.EmployeeLogin)
	r.POST("/recover_password", h.RecoverPassword)
	r.POST("/set_password", h.SetPassword)
	r.POST("/save_profile", h.SaveProfile)
	r.POST("/add_task", h.AddTask)
	r.POST("/complete_task", h.CompleteTask)
	r.POST("/chat", h.Chat)
	r.POST("/applicant_chat", h.ApplicantChat)
	r.POST("/download_pdf", h.DownloadPDF)
	r.POST("/submit_application", h.SubmitApplication)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
