package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/config"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/handler"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/logging"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/mail"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/metrics"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/notify"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/ratelimit"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/service"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/storage"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/pkg/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// Background jobs (janitors, notification worker) stop with bgCtx.
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	settingsRepo := repository.NewPgSettingsRepository(pool)

	// Contact form: fixed window per client, optional mail notification.
	contactLimiter := ratelimit.NewFixedWindow(cfg.ContactRateLimit, cfg.ContactRateWindow)
	contactLimiter.StartJanitor(bgCtx, cfg.ContactRateWindow)

	contactOpts := []service.ContactOption{service.WithContactMetrics(m)}
	var worker *notify.Worker
	if cfg.MailEnabled() {
		mailer := mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		worker = notify.NewWorker(mailer, cfg.ContactNotifyTo, notify.WithMetrics(m))
		worker.Start()
		contactOpts = append(contactOpts, service.WithDispatcher(worker))
		slog.Info("contact notifications enabled", "recipients", len(cfg.ContactNotifyTo))
	} else {
		slog.Warn("contact notifications disabled: SMTP_HOST, SMTP_FROM or CONTACT_NOTIFY_TO not set")
	}

	contactService := service.NewContactService(contactLimiter, contactRepo, contactOpts...)
	settingsService := service.NewSettingsService(settingsRepo)
	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(sessionRepo)

	go purgeSessions(bgCtx, sessionService, time.Hour)

	clientKey := handler.ForwardedForKey(cfg.TrustedProxyCount)
	loginLimiter := handler.NewRateLimiter(cfg.LoginRatePerMinute, clientKey)
	loginLimiter.StartCleanup(bgCtx, 5*time.Minute)

	store := storage.NewLocalStorage(cfg.UploadDir, "/uploads")

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, clientKey)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	authHandler := handler.NewAuthHandler(authService, sessionService, userRepo, handler.AuthConfig{
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		BackendURL:         cfg.BackendURL,
		FrontendURL:        cfg.FrontendURL,
		SecureCookies:      cfg.IsProduction(),
	})
	uploadHandler := handler.NewUploadHandler(store)
	providersHandler := handler.NewProvidersHandler(cfg.GoogleEnabled())
	legalHandler := handler.NewLegalHandler(cfg.LegalDocsDir)

	projects := handler.NewContentHandler[model.Project]("project", repository.NewPgProjectRepository(pool), handler.PrepareProject)
	blogs := handler.NewContentHandler[model.Blog]("blog", repository.NewPgBlogRepository(pool), handler.PrepareBlog)
	reviews := handler.NewContentHandler[model.Review]("review", repository.NewPgReviewRepository(pool), handler.PrepareReview)
	services := handler.NewContentHandler[model.Service]("service", repository.NewPgServiceRepository(pool), handler.PrepareService)
	skills := handler.NewContentHandler[model.Skill]("skill", repository.NewPgSkillRepository(pool), handler.PrepareSkill)
	team := handler.NewContentHandler[model.TeamMember]("team member", repository.NewPgTeamMemberRepository(pool), handler.PrepareTeamMember)

	requireAuth := auth.RequireAuth(sessionService)
	admin := func(fn http.HandlerFunc) http.Handler { return requireAuth(fn) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /metrics", metrics.Handler(reg))

	// Contact form and site settings
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.Handle("GET /api/contact", admin(contactHandler.List))
	mux.Handle("PATCH /api/contact/{id}", admin(contactHandler.SetHandled))
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.Handle("PUT /api/settings", admin(settingsHandler.Put))

	// Sessions
	mux.Handle("POST /api/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.Handle("GET /api/me", admin(authHandler.Me))
	mux.HandleFunc("GET /api/auth/providers", providersHandler.Providers)
	mux.HandleFunc("GET /api/auth/google/login", authHandler.GoogleLoginURL)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleCallback)

	mux.HandleFunc("GET /api/legal/{doc}", legalHandler.Legal)

	// Site content: public reads, admin writes
	for prefix, c := range map[string]contentRoutes{
		"/api/projects": projects,
		"/api/blogs":    blogs,
		"/api/services": services,
		"/api/skills":   skills,
		"/api/team":     team,
	} {
		mux.HandleFunc("GET "+prefix, c.List)
		mux.Handle("POST "+prefix, admin(c.Create))
		mux.Handle("PUT "+prefix+"/{id}", admin(c.Update))
		mux.Handle("DELETE "+prefix+"/{id}", admin(c.Delete))
	}
	// Visitors may leave reviews.
	mux.HandleFunc("GET /api/reviews", reviews.List)
	mux.HandleFunc("POST /api/reviews", reviews.Create)
	mux.Handle("PUT /api/reviews/{id}", admin(reviews.Update))
	mux.Handle("DELETE /api/reviews/{id}", admin(reviews.Delete))

	// Uploads
	mux.Handle("POST /api/uploads", admin(uploadHandler.Upload))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.BaseDir()))))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.RequestLogger(m)(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if worker != nil {
		if err := worker.Close(ctx); err != nil {
			slog.Warn("notification queue not drained", "error", err)
		}
	}
	stopBackground()
	slog.Info("server stopped")
}

// contentRoutes is the method set shared by every ContentHandler instance.
type contentRoutes interface {
	List(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func purgeSessions(ctx context.Context, sessions *service.SessionService, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.PurgeExpired(ctx)
			if err != nil {
				slog.Error("purge expired sessions failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired sessions purged", "count", n)
			}
		}
	}
}
