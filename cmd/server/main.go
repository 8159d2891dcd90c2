package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/atelier/backend/internal/handler"
	"github.com/atelier/backend/internal/logging"
	"github.com/atelier/backend/internal/notify"
	"github.com/atelier/backend/internal/repository"
	"github.com/atelier/backend/internal/service"
	"github.com/atelier/backend/pkg/email"
	"github.com/atelier/backend/pkg/geoip"
	"github.com/atelier/backend/pkg/recaptcha"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:5173"
	}

	websiteURL := os.Getenv("WEBSITE_URL")
	if websiteURL == "" {
		websiteURL = frontendURL
	}

	// Submissions are process-memory only: a restart discards them all.
	submissionRepo := repository.NewMemSubmissionRepository()

	notifier := notify.New(newSender(), notify.Config{
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		FromEmail:  os.Getenv("EMAIL_FROM"),
		FromName:   os.Getenv("EMAIL_FROM_NAME"),
		WebsiteURL: websiteURL,
	})

	var captchaVerifier recaptcha.Verifier
	if secret := os.Getenv("RECAPTCHA_SECRET_KEY"); secret != "" {
		captchaVerifier = recaptcha.NewClient(secret)
	} else {
		slog.Warn("RECAPTCHA_SECRET_KEY not configured, bot-verification check disabled")
	}

	var geoLocator geoip.Locator
	if os.Getenv("GEOIP_ENABLED") != "false" {
		geoLocator = geoip.NewClient()
	}

	intakeService := service.NewIntakeService(submissionRepo, notifier, captchaVerifier, geoLocator)
	contactHandler := handler.NewContactHandler(intakeService)
	h := handler.New(frontendURL)

	rateLimiter := handler.NewRateLimiter(
		envInt("RATE_LIMIT_MAX", 5),
		time.Duration(envInt("RATE_LIMIT_WINDOW_MINUTES", 15))*time.Minute,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/ping", h.Ping)

	// Admission control wraps only the public submission endpoint so an
	// abusive client is bounced before any other stage runs.
	mux.Handle("POST /api/contact", rateLimiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	// Admin routes — no auth model exists; keep these off the public internet.
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("PATCH /api/contacts/{id}/status", contactHandler.UpdateStatus)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      h.CORS(handler.SecurityHeaders(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newSender picks the outbound email provider from EMAIL_PROVIDER.
// Returns nil when unset or incomplete, which degrades notifications to
// logged no-ops.
func newSender() email.Sender {
	switch os.Getenv("EMAIL_PROVIDER") {
	case "smtp":
		host := os.Getenv("SMTP_HOST")
		user := os.Getenv("SMTP_USER")
		pass := os.Getenv("SMTP_PASS")
		if host == "" || user == "" || pass == "" {
			slog.Warn("SMTP provider selected but credentials incomplete, email disabled")
			return nil
		}
		return email.NewSMTPSender(host, envInt("SMTP_PORT", 587), user, pass)
	case "resend":
		key := os.Getenv("RESEND_API_KEY")
		if key == "" {
			slog.Warn("Resend provider selected but RESEND_API_KEY missing, email disabled")
			return nil
		}
		return email.NewResendSender(key)
	case "":
		slog.Warn("EMAIL_PROVIDER not configured, notifications will be logged only")
		return nil
	default:
		slog.Warn("unknown EMAIL_PROVIDER, notifications will be logged only",
			"provider", os.Getenv("EMAIL_PROVIDER"))
		return nil
	}
}

// envInt reads an integer environment variable with a default.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
