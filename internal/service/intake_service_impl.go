package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/atelier/backend/internal/abuse"
	"github.com/atelier/backend/internal/model"
	"github.com/atelier/backend/internal/repository"
	"github.com/atelier/backend/internal/validate"
	"github.com/atelier/backend/pkg/geoip"
	"github.com/atelier/backend/pkg/recaptcha"
)

// notifyTimeout bounds each detached notification dispatch so a stalled
// provider cannot leave goroutines alive indefinitely.
const notifyTimeout = 10 * time.Second

// intakeServiceImpl is the production implementation of IntakeService.
type intakeServiceImpl struct {
	repo     repository.SubmissionRepository
	notifier Notifier
	captcha  recaptcha.Verifier // nil disables the check
	geo      geoip.Locator      // nil disables geolocation
}

// NewIntakeService creates an IntakeService. captcha and geo may be nil,
// which disables the corresponding best-effort checks.
func NewIntakeService(repo repository.SubmissionRepository, notifier Notifier, captcha recaptcha.Verifier, geo geoip.Locator) IntakeService {
	return &intakeServiceImpl{repo: repo, notifier: notifier, captcha: captcha, geo: geo}
}

// Submit runs the intake pipeline: validate, honeypot, captcha, sanitize,
// spam verdict, geolocate, prioritize, persist, then dispatch notifications
// without awaiting them.
func (s *intakeServiceImpl) Submit(ctx context.Context, req SubmitRequest, meta model.RequestMeta) (*model.Submission, error) {
	if verr := validate.Check(validate.Input{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}); verr != nil {
		return nil, verr
	}

	if abuse.HoneypotTriggered(req.Website) {
		slog.Warn("honeypot triggered", "ip", meta.IPAddress)
		return nil, ErrBotDetected
	}

	if s.captcha != nil && req.CaptchaToken == "" {
		// Tokenless traffic bypasses a configured verifier; keep that
		// visible to operators.
		slog.Warn("captcha token missing, verification skipped", "ip", meta.IPAddress)
	}
	if s.captcha != nil && req.CaptchaToken != "" {
		ok, err := s.captcha.Verify(ctx, req.CaptchaToken, meta.IPAddress)
		if err != nil {
			slog.Error("captcha verification failed", "error", err, "ip", meta.IPAddress)
			return nil, ErrBotDetected
		}
		if !ok {
			slog.Warn("captcha rejected", "ip", meta.IPAddress)
			return nil, ErrBotDetected
		}
	}

	sub := &model.Submission{
		Name:      validate.Sanitize(req.Name),
		Email:     validate.Sanitize(req.Email),
		Subject:   validate.Sanitize(req.Subject),
		Message:   validate.Sanitize(req.Message),
		Status:    model.StatusNew,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
		Source:    model.SourceWebsite,
	}
	sub.Priority = determinePriority(sub.Subject, sub.Message)

	isSpam, reasons := abuse.DetectSpam(sub.Name, sub.Email, sub.Message)
	if isSpam {
		slog.Warn("spam detected", "reasons", reasons, "ip", meta.IPAddress)
		sub.Source = model.SourceWebsiteSpam
	} else if s.geo != nil && meta.IPAddress != "" {
		loc, err := s.geo.Lookup(ctx, meta.IPAddress)
		if err != nil {
			slog.Debug("geolocation lookup failed", "error", err, "ip", meta.IPAddress)
		}
		sub.Country = loc.Country
		sub.Region = loc.Region
		sub.City = loc.City
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	// The HTTP outcome is decided at this point; notification latency or
	// failure must not affect it. Each dispatch runs detached with its own
	// timeout and reports only to the log.
	if !isSpam {
		s.dispatchNotifications(sub)
	}

	slog.Info("contact submission accepted",
		"submission_id", sub.ID,
		"priority", sub.Priority,
		"source", sub.Source,
	)
	return sub, nil
}

func (s *intakeServiceImpl) dispatchNotifications(sub *model.Submission) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.notifier.NotifyAdmin(ctx, sub)
	}()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.notifier.ConfirmUser(ctx, sub)
	}()
}

// List returns matching submissions plus aggregate stats.
func (s *intakeServiceImpl) List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, model.SubmissionStats, error) {
	subs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, model.SubmissionStats{}, err
	}
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, model.SubmissionStats{}, err
	}
	return subs, stats, nil
}

// UpdateStatus validates the status value and applies the transition.
func (s *intakeServiceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

var (
	urgentKeywords    = []string{"urgent", "asap", "emergency", "critical", "important"}
	highValueKeywords = []string{"enterprise", "large", "million", "budget"}
)

// determinePriority assigns a priority from a keyword scan of
// subject+message. The heuristic yields high or medium only; low exists in
// the enum but is never assigned here.
func determinePriority(subject, message string) model.Priority {
	text := strings.ToLower(subject + " " + message)
	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			return model.PriorityHigh
		}
	}
	for _, kw := range highValueKeywords {
		if strings.Contains(text, kw) {
			return model.PriorityHigh
		}
	}
	return model.PriorityMedium
}
