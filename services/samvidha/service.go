package samvidha

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"samvidha-backend/lib/attendance"
	scraper "samvidha-backend/lib/scrapers/samvidha"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("samvidha.services.samvidha")

type Service struct {
	baseUrl  string
	sessions *sessionStore
}

type ServiceOptions struct {
	BaseUrl string
	// defaults to 2048
	SessionCapacity int
	// defaults to 15 minutes
	SessionTTL time.Duration
}

func NewService(opts ServiceOptions) Service {
	if opts.BaseUrl == "" {
		panic("empty base url")
	}
	if opts.SessionCapacity == 0 {
		opts.SessionCapacity = 2048
	}
	if opts.SessionTTL == 0 {
		opts.SessionTTL = time.Minute * 15
	}

	return Service{
		baseUrl:  opts.BaseUrl,
		sessions: newSessionStore(opts.SessionCapacity, opts.SessionTTL),
	}
}

// GetAttendance logs into the portal, scrapes the attendance table and
// aggregates it. Failures never propagate as errors: a rejected
// credential or a transport problem comes back as a success:false
// overall summary with a message.
func (s Service) GetAttendance(ctx context.Context, username, password string) attendance.Result {
	ctx, span := tracer.Start(ctx, "service:GetAttendance")
	defer span.End()

	client, err := scraper.NewClient(ctx, scraper.ClientOptions{BaseUrl: s.baseUrl})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "client constructor")
		return failureResult(fmt.Sprintf("Error: %s", err.Error()))
	}

	err = client.LoginUsernamePassword(ctx, username, password)
	if errors.Is(err, scraper.ErrLoginFailed) {
		span.SetStatus(codes.Error, "login rejected")
		return failureResult("Login failed. Please check credentials.")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "login transport failure")
		return failureResult(fmt.Sprintf("Error: %s", err.Error()))
	}

	rows, pageText, err := client.CourseContent(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "course content fetch failure")
		return failureResult(fmt.Sprintf("Error: %s", err.Error()))
	}

	result := attendance.Calculate(ctx, rows, pageText)
	slog.DebugContext(
		ctx, "scraped attendance",
		"username", username,
		"subjects", len(result.Subjects),
		"days", len(result.Daily),
	)
	return result
}

// Login scrapes and, on success, stores the result under a fresh
// session token so the views can be served without re-scraping.
func (s Service) Login(ctx context.Context, username, password string) (string, attendance.Result) {
	result := s.GetAttendance(ctx, username, password)
	if !result.Overall.Success {
		return "", result
	}

	token, err := s.sessions.Put(result)
	if err != nil {
		return "", failureResult(fmt.Sprintf("Error: %s", err.Error()))
	}
	return token, result
}

func (s Service) Session(token string) (attendance.Result, bool) {
	return s.sessions.Get(token)
}

func failureResult(message string) attendance.Result {
	return attendance.Result{
		Subjects: map[string]*attendance.Subject{},
		Daily:    map[string]*attendance.Day{},
		Streak:   map[string]string{},
		Overall:  attendance.Overall{Message: message},
	}
}
