package lead

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// LeadsPath is the lead submission endpoint on the backend.
const LeadsPath = "/api/leads"

// Lead is a prospective buyer's contact submission.
type Lead struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	CarID   string `json:"car_id" validate:"required"`
}

// New builds a lead from raw form input. Fields are trimmed and an empty car
// id falls back to defaultCarID.
func New(name, email, phone, message, carID, defaultCarID string) Lead {
	carID = strings.TrimSpace(carID)
	if carID == "" {
		carID = defaultCarID
	}
	return Lead{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Message: strings.TrimSpace(message),
		CarID:   carID,
	}
}

// Status classifies a submission outcome.
type Status int

const (
	StatusSent Status = iota
	StatusInvalid
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusInvalid:
		return "invalid"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one submission attempt. HTTPStatus is zero when
// no response was received.
type Result struct {
	Status     Status
	HTTPStatus int
	Err        error
}

// Poster is the part of the backend client a Service needs.
type Poster interface {
	PostJSON(ctx context.Context, path string, body any) (int, error)
}

// Notifier is told about every lead the backend accepted.
type Notifier interface {
	LeadReceived(ctx context.Context, l Lead) error
}

// Service validates and transmits leads.
type Service struct {
	poster      Poster
	notifier    Notifier
	validate    *validator.Validate
	phoneRegion string
	log         *slog.Logger
}

// NewService creates a lead service. notifier may be nil.
func NewService(poster Poster, notifier Notifier, phoneRegion string, log *slog.Logger) *Service {
	return &Service{
		poster:      poster,
		notifier:    notifier,
		validate:    validator.New(),
		phoneRegion: phoneRegion,
		log:         log,
	}
}

// Validate checks the required fields the form marks as required.
func (s *Service) Validate(l Lead) error {
	return s.validate.Struct(l)
}

// InvalidFields lists the json names of the fields that failed validation.
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}

// Submit validates l and posts it once. Invalid leads are never sent. There
// is no retry: a failed send leaves the caller free to submit again.
func (s *Service) Submit(ctx context.Context, l Lead) Result {
	if err := s.Validate(l); err != nil {
		return Result{Status: StatusInvalid, Err: err}
	}

	l.Phone = NormalizePhone(l.Phone, s.phoneRegion)

	code, err := s.poster.PostJSON(ctx, LeadsPath, l)
	if err != nil {
		return Result{Status: StatusFailed, HTTPStatus: code, Err: err}
	}

	if s.notifier != nil {
		if err := s.notifier.LeadReceived(ctx, l); err != nil {
			s.log.Warn("lead alert failed", slog.String("car_id", l.CarID), slog.String("error", err.Error()))
		}
	}

	return Result{Status: StatusSent, HTTPStatus: code}
}

// NormalizePhone formats a phone number to E.164. Input that does not parse
// as a valid number is returned trimmed.
func NormalizePhone(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
