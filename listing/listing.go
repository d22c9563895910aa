package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

// CarsPath is the listings endpoint on the backend.
const CarsPath = "/api/cars"

// Filter is the search panel's criteria. Fields are free text; an empty field
// is unset and left out of the outgoing query.
type Filter struct {
	Q   string
	Min string
	Max string
}

// Values maps the filter onto the backend's query parameters.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Q != "" {
		v.Set("make", f.Q)
	}
	if f.Min != "" {
		v.Set("min_price", f.Min)
	}
	if f.Max != "" {
		v.Set("max_price", f.Max)
	}
	return v
}

// FormValues maps the filter back onto the browser form field names, used to
// carry the filter between htmx requests.
func (f Filter) FormValues() url.Values {
	v := url.Values{}
	if f.Q != "" {
		v.Set("q", f.Q)
	}
	if f.Min != "" {
		v.Set("min", f.Min)
	}
	if f.Max != "" {
		v.Set("max", f.Max)
	}
	return v
}

// IsEmpty reports whether no criteria are set.
func (f Filter) IsEmpty() bool {
	return f.Q == "" && f.Min == "" && f.Max == ""
}

// CarID accepts both JSON strings and JSON numbers.
type CarID string

func (id *CarID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = CarID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("car id must be a string or number: %w", err)
	}
	*id = CarID(n.String())
	return nil
}

// Car is a listed vehicle as the backend reports it. Absent or null fields
// decode to zero values; Mileage stays nil when absent.
type Car struct {
	ID       CarID    `json:"id"`
	Make     string   `json:"make"`
	Model    string   `json:"model"`
	Year     int      `json:"year"`
	Price    float64  `json:"price"`
	Mileage  *float64 `json:"mileage,omitempty"`
	Location string   `json:"location,omitempty"`
	FuelType string   `json:"fuel_type,omitempty"`
	Features []string `json:"features,omitempty"`
	Photos   []string `json:"photos,omitempty"`
}

// Title is "{year} {make} {model}".
func (c Car) Title() string {
	return strconv.Itoa(c.Year) + " " + c.Make + " " + c.Model
}

// TopFeatures returns at most the first n features, order preserved.
func (c Car) TopFeatures(n int) []string {
	if len(c.Features) <= n {
		return c.Features
	}
	return c.Features[:n]
}

// FirstPhoto returns the first photo URL, or "" when there is none.
func (c Car) FirstPhoto() string {
	if len(c.Photos) == 0 {
		return ""
	}
	return c.Photos[0]
}

// Status classifies a search outcome.
type Status int

const (
	StatusPopulated Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPopulated:
		return "populated"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one search. A failed search carries no cars; the
// UI renders it the same way as an empty one.
type Result struct {
	Status Status
	Cars   []Car
	Err    error
}

// Fetcher is the part of the backend client a Service needs.
type Fetcher interface {
	GetJSON(ctx context.Context, path string, query url.Values, out any) error
}

// Service runs searches against the listings endpoint.
type Service struct {
	fetcher Fetcher
	log     *slog.Logger
}

// NewService creates a listings service.
func NewService(fetcher Fetcher, log *slog.Logger) *Service {
	return &Service{fetcher: fetcher, log: log}
}

// Search issues one GET for the filter. Failures never escape as errors; they
// come back as StatusFailed with Err set.
func (s *Service) Search(ctx context.Context, f Filter) Result {
	var cars []Car
	if err := s.fetcher.GetJSON(ctx, CarsPath, f.Values(), &cars); err != nil {
		return Result{Status: StatusFailed, Err: err}
	}

	cars = s.dedupe(cars)
	if len(cars) == 0 {
		return Result{Status: StatusEmpty}
	}
	return Result{Status: StatusPopulated, Cars: cars}
}

// dedupe keeps the first record for every id. Records without an id are all
// kept.
func (s *Service) dedupe(cars []Car) []Car {
	seen := make(map[CarID]bool, len(cars))
	out := cars[:0]
	for _, c := range cars {
		if c.ID == "" {
			out = append(out, c)
			continue
		}
		if seen[c.ID] {
			s.log.Warn("duplicate car id in result set", slog.String("car_id", string(c.ID)))
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}
