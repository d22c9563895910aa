package syscheck

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/auto-trader/site/cache"
)

// ProbePath is the backend's self-check endpoint.
const ProbePath = "/test"

const probeKey = "backend"

// Report is what the system check page shows about the backend.
type Report struct {
	BackendURL string
	Reachable  bool
	HTTPStatus int
	Error      string
	Fields     []Field
	CheckedAt  time.Time
}

// Healthy reports whether the backend answered its self-check with a 2xx.
func (r Report) Healthy() bool {
	return r.Reachable && r.HTTPStatus >= 200 && r.HTTPStatus < 300
}

// Field is one top-level key of the backend's JSON self-check answer.
type Field struct {
	Key   string
	Value string
}

// Prober is the part of the backend client the checker needs.
type Prober interface {
	GetRaw(ctx context.Context, path string) (int, []byte, error)
	BaseURL() string
}

// Checker probes the backend and caches the answer briefly.
type Checker struct {
	prober Prober
	cache  *cache.Cache[Report]
	now    func() time.Time
}

// NewChecker creates a checker whose reports live for ttl.
func NewChecker(prober Prober, ttl time.Duration) (*Checker, error) {
	c, err := cache.New[Report]("Backend Probe Cache", 16, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to create probe cache: %w", err)
	}
	return &Checker{prober: prober, cache: c, now: time.Now}, nil
}

// Check returns a cached report when one is fresh, otherwise probes.
func (c *Checker) Check(ctx context.Context) Report {
	if r, ok := c.cache.Get(probeKey); ok {
		return r
	}

	r := c.probe(ctx)
	c.cache.Set(probeKey, r)
	return r
}

// CacheStats exposes the probe cache counters.
func (c *Checker) CacheStats() cache.Stats {
	return c.cache.Stats()
}

// Close releases the probe cache.
func (c *Checker) Close() {
	c.cache.Close()
}

func (c *Checker) probe(ctx context.Context) Report {
	r := Report{BackendURL: c.prober.BaseURL(), CheckedAt: c.now()}

	code, body, err := c.prober.GetRaw(ctx, ProbePath)
	if err != nil {
		r.Error = err.Error()
		return r
	}

	r.Reachable = true
	r.HTTPStatus = code
	r.Fields = parseFields(body)
	return r
}

// parseFields flattens a JSON object's top-level keys, sorted. Anything that
// is not a JSON object yields no fields.
func parseFields(body []byte) []Field {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil
	}

	fields := make([]Field, 0, len(obj))
	for k, raw := range obj {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			fields = append(fields, Field{Key: k, Value: s})
			continue
		}
		fields = append(fields, Field{Key: k, Value: string(raw)})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
