package lead

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	code  int
	err   error
	calls int
	last  Lead
}

func (p *fakePoster) PostJSON(_ context.Context, path string, body any) (int, error) {
	p.calls++
	p.last = body.(Lead)
	return p.code, p.err
}

type fakeNotifier struct {
	leads []Lead
	err   error
}

func (n *fakeNotifier) LeadReceived(_ context.Context, l Lead) error {
	n.leads = append(n.leads, l)
	return n.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	l := New("  Jane ", " jane@example.com ", "", "Hi", "", "general")

	assert.Equal(t, "Jane", l.Name)
	assert.Equal(t, "jane@example.com", l.Email)
	assert.Equal(t, "general", l.CarID)

	l = New("Jane", "jane@example.com", "", "", "car-42", "general")
	assert.Equal(t, "car-42", l.CarID)
}

func TestValidate(t *testing.T) {
	svc := NewService(&fakePoster{}, nil, "US", discardLogger())

	tests := []struct {
		name    string
		lead    Lead
		invalid []string
	}{
		{
			name: "valid with optional fields empty",
			lead: Lead{Name: "Jane", Email: "jane@example.com", CarID: "general"},
		},
		{
			name:    "missing name",
			lead:    Lead{Email: "jane@example.com", CarID: "general"},
			invalid: []string{"name"},
		},
		{
			name:    "bad email",
			lead:    Lead{Name: "Jane", Email: "not-an-email", CarID: "general"},
			invalid: []string{"email"},
		},
		{
			name:    "everything missing",
			lead:    Lead{CarID: "general"},
			invalid: []string{"name", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Validate(tt.lead)
			if tt.invalid == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ElementsMatch(t, tt.invalid, InvalidFields(err))
		})
	}
}

func TestInvalidFieldsOtherError(t *testing.T) {
	assert.Nil(t, InvalidFields(errors.New("boom")))
}

func TestSubmitInvalidNeverPosts(t *testing.T) {
	poster := &fakePoster{code: http.StatusCreated}
	svc := NewService(poster, nil, "US", discardLogger())

	result := svc.Submit(context.Background(), New("", "jane@example.com", "", "", "", "general"))

	assert.Equal(t, StatusInvalid, result.Status)
	assert.Equal(t, 0, poster.calls)
}

func TestSubmitSent(t *testing.T) {
	poster := &fakePoster{code: http.StatusCreated}
	notifier := &fakeNotifier{}
	svc := NewService(poster, notifier, "US", discardLogger())

	l := New("Jane", "jane@example.com", "(201) 555-0123", "Interested", "", "general")
	result := svc.Submit(context.Background(), l)

	assert.Equal(t, StatusSent, result.Status)
	assert.Equal(t, http.StatusCreated, result.HTTPStatus)
	assert.NoError(t, result.Err)
	assert.Equal(t, 1, poster.calls)
	assert.Equal(t, "general", poster.last.CarID)
	assert.Equal(t, "+12015550123", poster.last.Phone)
	require.Len(t, notifier.leads, 1)
	assert.Equal(t, "Jane", notifier.leads[0].Name)
}

func TestSubmitNotifierFailureStillSent(t *testing.T) {
	poster := &fakePoster{code: http.StatusOK}
	notifier := &fakeNotifier{err: errors.New("twilio down")}
	svc := NewService(poster, notifier, "US", discardLogger())

	result := svc.Submit(context.Background(), New("Jane", "jane@example.com", "", "", "", "general"))

	assert.Equal(t, StatusSent, result.Status)
}

func TestSubmitFailed(t *testing.T) {
	tests := []struct {
		name string
		code int
		err  error
	}{
		{name: "server error", code: http.StatusInternalServerError, err: errors.New("status 500")},
		{name: "transport error", err: errors.New("backend unreachable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poster := &fakePoster{code: tt.code, err: tt.err}
			notifier := &fakeNotifier{}
			svc := NewService(poster, notifier, "US", discardLogger())

			result := svc.Submit(context.Background(), New("Jane", "jane@example.com", "", "", "", "general"))

			assert.Equal(t, StatusFailed, result.Status)
			assert.Equal(t, tt.code, result.HTTPStatus)
			assert.Error(t, result.Err)
			assert.Equal(t, 1, poster.calls)
			assert.Empty(t, notifier.leads)
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		region   string
		expected string
	}{
		{name: "empty", input: "", region: "US", expected: ""},
		{name: "national us", input: "(201) 555-0123", region: "US", expected: "+12015550123"},
		{name: "already e164", input: "+44 121 234 5678", region: "US", expected: "+441212345678"},
		{name: "unparseable kept", input: "call after 5", region: "US", expected: "call after 5"},
		{name: "invalid number trimmed", input: " 123 ", region: "US", expected: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input, tt.region))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "sent", StatusSent.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
