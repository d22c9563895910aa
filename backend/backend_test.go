package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/api/cars", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	var out []map[string]any
	err := c.GetJSON(context.Background(), "/api/cars", url.Values{"make": {"Tesla"}}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Tesla", gotQuery.Get("make"))
	assert.Len(t, out, 1)
}

func TestGetJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"detail":"boom"}`,
			checkFn: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusInternalServerError, se.Code)
			},
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `[{"id":`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrDecode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			var out []map[string]any
			err := New(srv.URL, time.Second).GetJSON(context.Background(), "/api/cars", nil, &out)
			require.Error(t, err)
			tt.checkFn(t, err)
		})
	}
}

func TestGetJSONUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	var out []map[string]any
	err := New(base, 500*time.Millisecond).GetJSON(context.Background(), "/api/cars", nil, &out)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestGetJSONCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out []map[string]any
	err := New("http://127.0.0.1:1", time.Second).GetJSON(ctx, "/api/cars", nil, &out)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestPostJSON(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	code, err := New(srv.URL, time.Second).PostJSON(context.Background(), "/api/leads", map[string]string{"name": "Jane"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Jane", gotBody["name"])
}

func TestPostJSONNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	code, err := New(srv.URL, time.Second).PostJSON(context.Background(), "/api/leads", map[string]string{})

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "POST /api/leads returned status 422", se.Error())
}

func TestGetRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"backend":"running"}`))
	}))
	defer srv.Close()

	code, body, err := New(srv.URL, time.Second).GetRaw(context.Background(), "/test")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.JSONEq(t, `{"backend":"running"}`, string(body))
}
