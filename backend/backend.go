package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

var (
	// ErrTransport covers failures before any HTTP status was received.
	ErrTransport = errors.New("backend unreachable")
	// ErrDecode means the backend answered 2xx with a body that is not the expected JSON.
	ErrDecode = errors.New("malformed backend response")
)

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.Code)
}

// Client talks to the listings/leads REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http: &fasthttp.Client{
			Name:                "auto-trader-site",
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

// BaseURL returns the API root this client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetJSON issues GET {base}{path}?{query} and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	uri := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		uri += "?" + encoded
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := c.do(ctx, req, resp); err != nil {
		return err
	}
	if !isSuccess(resp.StatusCode()) {
		return &StatusError{Method: fasthttp.MethodGet, Path: path, Code: resp.StatusCode()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// PostJSON issues POST {base}{path} with body encoded as JSON and returns the
// response status. Any non-2xx status is also reported as a *StatusError.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(data)

	if err := c.do(ctx, req, resp); err != nil {
		return 0, err
	}

	code := resp.StatusCode()
	if !isSuccess(code) {
		return code, &StatusError{Method: fasthttp.MethodPost, Path: path, Code: code}
	}
	return code, nil
}

// GetRaw issues GET {base}{path} and returns the status and a copy of the body
// without interpreting either.
func (c *Client) GetRaw(ctx context.Context, path string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.do(ctx, req, resp); err != nil {
		return 0, nil, err
	}
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}

// do runs the request bounded by the client timeout or the context deadline,
// whichever comes first.
func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
