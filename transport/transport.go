package transport

import (
	"context"
	"io"
	"net/http"
)

// HTTPClient defines the minimal interface required by the SDK to execute
// HTTP requests. Users may inject any custom implementation (e.g., mocks or wrappers).
type HTTPClient interface {
	// Do executes an HTTP request. The implementation must respect the context
	// and return the fully buffered response.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is the SDK's lightweight representation of an HTTP request.
type Request struct {
	Method  string
	FullURL string
	Headers http.Header
	Body    io.Reader
}

// Response is the fully-buffered result of an HTTP request.
type Response struct {
	Body       []byte
	StatusCode int
	Headers    http.Header
}

type internalHTTPClientAdapter struct {
	client *http.Client
}

// NewHTTPClient wraps a standard *http.Client into an HTTPClient.
// If nil is provided, a default http.Client is used.
func NewHTTPClient(stdClient *http.Client) HTTPClient {
	if stdClient == nil {
		stdClient = &http.Client{}
	}
	return &internalHTTPClientAdapter{client: stdClient}
}

// Do executes the request using the underlying standard http.Client.
func (a *internalHTTPClientAdapter) Do(ctx context.Context, req *Request) (*Response, error) {
	stdReq, err := NewStdRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	stdResp, err := a.client.Do(stdReq)
	if err != nil {
		return nil, err
	}
	defer stdResp.Body.Close()

	bodyBytes, err := io.ReadAll(stdResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Body:       bodyBytes,
		StatusCode: stdResp.StatusCode,
		Headers:    stdResp.Header,
	}, nil
}

// NewStdRequest converts req into an *http.Request bound to ctx.
// A Host header, if present, becomes the request's Host field since
// net/http ignores it in the header map.
func NewStdRequest(ctx context.Context, req *Request) (*http.Request, error) {
	stdReq, err := http.NewRequestWithContext(ctx, req.Method, req.FullURL, req.Body)
	if err != nil {
		return nil, err
	}

	for k, vs := range req.Headers {
		for _, v := range vs {
			stdReq.Header.Add(k, v)
		}
	}
	if host := req.Headers.Get("Host"); host != "" {
		stdReq.Host = host
	}
	return stdReq, nil
}
