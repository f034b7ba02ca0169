package httpx

import (
	"io"
	"net/http"

	"github.com/IvanTurko/mws-sdk-go/transport"
)

// RequestBuilder assembles a transport.Request. The query is kept as an
// already-encoded string because signed MWS queries must reach the wire
// byte-for-byte as they were signed.
type RequestBuilder struct {
	BaseURL  string
	Path     string
	Method   string
	RawQuery string
	Headers  http.Header
	Body     io.Reader
}

func NewRequestBuilder(baseURL string) *RequestBuilder {
	return &RequestBuilder{
		BaseURL: baseURL,
		Headers: make(http.Header),
	}
}

func (b *RequestBuilder) WithPath(path string) *RequestBuilder {
	b.Path = path
	return b
}

func (b *RequestBuilder) WithMethod(method string) *RequestBuilder {
	b.Method = method
	return b
}

func (b *RequestBuilder) WithRawQuery(query string) *RequestBuilder {
	b.RawQuery = query
	return b
}

func (b *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	b.Headers.Set(key, value)
	return b
}

func (b *RequestBuilder) WithBody(body io.Reader) *RequestBuilder {
	b.Body = body
	return b
}

func (b *RequestBuilder) Build() *transport.Request {
	fullURL := b.BaseURL + b.Path
	if b.RawQuery != "" {
		fullURL += "?" + b.RawQuery
	}
	return &transport.Request{
		Method:  b.Method,
		FullURL: fullURL,
		Headers: b.Headers,
		Body:    b.Body,
	}
}
