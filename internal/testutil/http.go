package testutil

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/IvanTurko/mws-sdk-go/transport"
	"github.com/stretchr/testify/require"
)

// ExtractQuery parses the query part of a request URL.
func ExtractQuery(t *testing.T, fullURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(fullURL)
	require.NoError(t, err)
	return parsed.Query()
}

// XMLResponse builds a response with an XML body and the given status.
func XMLResponse(status int, body string) *transport.Response {
	return &transport.Response{
		StatusCode: status,
		Headers:    http.Header{"Content-Type": []string{"text/xml"}},
		Body:       []byte(body),
	}
}

// FakeHTTPClient delegates every call to DoFunc.
type FakeHTTPClient struct {
	DoFunc func(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

func (f *FakeHTTPClient) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	return f.DoFunc(ctx, req)
}

// RecordingHTTPClient answers every call with Resp and keeps the last request.
type RecordingHTTPClient struct {
	Resp *transport.Response
	Last *transport.Request
	Body []byte
}

func (r *RecordingHTTPClient) Do(_ context.Context, req *transport.Request) (*transport.Response, error) {
	r.Last = req
	r.Body = nil
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		r.Body = data
	}
	return r.Resp, nil
}

// Form parses the recorded body as a form.
func (r *RecordingHTTPClient) Form(t *testing.T) url.Values {
	t.Helper()
	values, err := url.ParseQuery(string(r.Body))
	require.NoError(t, err)
	return values
}
