package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Orders/2013-09-01", r.URL.Path)
		assert.Equal(t, "mws.example.com", r.Host)
		assert.Equal(t, "application/x-www-form-urlencoded; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, "Action=GetServiceStatus", string(body))

		w.Header().Set("x-mws-request-id", "req-1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.Client())

	headers := make(http.Header)
	headers.Set("Host", "mws.example.com")
	headers.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

	resp, err := client.Do(context.Background(), &Request{
		Method:  http.MethodPost,
		FullURL: srv.URL + "/Orders/2013-09-01",
		Headers: headers,
		Body:    strings.NewReader("Action=GetServiceStatus"),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte("<ok/>"), resp.Body)
	assert.Equal(t, "req-1", resp.Headers.Get("x-mws-request-id"))
}

func TestNewHTTPClient_NilUsesDefault(t *testing.T) {
	client := NewHTTPClient(nil)
	assert.NotNil(t, client)
}

func TestNewHTTPClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(nil).Do(context.Background(), &Request{
		Method:  http.MethodPost,
		FullURL: url,
	})
	assert.Error(t, err)
}
