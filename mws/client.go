package mws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/future"
	"github.com/IvanTurko/mws-sdk-go/internal/httpx"
	"github.com/IvanTurko/mws-sdk-go/internal/signature"
	isync "github.com/IvanTurko/mws-sdk-go/internal/sync"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/transport"
)

const (
	// DefaultHost is the North America endpoint.
	DefaultHost = "mws.amazonservices.com"
	// DefaultTimeout bounds a single call unless WithTimeout says otherwise.
	DefaultTimeout = 30 * time.Second

	formContentType   = "application/x-www-form-urlencoded; charset=utf-8"
	uploadContentType = "text/xml"
)

// Client signs and sends MWS calls. It is safe for concurrent use; the only
// mutable state is the request sequence counter.
type Client struct {
	creds     Credentials
	signer    *Signer
	host      string
	scheme    string
	http      transport.HTTPClient
	registry  *Registry
	timeout   time.Duration
	logger    *slog.Logger
	userAgent string
	now       func() time.Time
	seq       isync.Sequence
}

// Option configures a Client.
type Option func(*Client)

// WithHost sets the MWS host, e.g. mws-eu.amazonservices.com.
func WithHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithInsecure sends requests over plain http. Meant for local test servers.
func WithInsecure() Option {
	return func(c *Client) { c.scheme = "http" }
}

// WithHTTPClient replaces the transport.
func WithHTTPClient(h transport.HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

// WithRegistry replaces the endpoint table.
func WithRegistry(r *Registry) Option {
	return func(c *Client) { c.registry = r }
}

// WithTimeout bounds each call. Zero disables the client-side deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger enables state transition logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithNowFunc overrides the clock used for the Timestamp parameter.
func WithNowFunc(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient validates creds and applies opts.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	signer, err := NewSigner(creds)
	if err != nil {
		return nil, err
	}

	c := &Client{
		creds:     creds,
		signer:    signer,
		host:      DefaultHost,
		scheme:    "https",
		http:      httpx.NewDefaultHTTPClient(),
		registry:  DefaultRegistry(),
		timeout:   DefaultTimeout,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent: DefaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	var errs []string
	if c.host == "" {
		errs = append(errs, "host is required")
	}
	if c.timeout < 0 {
		errs = append(errs, "timeout must not be negative")
	}
	if c.http == nil {
		errs = append(errs, "http client is required")
	}
	if c.registry == nil {
		errs = append(errs, "registry is required")
	}
	if len(errs) > 0 {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("NewClient").
			WithKind(sdkerr.ErrConfiguration).
			WithMessage(strings.Join(errs, "; "))
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// Host returns the configured MWS host.
func (c *Client) Host() string {
	return c.host
}

// Registry returns the endpoint table in use.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Sign canonicalizes and signs req without sending it.
func (c *Client) Sign(req *Request) (SignedQuery, error) {
	ep, params, err := c.canonicalize(req, "Client.Sign")
	if err != nil {
		return SignedQuery{}, err
	}
	return c.signer.Sign(c.host, ep.CanonicalPath(), params)
}

// Do performs one call: it signs req, sends exactly one HTTP request and
// decodes the answer. There are no retries.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	op := "Client.Do"
	seq := c.seq.Next()

	if req == nil {
		c.logger.Debug("mws call", "seq", seq, "state", StateFailed.String())
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrValidation).
			WithMessage("request is nil")
	}
	log := c.logger.With("seq", seq, "section", string(req.Section), "action", req.Action)

	log.Debug("mws call", "state", StateBuilding.String())
	ep, params, err := c.canonicalize(req, op)
	if err != nil {
		return nil, c.fail(log, err)
	}

	log.Debug("mws call", "state", StateSigning.String())
	signed, err := c.signer.Sign(c.host, ep.CanonicalPath(), params)
	if err != nil {
		return nil, c.fail(log, err)
	}

	log.Debug("mws call", "state", StateSending.String(), "path", ep.CanonicalPath(), "upload", req.IsUpload())
	httpReq := c.buildHTTPRequest(ep, req, signed)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log.Debug("mws call", "state", StateAwaitingResponse.String())
	resp, err := c.http.Do(ctx, httpReq)
	if err == nil && resp == nil {
		err = errors.New("transport returned no response")
	}
	if err != nil {
		return nil, c.fail(log, transportError(ctx, op, err))
	}

	res, err := decodeResponse(resp, req.RawOutput, op)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			log.Warn("mws api error",
				"status", apiErr.StatusCode,
				"code", apiErr.Code,
				"request_id", apiErr.RequestID,
			)
			log.Debug("mws call", "state", StateDecoded.String())
			return nil, err
		}
		return nil, c.fail(log, err)
	}

	log.Debug("mws call", "state", StateDecoded.String(), "status", res.StatusCode, "request_id", res.RequestID)
	return res, nil
}

// Execute runs Do in the background and invokes done exactly once with
// either a result or an error. A nil done discards the outcome.
func (c *Client) Execute(ctx context.Context, req *Request, done func(*Result, error)) {
	if done == nil {
		done = func(*Result, error) {}
	}
	f := c.Go(ctx, req)
	go func() {
		<-f.Done()
		done(f.Await(context.Background()))
	}()
}

// Go runs Do in the background and returns its future.
func (c *Client) Go(ctx context.Context, req *Request) *future.Future[Result] {
	f := future.New[Result]()
	go func() {
		f.Complete(c.Do(ctx, req))
	}()
	return f
}

func (c *Client) canonicalize(req *Request, op string) (Endpoint, []Param, error) {
	var errs []string
	if req == nil {
		errs = []string{"request is nil"}
	} else {
		errs = req.validate()
	}
	if len(errs) > 0 {
		return Endpoint{}, nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrValidation).
			WithMessage(strings.Join(errs, "; "))
	}
	ep, err := c.registry.Lookup(req.Section)
	if err != nil {
		return Endpoint{}, nil, err
	}
	params, err := Canonicalize(c.creds, ep, req.Action, req.Params, c.now())
	if err != nil {
		return Endpoint{}, nil, err
	}
	return ep, params, nil
}

func (c *Client) buildHTTPRequest(ep Endpoint, req *Request, signed SignedQuery) *transport.Request {
	rb := httpx.NewRequestBuilder(c.scheme+"://"+c.host).
		WithMethod(http.MethodPost).
		WithPath(ep.CanonicalPath()).
		WithHeader("Host", c.host).
		WithHeader("User-Agent", c.userAgent)

	if !req.IsUpload() {
		return rb.
			WithHeader("Content-Type", formContentType).
			WithBody(strings.NewReader(signed.Encoded())).
			Build()
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = uploadContentType
	}
	return rb.
		WithRawQuery(signed.Encoded()).
		WithHeader("Content-Type", contentType).
		WithHeader("Content-MD5", signature.ContentMD5(req.Body)).
		WithHeader("Content-Length", strconv.Itoa(len(req.Body))).
		WithBody(bytes.NewReader(req.Body)).
		Build()
}

func (c *Client) fail(log *slog.Logger, err error) error {
	if errors.Is(err, sdkerr.ErrRequestFailed) {
		log.Error("mws transport failure", "error", err)
	}
	log.Debug("mws call", "state", StateFailed.String(), "kind", sdkerr.KindOf(err))
	return err
}

func transportError(ctx context.Context, op string, err error) error {
	kind := TransportNetwork
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = TransportTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = TransportTimeout
	}

	sdkKind := sdkerr.ErrRequestFailed
	if kind == TransportTimeout {
		sdkKind = sdkerr.ErrTimeout
	}
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp(op).
		WithKind(sdkKind).
		WithCause(&TransportError{Kind: kind, Err: err})
}
