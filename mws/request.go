package mws

import (
	"strconv"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/timeutil"
)

// Params holds operation parameters. Keys are unique.
type Params map[string]string

// Set stores a single value.
func (p Params) Set(key, value string) Params {
	p[key] = value
	return p
}

// SetList stores values as prefix.1, prefix.2, ... in order.
func (p Params) SetList(prefix string, values ...string) Params {
	for i, v := range values {
		p[prefix+"."+strconv.Itoa(i+1)] = v
	}
	return p
}

func (p Params) SetBool(key string, value bool) Params {
	p[key] = strconv.FormatBool(value)
	return p
}

func (p Params) SetInt(key string, value int64) Params {
	p[key] = strconv.FormatInt(value, 10)
	return p
}

// SetTime stores t as a second-precision UTC timestamp.
func (p Params) SetTime(key string, t time.Time) Params {
	p[key] = timeutil.FormatISO8601(t)
	return p
}

// Request describes one operation call. A fresh Request is built per call.
type Request struct {
	Section Section
	Action  string
	Params  Params

	// RawOutput returns the body bytes untouched instead of an XML tree.
	RawOutput bool

	// Body, when non-nil, turns the call into an upload: the signed query
	// moves to the URL and Body is sent as is.
	Body []byte
	// ContentType of Body. Defaults to text/xml.
	ContentType string
}

// NewRequest returns a request with an empty parameter set.
func NewRequest(section Section, action string) *Request {
	return &Request{
		Section: section,
		Action:  action,
		Params:  make(Params),
	}
}

// IsUpload reports whether the request carries a body.
func (r *Request) IsUpload() bool {
	return r.Body != nil
}

func (r *Request) validate() []string {
	var errs []string
	if r.Section == "" {
		errs = append(errs, "section is required")
	}
	if r.Action == "" {
		errs = append(errs, "action is required")
	}
	return errs
}
