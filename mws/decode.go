package mws

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IvanTurko/mws-sdk-go/internal/signature"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/transport"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

const requestIDHeader = "X-Mws-Request-Id"

// Result is a decoded response.
type Result struct {
	StatusCode int
	Headers    http.Header
	// Raw is the response body as received.
	Raw []byte
	// Tree is the parsed document. Nil for raw output.
	Tree      *xmltree.Node
	RequestID string
}

var errChecksum = errors.New("content-md5 does not match body")

func decodeResponse(resp *transport.Response, raw bool, op string) (*Result, error) {
	if want := resp.Headers.Get("Content-MD5"); want != "" {
		if got := signature.ContentMD5(resp.Body); got != want {
			return nil, sdkerr.NewSDKError().
				WithSubsys(subsys).
				WithOp(op).
				WithKind(sdkerr.ErrChecksumMismatch).
				WithMessage("expected " + want + ", got " + got).
				WithCause(&DecodeError{Body: resp.Body, Err: errChecksum})
		}
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	res := &Result{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Raw:        resp.Body,
		RequestID:  resp.Headers.Get(requestIDHeader),
	}
	if raw && ok {
		return res, nil
	}

	tree, err := xmltree.Parse(resp.Body)
	if err != nil {
		if !ok {
			return nil, apiError(op, &APIError{
				Code:       "HTTP" + strconv.Itoa(resp.StatusCode),
				Message:    http.StatusText(resp.StatusCode),
				RequestID:  res.RequestID,
				StatusCode: resp.StatusCode,
			})
		}
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(&DecodeError{Body: resp.Body, Err: err})
	}

	if id := tree.FindFirst("RequestId").Text(); id != "" {
		res.RequestID = id
	} else if id := tree.FindFirst("RequestID").Text(); id != "" {
		res.RequestID = id
	}

	if e := errorElement(tree); e != nil {
		return nil, apiError(op, &APIError{
			Type:       e.Child("Type").Text(),
			Code:       e.Child("Code").Text(),
			Message:    e.Child("Message").Text(),
			RequestID:  res.RequestID,
			StatusCode: resp.StatusCode,
		})
	}
	if !ok {
		return nil, apiError(op, &APIError{
			Code:       "HTTP" + strconv.Itoa(resp.StatusCode),
			Message:    http.StatusText(resp.StatusCode),
			RequestID:  res.RequestID,
			StatusCode: resp.StatusCode,
		})
	}

	res.Tree = tree
	return res, nil
}

// errorElement finds a request-level Error: the root itself or one of its
// children. Per-item Error elements deeper in a result belong to the
// caller.
func errorElement(root *xmltree.Node) *xmltree.Node {
	if root.Name == "Error" {
		return root
	}
	return root.Child("Error")
}

func apiError(op string, e *APIError) error {
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp(op).
		WithKind(sdkerr.ErrAPIError).
		WithMessage(e.Code).
		WithCause(e)
}
