// Package svc holds the plumbing shared by the section services: parameter
// validation helpers and the validate-then-send tail of every Do.
package svc

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
	"github.com/IvanTurko/mws-sdk-go/xmltree"
)

// ValidationError wraps collected problems as an ErrValidation SDKError.
// It returns nil when errs is empty.
func ValidationError(subsys, op string, errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp(op).
		WithKind(sdkerr.ErrValidation).
		WithMessage(strings.Join(errs, "; "))
}

// Do validates and, only if that passes, sends req through client.
func Do(ctx context.Context, client *mws.Client, subsys, op string, errs []string, req *mws.Request) (*mws.Result, error) {
	if client == nil {
		errs = append(errs, "client is required")
	}
	if err := ValidationError(subsys, op, errs); err != nil {
		return nil, err
	}
	return client.Do(ctx, req)
}

// CheckCount appends a message when n is outside [lo, hi].
func CheckCount(errs []string, name string, n, lo, hi int) []string {
	if n < lo || n > hi {
		if lo == 0 {
			return append(errs, fmt.Sprintf("%s accepts at most %d values", name, hi))
		}
		return append(errs, fmt.Sprintf("%s must contain between %d and %d values", name, lo, hi))
	}
	return errs
}

// CheckEnum appends a message for every value not in allowed.
func CheckEnum[T ~string](errs []string, name string, allowed []T, values ...T) []string {
	for _, v := range values {
		if !slices.Contains(allowed, v) {
			errs = append(errs, fmt.Sprintf("%s %q is invalid", name, string(v)))
		}
	}
	return errs
}

// Strings converts a slice of string-kinded enum values.
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Count reads the Count element of a Get*Count result.
func Count(subsys, op string, res *mws.Result) (int64, error) {
	var node *xmltree.Node
	if res != nil && res.Tree != nil {
		node = res.Tree.FindFirst("Count")
	}
	if node == nil {
		return 0, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithMessage("response has no Count element")
	}
	n, err := node.Int()
	if err != nil {
		return 0, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(err)
	}
	return n, nil
}

// Fields reads optional typed elements for the section parsers. An absent
// or empty element yields the zero value. The first malformed element is
// kept and reported by Err.
type Fields struct {
	err error
}

func (f *Fields) Int(n *xmltree.Node) int64 {
	if n.Text() == "" {
		return 0
	}
	v, err := n.Int()
	f.keep(n, err)
	return v
}

func (f *Fields) Bool(n *xmltree.Node) bool {
	if n.Text() == "" {
		return false
	}
	v, err := n.Bool()
	f.keep(n, err)
	return v
}

func (f *Fields) Time(n *xmltree.Node) time.Time {
	if n.Text() == "" {
		return time.Time{}
	}
	v, err := n.Time()
	f.keep(n, err)
	return v
}

func (f *Fields) Money(n *xmltree.Node) *mws.Money {
	m, err := mws.ParseMoney(n)
	f.keep(n, err)
	return m
}

func (f *Fields) keep(n *xmltree.Node, err error) {
	if err != nil && f.err == nil {
		f.err = fmt.Errorf("%s: %w", n.Name, err)
	}
}

// Err returns the first malformed element as an ErrDecodeError carrying
// body, or nil.
func (f *Fields) Err(subsys, op string, body []byte) error {
	if f.err == nil {
		return nil
	}
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp(op).
		WithKind(sdkerr.ErrDecodeError).
		WithCause(&mws.DecodeError{Body: body, Err: f.err})
}
