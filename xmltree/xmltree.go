// Package xmltree decodes arbitrary XML into an order-preserving tree.
//
// MWS responses vary per operation and version, so the SDK hands callers a
// generic tree instead of per-operation structs. Repeated elements keep
// their document order.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/IvanTurko/mws-sdk-go/internal/timeutil"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("xmltree: document has no root element")

// Keys Map uses for attributes and for text next to child elements.
const (
	AttrKey = "-attr"
	TextKey = "#text"
)

// Node is a single XML element.
type Node struct {
	Name     string
	Attrs    map[string]string
	Children []*Node
	text     string
}

// Parse decodes data into a tree. Any syntax error, including truncated
// input or content outside the root element, fails the whole parse.
// Comments, processing instructions and whitespace may surround the root.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.Strict = true
	dec.CharsetReader = charsetReader

	var (
		root  *Node
		stack []*Node
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(stack) == 0 {
			if err := checkProlog(tok, root != nil); err != nil {
				return nil, err
			}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				if n.Attrs == nil {
					n.Attrs = make(map[string]string, len(t.Attr))
				}
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmltree: second root element <%s>", n.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	if len(stack) != 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// checkProlog rejects tokens that may not appear outside the root element.
// A DOCTYPE is allowed before the root only.
func checkProlog(tok xml.Token, afterRoot bool) error {
	switch t := tok.(type) {
	case xml.CharData:
		if len(bytes.TrimSpace(t)) > 0 {
			return fmt.Errorf("xmltree: character data outside the root element: %q", truncate(string(t), 32))
		}
	case xml.Directive:
		if afterRoot {
			return errors.New("xmltree: directive after the root element")
		}
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// charsetReader handles the non-UTF-8 declarations MWS uses for some
// documents, mostly ISO-8859-1 and windows-1252.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("xmltree: unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Text returns the element's character data with surrounding whitespace
// removed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text)
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child with the given name, in order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find walks path one direct child at a time and returns nil as soon as a
// step is missing.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, p := range path {
		cur = cur.Child(p)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindAll returns every descendant (depth first, document order) named name.
// The receiver itself is included when it matches.
func (n *Node) FindAll(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	n.walk(func(c *Node) {
		if c.Name == name {
			out = append(out, c)
		}
	})
	return out
}

// FindFirst returns the first node FindAll would return, or nil.
func (n *Node) FindFirst(name string) *Node {
	if all := n.FindAll(name); len(all) > 0 {
		return all[0]
	}
	return nil
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// Decimal parses the element text as a decimal amount (prices, fees).
func (n *Node) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(n.Text())
}

// Int parses the element text as a base-10 integer.
func (n *Node) Int() (int64, error) {
	return strconv.ParseInt(n.Text(), 10, 64)
}

// Bool parses the element text as a boolean ("true"/"false").
func (n *Node) Bool() (bool, error) {
	return strconv.ParseBool(n.Text())
}

// Time parses the element text as an ISO-8601 timestamp.
func (n *Node) Time() (time.Time, error) {
	return timeutil.ParseISO8601(n.Text())
}

// Map flattens the node into nested maps. Elements without children or
// attributes become their text. Otherwise attributes go under AttrKey and
// non-blank text under TextKey. A name that repeats among siblings becomes
// a []any in document order.
func (n *Node) Map() map[string]any {
	if n == nil {
		return nil
	}
	return map[string]any{n.Name: n.value()}
}

func (n *Node) value() any {
	if len(n.Children) == 0 && len(n.Attrs) == 0 {
		return n.Text()
	}
	out := make(map[string]any, len(n.Children)+2)
	if len(n.Attrs) > 0 {
		attrs := make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		out[AttrKey] = attrs
	}
	if text := n.Text(); text != "" {
		out[TextKey] = text
	}
	for _, c := range n.Children {
		v := c.value()
		existing, ok := out[c.Name]
		switch {
		case !ok:
			out[c.Name] = v
		default:
			if list, isList := existing.([]any); isList {
				out[c.Name] = append(list, v)
			} else {
				out[c.Name] = []any{existing, v}
			}
		}
	}
	return out
}
