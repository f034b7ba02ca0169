package reports

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/IvanTurko/mws-sdk-go/mws"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FlatFile is a tab-separated report: a header row followed by data rows.
// Rows may be shorter or longer than the header.
type FlatFile struct {
	Header []string
	Rows   [][]string
}

// Records returns each row keyed by header name. Missing trailing cells are
// left out and cells beyond the header are dropped.
func (f *FlatFile) Records() []map[string]string {
	out := make([]map[string]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		rec := make(map[string]string, len(f.Header))
		for i, name := range f.Header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// ParseFlatFile reads a UTF-8 tab-separated report body.
func ParseFlatFile(raw []byte) (*FlatFile, error) {
	return parseFlatFile(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
}

// ParseReport reads the body of a GetReport result, decoding it from the
// charset announced in its Content-Type (MWS commonly sends Cp1252).
func ParseReport(res *mws.Result) (*FlatFile, error) {
	if res == nil {
		return nil, decodeErr(errors.New("nil result"))
	}
	charset := ""
	if _, params, err := mime.ParseMediaType(res.Headers.Get("Content-Type")); err == nil {
		charset = strings.ToLower(params["charset"])
	}
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return ParseFlatFile(res.Raw)
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, decodeErr(err)
	}
	return parseFlatFile(enc.NewDecoder().Reader(bytes.NewReader(res.Raw)))
}

func parseFlatFile(r io.Reader) (*FlatFile, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	out := &FlatFile{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, decodeErr(err)
		}
		if out.Header == nil {
			out.Header = rec
			continue
		}
		out.Rows = append(out.Rows, rec)
	}
}

func decodeErr(err error) error {
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp("ParseFlatFile").
		WithKind(sdkerr.ErrDecodeError).
		WithCause(err)
}
