package mws

import (
	"slices"
	"strings"
	"time"

	"github.com/IvanTurko/mws-sdk-go/internal/signature"
	"github.com/IvanTurko/mws-sdk-go/internal/timeutil"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

const (
	signatureVersion = "2"
	signatureMethod  = "HmacSHA256"
)

// Parameter names owned by the signing protocol.
const (
	ParamAction           = "Action"
	ParamAccessKeyID      = "AWSAccessKeyId"
	ParamSignatureVersion = "SignatureVersion"
	ParamSignatureMethod  = "SignatureMethod"
	ParamTimestamp        = "Timestamp"
	ParamVersion          = "Version"
	ParamAuthToken        = "MWSAuthToken"
	ParamSignature        = "Signature"
)

var reservedKeys = map[string]struct{}{
	ParamAction:           {},
	ParamAccessKeyID:      {},
	ParamSignatureVersion: {},
	ParamSignatureMethod:  {},
	ParamTimestamp:        {},
	ParamVersion:          {},
	ParamAuthToken:        {},
	ParamSignature:        {},
	MerchantKeySellerID:   {},
	MerchantKeyMerchant:   {},
}

// IsReserved reports whether key is set by the client itself and may not
// appear among operation parameters.
func IsReserved(key string) bool {
	_, ok := reservedKeys[key]
	return ok
}

// Param is one key/value pair of the canonical parameter set.
type Param struct {
	Key   string
	Value string
}

// Canonicalize merges the protocol fields with the operation parameters and
// returns them sorted by byte-wise key comparison.
func Canonicalize(creds Credentials, ep Endpoint, action string, params Params, ts time.Time) ([]Param, error) {
	op := "Canonicalize"
	if action == "" {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrValidation).
			WithMessage("action is required")
	}

	var conflicts []string
	for k := range params {
		if k == "" {
			return nil, sdkerr.NewSDKError().
				WithSubsys(subsys).
				WithOp(op).
				WithKind(sdkerr.ErrValidation).
				WithMessage("empty parameter key")
		}
		if IsReserved(k) {
			conflicts = append(conflicts, k)
		}
	}
	if len(conflicts) > 0 {
		slices.Sort(conflicts)
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrReservedParameterConflict).
			WithMessage("reserved parameters supplied: " + strings.Join(conflicts, ", "))
	}

	out := make([]Param, 0, len(params)+8)
	out = append(out,
		Param{ParamAction, action},
		Param{ep.merchantKey(), creds.SellerID},
		Param{ParamSignatureVersion, signatureVersion},
		Param{ParamSignatureMethod, signatureMethod},
		Param{ParamTimestamp, timeutil.FormatISO8601(ts)},
		Param{ParamVersion, ep.VersionParam()},
		Param{ParamAccessKeyID, creds.AccessKeyID},
	)
	if creds.AuthToken != "" {
		out = append(out, Param{ParamAuthToken, creds.AuthToken})
	}
	for k, v := range params {
		out = append(out, Param{k, v})
	}

	slices.SortStableFunc(out, func(a, b Param) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out, nil
}

// EncodeQuery joins the parameters as k=v pairs with both sides RFC 3986
// encoded. Order is preserved.
func EncodeQuery(params []Param) string {
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(signature.PercentEncode(p.Key))
		sb.WriteByte('=')
		sb.WriteString(signature.PercentEncode(p.Value))
	}
	return sb.String()
}
