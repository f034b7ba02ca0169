package mws

import (
	"net/http"

	"github.com/IvanTurko/mws-sdk-go/internal/signature"
	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

// SignedQuery is the outcome of signing a canonical parameter set.
type SignedQuery struct {
	// Query is the encoded canonical query without the signature.
	Query        string
	StringToSign string
	// Signature is the base64 HMAC-SHA256 digest.
	Signature string
	// EncodedSignature is Signature percent-encoded for the wire.
	EncodedSignature string
}

// Encoded returns the query with the Signature parameter appended last.
func (s SignedQuery) Encoded() string {
	return s.Query + "&" + ParamSignature + "=" + s.EncodedSignature
}

// Signer computes request signatures with one secret key.
type Signer struct {
	secret string
}

// NewSigner returns a signer for creds.SecretKey.
func NewSigner(creds Credentials) (*Signer, error) {
	if creds.SecretKey == "" {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("NewSigner").
			WithKind(sdkerr.ErrConfiguration).
			WithMessage("secret key is required")
	}
	return &Signer{secret: creds.SecretKey}, nil
}

// Sign signs a sorted canonical parameter set for a POST to host+path.
func (s *Signer) Sign(host, path string, params []Param) (SignedQuery, error) {
	if host == "" {
		return SignedQuery{}, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("Signer.Sign").
			WithKind(sdkerr.ErrConfiguration).
			WithMessage("host is required")
	}
	if path == "" {
		path = "/"
	}

	query := EncodeQuery(params)
	toSign := signature.ApplyRFC3986(http.MethodPost + "\n" + host + "\n" + path + "\n" + query)
	sig := signature.HMACSHA256(toSign, s.secret)

	return SignedQuery{
		Query:            query,
		StringToSign:     toSign,
		Signature:        sig,
		EncodedSignature: signature.EncodeSignature(sig),
	}, nil
}
