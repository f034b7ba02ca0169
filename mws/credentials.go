package mws

import (
	"log/slog"
	"strings"

	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

// Credentials identify the seller account. They are never modified by the
// client.
type Credentials struct {
	AccessKeyID string
	SecretKey   string
	SellerID    string
	// AuthToken is the MWSAuthToken granted to a developer acting on behalf
	// of a seller. Optional.
	AuthToken string
}

// Validate checks that the mandatory fields are set.
func (c Credentials) Validate() error {
	var errs []string

	if c.AccessKeyID == "" {
		errs = append(errs, "access key id is required")
	}
	if c.SecretKey == "" {
		errs = append(errs, "secret key is required")
	}
	if c.SellerID == "" {
		errs = append(errs, "seller id is required")
	}

	if len(errs) > 0 {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("Credentials.Validate").
			WithKind(sdkerr.ErrConfiguration).
			WithMessage(strings.Join(errs, "; "))
	}
	return nil
}

// LogValue keeps the secret and token out of logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("access_key_id", c.AccessKeyID),
		slog.String("seller_id", c.SellerID),
		slog.Bool("auth_token", c.AuthToken != ""),
	)
}
