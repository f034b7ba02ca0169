package mws

import (
	"errors"
	"time"

	"github.com/IvanTurko/mws-sdk-go/sdkerr"
)

// ServiceStatus is the answer to GetServiceStatus, which every versioned
// section supports.
type ServiceStatus struct {
	// Status is GREEN, GREEN_I, YELLOW or RED.
	Status    string
	Timestamp time.Time
	MessageID string
	Messages  []string
}

// ParseServiceStatus reads a GetServiceStatus result.
func ParseServiceStatus(res *Result) (*ServiceStatus, error) {
	op := "ParseServiceStatus"
	if res == nil || res.Tree == nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithMessage("result has no document")
	}

	node := res.Tree.FindFirst("GetServiceStatusResult")
	if node == nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(&DecodeError{Body: res.Raw, Err: errors.New("GetServiceStatusResult missing")})
	}

	st := &ServiceStatus{
		Status:    node.Child("Status").Text(),
		MessageID: node.Child("MessageId").Text(),
	}
	if ts := node.Child("Timestamp"); ts != nil {
		t, err := ts.Time()
		if err != nil {
			return nil, sdkerr.NewSDKError().
				WithSubsys(subsys).
				WithOp(op).
				WithKind(sdkerr.ErrDecodeError).
				WithCause(&DecodeError{Body: res.Raw, Err: err})
		}
		st.Timestamp = t
	}
	for _, m := range node.FindAll("Text") {
		st.Messages = append(st.Messages, m.Text())
	}
	return st, nil
}
