package mws

// State is a step in the life of one call.
type State uint8

const (
	StateBuilding State = iota
	StateSigning
	StateSending
	StateAwaitingResponse
	StateDecoded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "building"
	case StateSigning:
		return "signing"
	case StateSending:
		return "sending"
	case StateAwaitingResponse:
		return "awaiting_response"
	case StateDecoded:
		return "decoded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == StateDecoded || s == StateFailed
}
