package session

import (
	"fmt"

	"github.com/talentlink/marketplace/internal/lifecycle"
)

// TransitionError is a local, pre-network rejection of a transition
// intent. The session layer raises it without contacting the server.
type TransitionError struct {
	Kind      lifecycle.Kind
	Current   string
	Requested string
	Reason    lifecycle.Reason
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s transition %s -> %s rejected: %s", e.Kind, e.Current, e.Requested, e.Reason)
}

// Terminal reports whether the rejection happened because the record is
// in a state no transition leaves.
func (e *TransitionError) Terminal() bool {
	return e.Reason == lifecycle.ReasonTerminalState
}

// RemoteError is a non-2xx reply from the gateway. The confirmed state
// stays untouched when one of these comes back.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server replied %d: %s", e.StatusCode, e.Message)
}
