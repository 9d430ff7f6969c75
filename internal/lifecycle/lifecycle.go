// Package lifecycle is the single source of truth for legal status
// transitions. It is shared by the session layer, which fast-fails before
// any network call, and by the gateway service, which is the final arbiter.
package lifecycle

import (
	api "github.com/talentlink/marketplace/api/v1alpha1"
)

type Kind string

const (
	KindJob           Kind = "job"
	KindApplication   Kind = "application"
	KindCourseInquiry Kind = "course_inquiry"
	KindVerification  Kind = "verification"
)

// Verification is not a multi-state machine but it goes through the same
// validator, so its two values get status names.
const (
	VerificationUnverified = "unverified"
	VerificationVerified   = "verified"
)

type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoSuchEdge    Reason = "no_such_edge"
	ReasonTerminalState Reason = "terminal_state"
	ReasonUnauthorized  Reason = "unauthorized"
	ReasonUnknownKind   Reason = "unknown_kind"
)

// Decision is the outcome of validating a transition intent.
// A no-op (requested == current) is allowed and flagged so callers can
// skip the network round-trip.
type Decision struct {
	Allowed bool
	Noop    bool
	Reason  Reason
}

func allowed() Decision {
	return Decision{Allowed: true}
}

func noop() Decision {
	return Decision{Allowed: true, Noop: true}
}

func rejected(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Validate maps (entity kind, current status, requested status, actor role)
// to a decision. Pure and synchronous; edges not present in the tables are
// rejected.
func Validate(kind Kind, current, requested string, role api.Role) Decision {
	if _, ok := api.StringToRole(string(role)); !ok {
		return rejected(ReasonUnauthorized)
	}

	edges, ok := tables[kind]
	if !ok {
		return rejected(ReasonUnknownKind)
	}

	// Requesting the state the record is already in is already satisfied,
	// terminal or not.
	if current == requested {
		return noop()
	}

	if IsTerminal(kind, current) {
		return rejected(ReasonTerminalState)
	}

	roles, ok := edges[edge{from: current, to: requested}]
	if !ok {
		return rejected(ReasonNoSuchEdge)
	}

	for _, r := range roles {
		if r == role {
			return allowed()
		}
	}
	return rejected(ReasonUnauthorized)
}

// IsTerminal reports whether no transition leaves the given status.
func IsTerminal(kind Kind, status string) bool {
	return terminals[kind][status]
}
