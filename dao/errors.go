package dao

import "errors"

// Kind buckets every engine failure into the coarse taxonomy callers branch on.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindAuthorization - caller lacks the required role or identity.
	KindAuthorization
	// KindInvalidState - operation attempted outside its valid lifecycle stage.
	KindInvalidState
	// KindInsufficientResources - balance, funds or voting power below threshold.
	KindInsufficientResources
	// KindAlreadyDone - duplicate vote, duplicate execution, duplicate join.
	KindAlreadyDone
	// KindNotFound - unknown proposal or member. A miss, not a fault.
	KindNotFound
	// KindInvalidInput - malformed category, amount below floor, empty fields.
	KindInvalidInput
)

// String prints the kind for logs.
func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindInvalidState:
		return "invalid_state"
	case KindInsufficientResources:
		return "insufficient_resources"
	case KindAlreadyDone:
		return "already_done"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is a sentinel engine failure. All operations abort atomically when
// returning one: no partial state is observable afterwards.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind exposes the taxonomy bucket.
func (e *Error) Kind() Kind { return e.kind }

func newErr(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

var (
	ErrAlreadyInitialized      = newErr(KindInvalidState, "dao already initialized")
	ErrNotInitialized          = newErr(KindInvalidState, "dao not initialized")
	ErrDaoPaused               = newErr(KindInvalidState, "dao is paused")
	ErrNotAuthorized           = newErr(KindAuthorization, "caller is not the admin")
	ErrAlreadyMember           = newErr(KindAlreadyDone, "already a member")
	ErrMemberNotFound          = newErr(KindNotFound, "member not found")
	ErrProposalNotFound        = newErr(KindNotFound, "proposal not found")
	ErrInsufficientTokens      = newErr(KindInsufficientResources, "insufficient token balance")
	ErrInsufficientFunds       = newErr(KindInsufficientResources, "insufficient treasury funds")
	ErrInvalidCategory         = newErr(KindInvalidInput, "invalid proposal category")
	ErrInvalidAmount           = newErr(KindInvalidInput, "amount below minimum")
	ErrInvalidTitle            = newErr(KindInvalidInput, "title must not be empty")
	ErrInvalidAddress          = newErr(KindInvalidInput, "address must not be empty")
	ErrProposalNotOpen         = newErr(KindInvalidState, "proposal is not open")
	ErrVotingEnded             = newErr(KindInvalidState, "voting period has ended")
	ErrAlreadyVoted            = newErr(KindAlreadyDone, "already voted on this proposal")
	ErrNoVotingPower           = newErr(KindInsufficientResources, "voting power is zero")
	ErrProposalAlreadyExecuted = newErr(KindAlreadyDone, "proposal already executed")
	ErrExecutionNotReady       = newErr(KindInvalidState, "execution delay has not elapsed")
)

// KindOf classifies any error returned by the engine, unwrapping as needed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return KindUnknown
}

// IsNotFound is a small convenience for the query surface where a miss is a
// regular result rather than a fault.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
