package workflow

import (
	"fmt"

	"github.com/DevKrishnasai/fundifyhub-sub001/internal/domain/request"
)

// ErrorKind is the closed taxonomy of workflow failures.
type ErrorKind string

const (
	KindUnknownState      ErrorKind = "UNKNOWN_STATE"
	KindInvalidTransition ErrorKind = "INVALID_TRANSITION"
	KindAuthorization     ErrorKind = "AUTHORIZATION"
	KindValidation        ErrorKind = "VALIDATION"
	KindInvalidOfferTerms ErrorKind = "INVALID_OFFER_TERMS"
	KindStaleState        ErrorKind = "STALE_STATE"
)

// Error is a typed workflow failure. CurrentState/TargetState are set
// for invalid transitions so callers can explain a stale client view.
type Error struct {
	Kind         ErrorKind
	Message      string
	CurrentState request.Status
	TargetState  request.Status
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// Is matches by kind so errors.Is(err, ErrStaleState) works against
// the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Kind-only sentinels for errors.Is checks.
var (
	ErrUnknownState      = &Error{Kind: KindUnknownState}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrAuthorization     = &Error{Kind: KindAuthorization}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrInvalidOfferTerms = &Error{Kind: KindInvalidOfferTerms}
	ErrStaleState        = &Error{Kind: KindStaleState}
)

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewUnknownState(s request.Status) *Error {
	return &Error{Kind: KindUnknownState, Message: fmt.Sprintf("unknown lifecycle state %q", s), CurrentState: s}
}

func NewInvalidTransition(current, target request.Status, action ActionID) *Error {
	return &Error{
		Kind:         KindInvalidTransition,
		Message:      fmt.Sprintf("action %q is not legal from state %s", action, current),
		CurrentState: current,
		TargetState:  target,
	}
}
