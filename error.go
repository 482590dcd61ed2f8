package broker

import (
	"fmt"
	"strings"
)

// Kind classifies the handful of error shapes that matter to the broker
// client's control flow. Everything else is a pass-through ErrorCode from
// the broker's response payload, or an opaque transport error.
type Kind string

const (
	// ConnectionClosed means the underlying Connection reported that the
	// transport is no longer usable. The broker reacts by clearing its
	// authentication state and disconnecting.
	ConnectionClosed Kind = "CONNECTION_CLOSED"

	// UnsupportedVersion means the broker (ours, or the remote one) has no
	// version of the requested API that it can use. During negotiation this
	// is swallowed and the next lower candidate is tried; after negotiation
	// it is fatal.
	UnsupportedVersion Kind = "UNSUPPORTED_VERSION"

	// MemberIDRequired is returned by JoinGroup when the coordinator wants
	// the caller to retry with the MemberID it supplies.
	MemberIDRequired Kind = "MEMBER_ID_REQUIRED"

	// NonRetriable is the catch-all for failures this layer will never
	// retry on the caller's behalf (SASL failures, exhausted ApiVersions
	// candidates, lock timeouts).
	NonRetriable Kind = "NON_RETRIABLE"
)

// Error satisfies the error interface so that a bare Kind value (e.g.
// broker.MemberIDRequired) can be passed directly as the target of
// errors.Is.
func (k Kind) Error() string { return string(k) }

// Error is the error type returned for every failure this package
// classifies into a Kind. Pass-through broker error codes are carried in
// Code; Kind is always set.
type Error struct {
	Kind    Kind
	Code    ErrorCode
	// MemberID is set only when Kind == MemberIDRequired.
	MemberID string
	Message  string
	// Err, when set, is the underlying error this one wraps (a transport
	// error, a context error, etc).
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("%s: %s", e.Kind, ErrorCode(e.Code))
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, broker.ConnectionClosed) and friends work by
// comparing the Kind carried by a target *Error, or reports a match against
// a bare Kind value passed directly.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

func errConnectionClosed(err error) *Error {
	return &Error{Kind: ConnectionClosed, Err: err}
}

func errUnsupportedVersion(msg string, args ...any) *Error {
	return &Error{Kind: UnsupportedVersion, Message: fmt.Sprintf(msg, args...)}
}

func errMemberIDRequired(memberID string) *Error {
	return &Error{Kind: MemberIDRequired, MemberID: memberID, Message: "member id required"}
}

func errNonRetriable(msg string, args ...any) *Error {
	return &Error{Kind: NonRetriable, Message: fmt.Sprintf(msg, args...)}
}

func errLockTimeout(address string) *Error {
	return &Error{Kind: NonRetriable, Message: fmt.Sprintf("timed out acquiring connect lock for broker %s", address)}
}

// AsMemberIDRequired reports whether err carries a MemberIDRequired
// classification and, if so, returns the member id the coordinator wants
// the caller to retry with.
func AsMemberIDRequired(err error) (memberID string, ok bool) {
	var e *Error
	for err != nil {
		if be, is := err.(*Error); is {
			e = be
			break
		}
		u, is := err.(interface{ Unwrap() error })
		if !is {
			break
		}
		err = u.Unwrap()
	}
	if e == nil || e.Kind != MemberIDRequired {
		return "", false
	}
	return e.MemberID, true
}

// errorList aggregates multiple errors observed while tearing down a
// connection (closing the socket after a failed SASL exchange, for
// instance) into a single error value.
type errorList []error

func (errs errorList) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	default:
		s := make([]string, len(errs))
		for i, e := range errs {
			s[i] = e.Error()
		}
		return strings.Join(s, ": ")
	}
}

func appendError(to error, err error) error {
	if err == nil {
		return to
	}
	if to == nil {
		return err
	}
	if list, ok := to.(errorList); ok {
		return append(list, err)
	}
	return errorList{to, err}
}
