package hinge

import "errors"

var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrSMSCodeRejected indicates the SMS one-time code was not accepted.
	ErrSMSCodeRejected = errors.New("SMS code rejected")
	// ErrEmailCodeRejected indicates the email one-time code was not accepted.
	ErrEmailCodeRejected = errors.New("email code rejected")
	// ErrMissingCaseID indicates the email challenge response carried no case identifier.
	ErrMissingCaseID = errors.New("email challenge response has no case ID")
	// ErrMissingToken indicates a successful verification response carried no bearer token.
	ErrMissingToken = errors.New("verification response has no token")
)
