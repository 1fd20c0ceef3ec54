// Package httperr classifies finished HTTP exchanges against the caller's
// expectations and yields one typed error value per rejected exchange.
//
// The package performs no I/O of its own: the transport layer hands it a
// completed exchange (status, headers, body bytes) and reads back a nil or
// exactly one of the four error types below. Transport-level failures
// (refused connections, timeouts, TLS) are a different error domain and
// never come out of this package.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Domain identifies errors produced by this package, for callers juggling
// several error sources.
const Domain = "respx.httperr"

// Kind says why a finished exchange was rejected. The set is closed: adding
// a kind is a breaking change for callers that switch exhaustively.
type Kind int

const (
	KindFailedResponse        Kind = iota + 1 // status code failed the success predicate
	KindUnexpectedContentType                 // Content-Type did not satisfy the caller
	KindUnexpectedNoContent                   // 204 where an entity was required
	KindUnexpectedRedirect                    // redirect received with redirects disabled
)

func (k Kind) String() string {
	switch k {
	case KindFailedResponse:
		return "failed response"
	case KindUnexpectedContentType:
		return "unexpected content type"
	case KindUnexpectedNoContent:
		return "unexpected no content"
	case KindUnexpectedRedirect:
		return "unexpected redirect"
	}
	return fmt.Sprintf("httperr.Kind(%d)", int(k))
}

// FailedResponseError reports a status code rejected by the caller's success
// predicate.
type FailedResponseError struct {
	StatusCode int            // HTTP status of the response
	BodyData   []byte         // raw body, nil when the body was empty
	BodyJSON   map[string]any // body decoded as JSON, nil unless attached (see Classify)
}

func (e *FailedResponseError) Kind() Kind { return KindFailedResponse }

func (e *FailedResponseError) Error() string {
	return fmt.Sprintf("failed response: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ContentTypeError reports a response whose Content-Type did not satisfy the
// caller's matcher.
type ContentTypeError struct {
	ContentType string // raw header value; empty when the header was absent
	BodyData    []byte // raw body, nil when the body was empty
}

func (e *ContentTypeError) Kind() Kind { return KindUnexpectedContentType }

func (e *ContentTypeError) Error() string {
	if e.ContentType == "" {
		return "unexpected content type: no Content-Type header"
	}
	return fmt.Sprintf("unexpected content type %q", e.ContentType)
}

// NoContentError reports a 204 No Content response where the caller required
// an entity body. There is no body, so it carries no context at all.
type NoContentError struct{}

func (e *NoContentError) Kind() Kind { return KindUnexpectedNoContent }

func (e *NoContentError) Error() string {
	return "204 No Content where an entity was expected"
}

// RedirectError reports a redirect response received while the caller had
// redirects disabled.
type RedirectError struct {
	StatusCode int      // HTTP status of the response
	Location   *url.URL // Location header; nil when absent or unparsable
	BodyData   []byte   // raw body, nil when the body was empty
}

func (e *RedirectError) Kind() Kind { return KindUnexpectedRedirect }

func (e *RedirectError) Error() string {
	if e.Location == nil {
		return fmt.Sprintf("unexpected redirect: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("unexpected redirect: %d %s to %s", e.StatusCode, http.StatusText(e.StatusCode), e.Location)
}

// KindOf reports the classification kind of err, unwrapping as needed.
// ok is false when err did not come out of this package.
func KindOf(err error) (k Kind, ok bool) {
	var (
		failed   *FailedResponseError
		ctype    *ContentTypeError
		nocont   *NoContentError
		redirect *RedirectError
	)
	switch {
	case errors.As(err, &failed):
		return KindFailedResponse, true
	case errors.As(err, &ctype):
		return KindUnexpectedContentType, true
	case errors.As(err, &nocont):
		return KindUnexpectedNoContent, true
	case errors.As(err, &redirect):
		return KindUnexpectedRedirect, true
	}
	return 0, false
}
