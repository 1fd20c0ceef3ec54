package httperr

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Exchange is one completed request/response pair as seen by the transport
// layer: the status, the headers, and the already-slurped body.
type Exchange struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Snapshot captures resp into an Exchange. It reads and closes the response
// body, so resp must not be reused afterwards. The request itself has
// already happened; Snapshot only drains what the transport produced.
func Snapshot(resp *http.Response) (*Exchange, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Exchange{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Expectations is what the caller considers an acceptable response.
// The zero value accepts any 2xx, follows no redirects, and checks nothing
// else.
type Expectations struct {
	AllowRedirects bool
	ContentType    func(string) bool // nil means no Content-Type check
	RequireEntity  bool              // reject 204 No Content
	SuccessStatus  func(int) bool    // nil means 2xx
}

// MatchMediaType builds a ContentType matcher comparing media types and
// ignoring parameters, so "application/json; charset=utf-8" satisfies
// MatchMediaType("application/json").
func MatchMediaType(want string) func(string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	return func(ct string) bool {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return false
		}
		return mt == want
	}
}

// Classify judges a finished exchange against the caller's expectations and
// returns nil or exactly one error value. The rules run in a fixed order and
// the first hit wins:
//
//  1. 3xx with redirects disallowed      → *RedirectError
//  2. status fails the success predicate → *FailedResponseError
//  3. 204 where an entity is required    → *NoContentError
//  4. Content-Type matcher fails         → *ContentTypeError
//
// BodyJSON on *FailedResponseError is attached only when the Content-Type is
// JSON, the body decodes, and the top-level value is an object; top-level
// null entries are dropped. A body that fails any of that simply ships
// without BodyJSON; it never changes the error kind.
//
// Classify does no I/O and never mutates ex. Identical inputs always yield
// the same verdict, so concurrent calls need no coordination.
func Classify(ex *Exchange, want Expectations) error {
	if ex.StatusCode >= 300 && ex.StatusCode <= 399 && !want.AllowRedirects {
		return &RedirectError{
			StatusCode: ex.StatusCode,
			Location:   locationOf(ex.Header),
			BodyData:   bodyOf(ex),
		}
	}
	if !statusOK(ex.StatusCode, want.SuccessStatus) {
		return &FailedResponseError{
			StatusCode: ex.StatusCode,
			BodyData:   bodyOf(ex),
			BodyJSON:   bodyJSON(ex),
		}
	}
	if ex.StatusCode == http.StatusNoContent && want.RequireEntity {
		return &NoContentError{}
	}
	if want.ContentType != nil && !want.ContentType(contentTypeOf(ex.Header)) {
		return &ContentTypeError{
			ContentType: contentTypeOf(ex.Header),
			BodyData:    bodyOf(ex),
		}
	}
	return nil
}

func statusOK(status int, pred func(int) bool) bool {
	if pred == nil {
		return status >= 200 && status <= 299
	}
	return pred(status)
}

// bodyOf keeps empty bodies out of the payload entirely.
func bodyOf(ex *Exchange) []byte {
	if len(ex.Body) == 0 {
		return nil
	}
	return ex.Body
}

func contentTypeOf(h http.Header) string {
	return h.Get("Content-Type")
}

// locationOf returns nil for an absent header; an unparsable Location is
// treated the same way.
func locationOf(h http.Header) *url.URL {
	loc := h.Get("Location")
	if loc == "" {
		return nil
	}
	u, err := url.Parse(loc)
	if err != nil {
		return nil
	}
	return u
}
