package httperr

import (
	"errors"
	"io"
	"net/http"
	"syscall"
)

// IsRetryable says "worth another shot?" (the retry loop itself stays with
// the transport layer). It understands both transport errors and the
// classified errors produced by this package.
func IsRetryable(err error) bool {
	// timeouts from net/http, http2, tls, etc.
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// flaky connections / short reads
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var failed *FailedResponseError
	if errors.As(err, &failed) {
		switch failed.StatusCode {
		case http.StatusRequestTimeout, // 408
			http.StatusTooEarly,            // 425
			http.StatusTooManyRequests,     // 429
			http.StatusInternalServerError, // 500
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout:      // 504
			return true
		}
	}
	return false
}

// IsRateLimited reports whether err is a classified 429.
func IsRateLimited(err error) bool {
	var failed *FailedResponseError
	return errors.As(err, &failed) && failed.StatusCode == http.StatusTooManyRequests
}
