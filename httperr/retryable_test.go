package httperr_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/bodrovis/respx/httperr"
)

// mock net.Error
type mockNetErr struct {
	msg     string
	timeout bool
}

func (m mockNetErr) Error() string { return m.msg }
func (m mockNetErr) Timeout() bool { return m.timeout }

func TestIsRetryable_Timeouts(t *testing.T) {
	timeoutErr := mockNetErr{msg: "i/o timeout", timeout: true}
	nonTimeoutErr := mockNetErr{msg: "conn refused", timeout: false}

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"net timeout", timeoutErr, true},
		{"wrapped net timeout", fmt.Errorf("wrap: %w", timeoutErr), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"net non-timeout", nonTimeoutErr, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := httperr.IsRetryable(tc.err)
			if got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsRetryable_ShortReads(t *testing.T) {
	for _, err := range []error{io.EOF, io.ErrUnexpectedEOF, io.ErrClosedPipe} {
		if !httperr.IsRetryable(fmt.Errorf("wrap: %w", err)) {
			t.Fatalf("IsRetryable(%v) = false, want true", err)
		}
	}
}

func TestIsRetryable_ClassifiedStatuses(t *testing.T) {
	retryables := []int{
		http.StatusRequestTimeout,      // 408
		http.StatusTooManyRequests,     // 429
		http.StatusInternalServerError, // 500
		http.StatusBadGateway,          // 502
		http.StatusServiceUnavailable,  // 503
		http.StatusGatewayTimeout,      // 504
	}
	for _, st := range retryables {
		t.Run(fmt.Sprintf("status_%d_retryable", st), func(t *testing.T) {
			err := error(&httperr.FailedResponseError{StatusCode: st})
			if !httperr.IsRetryable(err) {
				t.Fatalf("IsRetryable(%d) = false, want true", st)
			}
			// wrapped
			if !httperr.IsRetryable(fmt.Errorf("wrap: %w", err)) {
				t.Fatalf("IsRetryable(wrapped %d) = false, want true", st)
			}
		})
	}

	nonRetryables := []int{
		http.StatusBadRequest,   // 400
		http.StatusUnauthorized, // 401
		http.StatusForbidden,    // 403
		http.StatusNotFound,     // 404
		418,
	}
	for _, st := range nonRetryables {
		t.Run(fmt.Sprintf("status_%d_nonretryable", st), func(t *testing.T) {
			if httperr.IsRetryable(&httperr.FailedResponseError{StatusCode: st}) {
				t.Fatalf("IsRetryable(%d) = true, want false", st)
			}
		})
	}
}

func TestIsRetryable_OtherKindsNever(t *testing.T) {
	others := []error{
		&httperr.ContentTypeError{ContentType: "text/html"},
		&httperr.NoContentError{},
		&httperr.RedirectError{StatusCode: http.StatusFound},
	}
	for _, err := range others {
		if httperr.IsRetryable(err) {
			t.Fatalf("IsRetryable(%T) = true, want false", err)
		}
	}
}

func TestIsRateLimited(t *testing.T) {
	err429 := &httperr.FailedResponseError{StatusCode: http.StatusTooManyRequests}
	if !httperr.IsRateLimited(err429) {
		t.Fatalf("IsRateLimited(429) = false, want true")
	}
	if !httperr.IsRateLimited(fmt.Errorf("wrap: %w", err429)) {
		t.Fatalf("IsRateLimited(wrapped 429) = false, want true")
	}
	if httperr.IsRateLimited(&httperr.FailedResponseError{StatusCode: http.StatusServiceUnavailable}) {
		t.Fatalf("IsRateLimited(503) = true, want false")
	}
	if httperr.IsRateLimited(errors.New("nope")) {
		t.Fatalf("IsRateLimited(plain error) = true, want false")
	}
}
