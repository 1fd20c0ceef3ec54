// Demo: play the transport collaborator's role by hand — perform one GET,
// snapshot the response, classify it, and branch on the error kind.
//
// Set RESPX_DEMO_URL (flag or .env) to point it somewhere else.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/bodrovis/respx/httperr"
	"github.com/bodrovis/respx/testutils"
)

func main() {
	_ = testutils.LoadDotEnv()

	url := flag.String("url", testutils.GetEnv("RESPX_DEMO_URL", "https://httpbingo.org/status/500"), "URL to fetch and classify")
	flag.Parse()

	// redirects stay visible to the classifier instead of being followed
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(*url)
	if err != nil {
		fmt.Fprintln(os.Stderr, "transport error:", err)
		os.Exit(1)
	}
	ex, err := httperr.Snapshot(resp)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read response:", err)
		os.Exit(1)
	}

	cerr := httperr.Classify(ex, httperr.Expectations{
		ContentType:   httperr.MatchMediaType("application/json"),
		RequireEntity: true,
	})
	if cerr == nil {
		fmt.Printf("accepted: %d, %d body bytes\n", ex.StatusCode, len(ex.Body))
		return
	}

	var (
		failed   *httperr.FailedResponseError
		ctype    *httperr.ContentTypeError
		nocont   *httperr.NoContentError
		redirect *httperr.RedirectError
	)
	switch {
	case errors.As(cerr, &failed):
		fmt.Printf("failed response: status=%d body=%dB json=%v\n",
			failed.StatusCode, len(failed.BodyData), failed.BodyJSON)
	case errors.As(cerr, &ctype):
		fmt.Printf("wrong content type: %q (%dB body)\n", ctype.ContentType, len(ctype.BodyData))
	case errors.As(cerr, &nocont):
		fmt.Println("204 No Content but an entity was required")
	case errors.As(cerr, &redirect):
		fmt.Printf("unexpected redirect: status=%d location=%v\n", redirect.StatusCode, redirect.Location)
	}
	fmt.Println("retryable:", httperr.IsRetryable(cerr))
}
