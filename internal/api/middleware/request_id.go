package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID carries a per-request id so client and backend logs can be
// correlated.
const HeaderRequestID = "X-Request-ID"

// RequestID returns a RoundTripper that stamps a fresh request id on requests
// that do not carry one yet.
func RequestID(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(HeaderRequestID) != "" {
			return next.RoundTrip(req)
		}
		out := req.Clone(req.Context())
		out.Header.Set(HeaderRequestID, uuid.NewString())
		return next.RoundTrip(out)
	})
}
