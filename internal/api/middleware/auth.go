package middleware

import (
	"net/http"

	"github.com/testhub/client/internal/core/credential"
	"github.com/testhub/client/internal/core/ports"
)

// BearerAuth returns a RoundTripper that attaches the credential of the
// current session to every outbound request. The credential is recomputed per
// request; without a session the request goes out unauthenticated.
func BearerAuth(sessions ports.SessionStore, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		headers := credential.Encode(sessions.Get(req.Context()))
		if len(headers) == 0 {
			return next.RoundTrip(req)
		}

		// RoundTrippers must not mutate the caller's request.
		out := req.Clone(req.Context())
		for k, v := range headers {
			out.Header.Set(k, v)
		}
		return next.RoundTrip(out)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
