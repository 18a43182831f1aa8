// Package credential derives the bearer credential the backend expects from
// the current session.
//
// The token is base64(JSON({login, role})). It is not signed and not
// encrypted: any holder can decode it and anyone can forge one. It asserts an
// identity to the backend and proves nothing. Treat it as a transport
// convention, never as a security boundary.
package credential

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/testhub/client/internal/core/domain"
)

const (
	HeaderName   = "Authorization"
	bearerPrefix = "Bearer"
)

var (
	ErrMissingBearer  = errors.New("missing bearer credential")
	ErrMalformedToken = errors.New("malformed bearer token")
)

// Claims is everything the token carries. The user id is deliberately absent.
type Claims struct {
	Login string      `json:"login"`
	Role  domain.Role `json:"role"`
}

// Encode returns the headers to attach for user: empty when user is nil,
// otherwise a single Authorization entry.
func Encode(user *domain.User) map[string]string {
	if user == nil {
		return map[string]string{}
	}
	return map[string]string{HeaderName: bearerPrefix + " " + Token(*user)}
}

// Token encodes the login and role of user.
func Token(user domain.User) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Match JSON.stringify: keep <, > and & literal.
	enc.SetEscapeHTML(false)
	// Two string fields: encoding cannot fail.
	_ = enc.Encode(Claims{Login: user.Login, Role: user.Role})
	payload := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	return base64.StdEncoding.EncodeToString(unescapeLineSeparators(payload))
}

// unescapeLineSeparators writes U+2028 and U+2029 literally, as
// JSON.stringify does; encoding/json always escapes them. Invalid UTF-8 still
// becomes U+FFFD, which a browser string cannot contain in the first place.
func unescapeLineSeparators(payload []byte) []byte {
	if !bytes.Contains(payload, []byte(`\u202`)) {
		return payload
	}
	out := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		if payload[i] != '\\' {
			out = append(out, payload[i])
			continue
		}
		rest := payload[i:]
		switch {
		case bytes.HasPrefix(rest, []byte(`\u2028`)):
			out = append(out, "\u2028"...)
			i += len(`\u2028`) - 1
		case bytes.HasPrefix(rest, []byte(`\u2029`)):
			out = append(out, "\u2029"...)
			i += len(`\u2029`) - 1
		default:
			// Copy the whole escape so an escaped backslash is never
			// mistaken for the start of another one.
			out = append(out, payload[i], payload[i+1])
			i++
		}
	}
	return out
}

// Decode parses an Authorization header value produced by Encode.
func Decode(header string) (Claims, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerPrefix) || parts[1] == "" {
		return Claims{}, ErrMissingBearer
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}

	var claims Claims
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&claims); err != nil {
		return Claims{}, errors.Join(ErrMalformedToken, err)
	}
	return claims, nil
}
