package credential

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/testhub/client/internal/core/domain"
)

func TestEncode_NilUser(t *testing.T) {
	headers := Encode(nil)
	if headers == nil {
		t.Fatalf("expected empty map, got nil")
	}
	if len(headers) != 0 {
		t.Fatalf("expected no headers, got %v", headers)
	}
}

func TestEncode_OnlyLoginAndRole(t *testing.T) {
	users := []domain.User{
		{ID: "42", Login: "alice", Role: domain.RoleTeacher},
		{ID: "u-1", Login: "bob", Role: domain.RoleStudent},
		{ID: "", Login: "", Role: "admin"},
		{ID: "9", Login: "Пётр <&>", Role: domain.RoleStudent},
	}
	for _, user := range users {
		headers := Encode(&user)
		if len(headers) != 1 {
			t.Fatalf("expected exactly one header, got %v", headers)
		}
		value, ok := headers["Authorization"]
		if !ok {
			t.Fatalf("expected Authorization header, got %v", headers)
		}

		raw, err := base64.StdEncoding.DecodeString(value[len("Bearer "):])
		if err != nil {
			t.Fatalf("token is not base64: %v", err)
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			t.Fatalf("token is not json: %v", err)
		}
		if len(fields) != 2 || fields["login"] != user.Login || fields["role"] != string(user.Role) {
			t.Fatalf("expected only login and role, got %v", fields)
		}

		claims, err := Decode(value)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if claims.Login != user.Login || claims.Role != user.Role {
			t.Fatalf("round trip mismatch: %+v vs %+v", claims, user)
		}
	}
}

func TestToken_MatchesBrowserEncoding(t *testing.T) {
	// btoa(unescape(encodeURIComponent(JSON.stringify({login:"alice",role:"teacher"}))))
	got := Token(domain.User{ID: "1", Login: "alice", Role: domain.RoleTeacher})
	if got != "eyJsb2dpbiI6ImFsaWNlIiwicm9sZSI6InRlYWNoZXIifQ==" {
		t.Fatalf("unexpected token %s", got)
	}

	raw, _ := base64.StdEncoding.DecodeString(Token(domain.User{Login: "a<b", Role: domain.RoleStudent}))
	if string(raw) != `{"login":"a<b","role":"student"}` {
		t.Fatalf("expected unescaped json, got %s", raw)
	}
}

func TestToken_LineSeparatorsLiteral(t *testing.T) {
	cases := []struct {
		login string
		json  string
	}{
		{login: "a\u2028b\u2029c", json: "{\"login\":\"a\u2028b\u2029c\",\"role\":\"student\"}"},
		// A literal backslash before "u2028" stays escaped.
		{login: `a\u2028`, json: `{"login":"a\\u2028","role":"student"}`},
		{login: "\\\u2028", json: "{\"login\":\"\\\\\u2028\",\"role\":\"student\"}"},
	}
	for _, tc := range cases {
		user := domain.User{Login: tc.login, Role: domain.RoleStudent}
		want := base64.StdEncoding.EncodeToString([]byte(tc.json))
		if got := Token(user); got != want {
			t.Errorf("Token(%q): expected %s, got %s", tc.login, want, got)
		}
		claims, err := Decode("Bearer " + Token(user))
		if err != nil || claims.Login != tc.login {
			t.Errorf("round trip of %q: got %+v, err %v", tc.login, claims, err)
		}
	}
}

func TestDecode_Rejects(t *testing.T) {
	cases := []struct {
		header string
		want   error
	}{
		{header: "", want: ErrMissingBearer},
		{header: "Bearer", want: ErrMissingBearer},
		{header: "Token abc", want: ErrMissingBearer},
		{header: "Bearer !!!", want: ErrMalformedToken},
		{header: "Bearer " + b64("nope"), want: ErrMalformedToken},
		{header: "Bearer " + b64(`{"login":"a","role":"b","id":1}`), want: ErrMalformedToken},
	}
	for _, tc := range cases {
		if _, err := Decode(tc.header); !errors.Is(err, tc.want) {
			t.Fatalf("Decode(%q): expected %v, got %v", tc.header, tc.want, err)
		}
	}
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }
