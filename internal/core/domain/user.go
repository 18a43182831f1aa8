package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// Role is the user's kind of account. Anything other than RoleTeacher and
// RoleStudent is carried verbatim and rendered as-is.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// UserID is the backend identifier of a user. The backend may send it as a
// JSON number or a JSON string; both are accepted and kept as text.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so the persisted record keeps
// the backend's shape.
func (id UserID) MarshalJSON() ([]byte, error) {
	s := string(id)
	if s == "" {
		return []byte("null"), nil
	}
	if isJSONNumber(s) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func isJSONNumber(s string) bool {
	if s[0] != '-' && (s[0] < '0' || s[0] > '9') {
		return false
	}
	return json.Valid([]byte(s))
}

// User is the session record for the authenticated user.
type User struct {
	ID    UserID `json:"id"`
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

// Initial returns the uppercased first character of the login, or "?" when
// the login is empty. A login that does not start with valid UTF-8 yields its
// first byte.
func (u User) Initial() string {
	r, size := utf8.DecodeRuneInString(u.Login)
	if size == 0 {
		return "?"
	}
	if r == utf8.RuneError && size == 1 {
		// Not UTF-8: keep the raw byte.
		return u.Login[:1]
	}
	return strings.ToUpper(string(r))
}

// IsTeacher reports whether the user has the teacher role.
func (u User) IsTeacher() bool { return u.Role == RoleTeacher }

// IsStudent reports whether the user has the student role.
func (u User) IsStudent() bool { return u.Role == RoleStudent }
