package feedback

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/ui/locale"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "missing fields", err: &domain.ValidationError{Message: domain.MsgMissingFields}, want: "Заполните все поля и выберите роль."},
		{name: "password mismatch", err: &domain.ValidationError{Message: domain.MsgPasswordMismatch}, want: "Пароли не совпадают."},
		{name: "missing credentials", err: &domain.ValidationError{Message: domain.MsgMissingCredentials}, want: "Введите логин и пароль."},
		{name: "other validation", err: &domain.ValidationError{Message: "login too long"}, want: "login too long"},
		{name: "server text", err: &domain.APIError{Op: "register", Status: 409, Message: "User exists"}, want: "User exists"},
		{name: "wrapped api error", err: fmt.Errorf("login: %w", &domain.APIError{Status: 401, Message: "Неверный логин или пароль"}), want: "Неверный логин или пароль"},
		{name: "network", err: &domain.NetworkError{Op: "login", Err: errors.New("dial tcp: connection refused")}, want: "Ошибка сети. Запустите сервер (npm start)."},
		{name: "storage", err: &domain.StorageError{Op: "set", Key: "currentUser", Err: errors.New("disk full")}, want: locale.Russian.Unexpected},
		{name: "unknown", err: errors.New("boom"), want: locale.Russian.Unexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Message(tc.err, locale.Russian, zerolog.Nop()); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestMessage_LogsUnexpected(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	Message(errors.New("boom"), locale.English, log)
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("expected the cause to be logged, got %q", buf.String())
	}

	buf.Reset()
	Message(&domain.ValidationError{Message: domain.MsgMissingFields}, locale.English, log)
	if buf.Len() != 0 {
		t.Fatalf("known errors must not be logged, got %q", buf.String())
	}
}
