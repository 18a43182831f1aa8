package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/testhub/client/internal/core/domain"
)

type registerForm struct {
	Login           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required"`
}

type loginForm struct {
	Login    string `validate:"required"`
	Password string `validate:"required"`
}

// formValidator wraps go-playground/validator and folds its field errors into
// the fixed messages shown next to the forms.
type formValidator struct {
	v *validator.Validate
}

func newFormValidator() *formValidator {
	return &formValidator{v: validator.New()}
}

// validate returns nil or a *domain.ValidationError. A missing field always
// wins over a mismatch, so the user fixes empty inputs first.
func (fv *formValidator) validate(form any, missingMsg string) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate form: %w", err)
	}

	msg := ""
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			return &domain.ValidationError{Message: missingMsg}
		case "eqfield":
			msg = domain.MsgPasswordMismatch
		}
	}
	if msg == "" {
		msg = describe(ve)
	}
	return &domain.ValidationError{Message: msg}
}

// describe renders unexpected validation failures for logs and messages.
func describe(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
