// Package feedback turns client errors into the message shown under a form.
package feedback

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/ui/locale"
)

// Message maps err to displayable text. Known client errors map to
// deterministic messages; anything else is logged and shown as a generic
// message without leaking details. A nil error has no message.
func Message(err error, labels locale.Labels, log zerolog.Logger) string {
	if err == nil {
		return ""
	}

	var (
		ve *domain.ValidationError
		ae *domain.APIError
	)
	switch {
	case errors.As(err, &ve):
		return validationMessage(ve.Message, labels)
	case errors.As(err, &ae) && ae.Message != "":
		return ae.Message
	case errors.Is(err, domain.ErrNetwork):
		return labels.NetworkFailure
	}

	log.Error().
		Err(err).
		Msg("unhandled client error")

	return labels.Unexpected
}

func validationMessage(msg string, labels locale.Labels) string {
	switch msg {
	case domain.MsgMissingFields:
		return labels.MissingFields
	case domain.MsgPasswordMismatch:
		return labels.PasswordMismatch
	case domain.MsgMissingCredentials:
		return labels.MissingCredentials
	default:
		return msg
	}
}
