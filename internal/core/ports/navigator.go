package ports

import "github.com/testhub/client/internal/core/domain"

// Navigator moves the user to another page.
type Navigator interface {
	Redirect(page domain.Page)
}
