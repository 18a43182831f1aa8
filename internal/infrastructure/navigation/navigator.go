// Package navigation stands in for browser redirects in the terminal front end.
package navigation

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
)

// Recorder remembers every redirect and announces it on out.
type Recorder struct {
	out io.Writer
	log zerolog.Logger

	mu    sync.Mutex
	pages []domain.Page
}

var _ ports.Navigator = (*Recorder)(nil)

func NewRecorder(out io.Writer, log zerolog.Logger) *Recorder {
	return &Recorder{out: out, log: log}
}

func (r *Recorder) Redirect(page domain.Page) {
	r.mu.Lock()
	r.pages = append(r.pages, page)
	r.mu.Unlock()

	r.log.Debug().Str("page", string(page)).Msg("redirect")
	if r.out != nil {
		fmt.Fprintf(r.out, "-> %s\n", page)
	}
}

// Last returns the most recent redirect target.
func (r *Recorder) Last() (domain.Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pages) == 0 {
		return "", false
	}
	return r.pages[len(r.pages)-1], true
}

// Pages returns all redirect targets in order.
func (r *Recorder) Pages() []domain.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Page(nil), r.pages...)
}
