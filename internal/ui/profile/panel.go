package profile

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/testhub/client/internal/api/metrics"
	"github.com/testhub/client/internal/core/domain"
	"github.com/testhub/client/internal/core/ports"
	"github.com/testhub/client/internal/ui/locale"
)

type Event int

const (
	EventEscape Event = iota
	EventOutsideClick
	EventCloseButton
	EventInsideClick
)

type ModalState string

const (
	ModalHidden  ModalState = "hidden"
	ModalLoading ModalState = "loading"
	ModalReady   ModalState = "ready"
)

// Modal is a snapshot of the panel. Message carries the loading text while
// State is ModalLoading; View is set once State is ModalReady.
type Modal struct {
	State   ModalState
	Message string
	View    View
}

// Panel is the single profile modal of a page. Each Open supersedes the
// previous one; closing cancels whatever load is in flight.
type Panel struct {
	source ports.AssignmentSource
	labels locale.Labels
	log    zerolog.Logger

	mu       sync.Mutex
	modal    Modal
	gen      uint64
	cancel   context.CancelFunc
	onChange func(Modal)
}

func NewPanel(source ports.AssignmentSource, labels locale.Labels, log zerolog.Logger) *Panel {
	return &Panel{
		source: source,
		labels: labels,
		log:    log,
		modal:  Modal{State: ModalHidden},
	}
}

// OnChange registers fn to receive every state change.
func (p *Panel) OnChange(fn func(Modal)) {
	p.mu.Lock()
	p.onChange = fn
	p.mu.Unlock()
}

// View returns the current state.
func (p *Panel) View() Modal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal
}

// Open shows the loading state for user and starts resolving the panel. The
// returned channel is closed once this open has settled: rendered, or
// discarded because the panel was closed or reopened first.
func (p *Panel) Open(ctx context.Context, user domain.User) <-chan struct{} {
	done := make(chan struct{})

	var (
		loadCtx context.Context
		cancel  context.CancelFunc
	)
	if user.IsStudent() {
		loadCtx, cancel = context.WithCancel(ctx)
	}

	p.mu.Lock()
	p.stopLocked()
	p.gen++
	gen := p.gen
	p.cancel = cancel
	p.modal = Modal{State: ModalLoading, Message: p.labels.Loading}
	fn, m := p.onChange, p.modal
	p.mu.Unlock()
	notify(fn, m)

	if cancel == nil {
		p.settle(gen, Build(user, nil, p.labels), metrics.ProfileStatic)
		close(done)
		return done
	}

	go func() {
		defer close(done)
		defer cancel()
		p.load(loadCtx, gen, user)
	}()
	return done
}

func (p *Panel) load(ctx context.Context, gen uint64, user domain.User) {
	tests, err := p.source.AssignedTests(ctx, user.ID)
	if err != nil {
		// Only a close or reopen makes the failure moot. Any other error,
		// the caller's context expiring included, still has to settle.
		if p.superseded(gen) {
			metrics.ProfileLoadsTotal.WithLabelValues(metrics.ProfileDiscarded).Inc()
			return
		}
		p.log.Error().
			Err(err).
			Str("login", user.Login).
			Str("user_id", string(user.ID)).
			Msg("failed to load profile results")
		p.settle(gen, Build(user, nil, p.labels), metrics.ProfileFetchFailed)
		return
	}

	result := metrics.ProfileNoStats
	if _, ok := Aggregate(tests); ok {
		result = metrics.ProfileStats
	}
	p.settle(gen, Build(user, tests, p.labels), result)
}

func (p *Panel) superseded(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen != gen || p.modal.State != ModalLoading
}

// settle publishes view if gen is still the current open.
func (p *Panel) settle(gen uint64, view View, result string) {
	p.mu.Lock()
	if p.gen != gen || p.modal.State != ModalLoading {
		p.mu.Unlock()
		metrics.ProfileLoadsTotal.WithLabelValues(metrics.ProfileDiscarded).Inc()
		return
	}
	p.modal = Modal{State: ModalReady, View: view}
	p.cancel = nil
	fn, m := p.onChange, p.modal
	p.mu.Unlock()

	metrics.ProfileLoadsTotal.WithLabelValues(result).Inc()
	notify(fn, m)
}

// Close hides the panel and cancels any pending load. Closing a hidden panel
// does nothing.
func (p *Panel) Close() {
	p.mu.Lock()
	if p.modal.State == ModalHidden {
		p.mu.Unlock()
		return
	}
	p.stopLocked()
	p.gen++
	p.modal = Modal{State: ModalHidden}
	fn, m := p.onChange, p.modal
	p.mu.Unlock()
	notify(fn, m)
}

// Handle applies a user interaction. Clicks inside the content are ignored.
func (p *Panel) Handle(ev Event) {
	switch ev {
	case EventEscape, EventOutsideClick, EventCloseButton:
		p.Close()
	case EventInsideClick:
	}
}

func (p *Panel) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// notify runs outside the lock so hooks may call back into the panel.
func notify(fn func(Modal), m Modal) {
	if fn != nil {
		fn(m)
	}
}
