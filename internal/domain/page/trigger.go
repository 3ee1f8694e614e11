package page

import (
	"errors"
	"sync"
)

type TriggerState string

const (
	StateIdle    TriggerState = "idle"
	StateLoading TriggerState = "loading"
)

const (
	LabelIdle    = "Load More"
	LabelLoading = "Loading…"
)

var (
	ErrInvalidTransition = errors.New("invalid trigger transition")
)

// Trigger modela el botón "load more": idle -> loading (Begin) y
// loading -> idle (End). No hay otros estados.
type Trigger struct {
	mu    sync.Mutex
	state TriggerState
}

func NewTrigger() *Trigger {
	return &Trigger{state: StateIdle}
}

func (t *Trigger) State() TriggerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Begin deshabilita el disparador. Falla si ya estaba cargando.
func (t *Trigger) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle {
		return ErrInvalidTransition
	}
	t.state = StateLoading
	return nil
}

// End vuelve a habilitar el disparador (load-complete-or-error).
func (t *Trigger) End() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateLoading {
		return ErrInvalidTransition
	}
	t.state = StateIdle
	return nil
}

func (t *Trigger) Disabled() bool {
	return t.State() == StateLoading
}

func (t *Trigger) Label() string {
	if t.Disabled() {
		return LabelLoading
	}
	return LabelIdle
}
