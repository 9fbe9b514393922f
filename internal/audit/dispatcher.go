package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionActivityCreated = "activity_created"
	ActionActivityUpdated = "activity_updated"
	ActionActivityDeleted = "activity_deleted"
	ActionUserRegistered  = "user_registered"

	EntityActivity = "activity"
	EntityUser     = "user"
)

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Filter struct {
	UserID string
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// Dispatcher grava auditoria em segundo plano. Auditoria nunca derruba a
// requisição: com a fila cheia o evento é descartado.
type Dispatcher struct {
	sink   Sink
	logger *slog.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.logger.Error("audit error",
				slog.String("action", ev.Action),
				slog.String("error", err.Error()))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("audit dispatcher closed, dropping event", slog.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close para de aceitar eventos e espera a fila esvaziar ou ctx expirar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
