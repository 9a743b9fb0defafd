package timer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-calendar-notify/internal/domain"
)

var ErrIdleBypassUnsupported = errors.New("timer does not support waking while idle")

// FireFunc is called with the registration payload when a wake is due.
type FireFunc func(ctx context.Context, payload string)

type liveWake struct {
	entryID        cron.EntryID
	reg            domain.AlarmRegistration
	allowWhileIdle bool
}

// CronTimer delivers exact one-shot wakes on top of a cron scheduler. While
// the timer is idle, wakes registered without allowWhileIdle are held back
// until idle ends.
type CronTimer struct {
	cron       *cron.Cron
	fire       FireFunc
	idleBypass bool

	mu       sync.Mutex
	live     map[domain.RegistrationKey]*liveWake
	idle     bool
	deferred []domain.AlarmRegistration
}

type Option func(*options)

type options struct {
	idleBypass bool
	location   *time.Location
	logger     *slog.Logger
}

func WithIdleBypass(enabled bool) Option {
	return func(o *options) {
		o.idleBypass = enabled
	}
}

func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func NewCronTimer(fire FireFunc, opts ...Option) *CronTimer {
	o := options{
		idleBypass: true,
		location:   time.Local,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := newCronLogger(o.logger)

	return &CronTimer{
		cron: cron.New(
			cron.WithLocation(o.location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
		fire:       fire,
		idleBypass: o.idleBypass,
		live:       make(map[domain.RegistrationKey]*liveWake),
	}
}

func (t *CronTimer) Start() {
	t.cron.Start()
}

// Stop halts the scheduler and returns a context that is done once running
// wakes have finished.
func (t *CronTimer) Stop() context.Context {
	return t.cron.Stop()
}

func (t *CronTimer) SupportsIdleBypass() bool {
	return t.idleBypass
}

func (t *CronTimer) RegisterExactWake(ctx context.Context, reg domain.AlarmRegistration, allowWhileIdle bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if allowWhileIdle && !t.idleBypass {
		return ErrIdleBypassUnsupported
	}

	key := reg.Key()

	t.mu.Lock()
	defer t.mu.Unlock()

	replaced := t.dropLocked(key)

	// The job may run before Schedule returns. It identifies its wake by
	// pointer and only reads entryID after taking t.mu.
	w := &liveWake{
		reg:            reg,
		allowWhileIdle: allowWhileIdle,
	}
	t.live[key] = w
	w.entryID = t.cron.Schedule(newOnceSchedule(reg.FireTime()), cron.FuncJob(func() {
		t.wake(key, w)
	}))

	slog.DebugContext(ctx, "exact wake registered",
		"key", int64(key),
		"fire_time", reg.FireTime(),
		"allow_while_idle", allowWhileIdle,
		"replaced", replaced,
	)

	return nil
}

// dropLocked removes any scheduled or deferred wake for key.
func (t *CronTimer) dropLocked(key domain.RegistrationKey) bool {
	replaced := false

	if prev, ok := t.live[key]; ok {
		t.cron.Remove(prev.entryID)
		delete(t.live, key)

		replaced = true
	}

	kept := t.deferred[:0]
	for _, reg := range t.deferred {
		if reg.Key() == key {
			replaced = true

			continue
		}

		kept = append(kept, reg)
	}

	t.deferred = kept

	return replaced
}

func (t *CronTimer) wake(key domain.RegistrationKey, w *liveWake) {
	t.mu.Lock()

	if t.live[key] != w {
		t.mu.Unlock()

		return
	}

	delete(t.live, key)
	t.cron.Remove(w.entryID)

	if t.idle && !w.allowWhileIdle {
		t.deferred = append(t.deferred, w.reg)
		t.mu.Unlock()

		slog.Info("wake deferred while idle",
			"key", int64(key),
		)

		return
	}

	t.mu.Unlock()

	t.fire(context.Background(), w.reg.Payload())
}

// SetIdle switches the low-power state. Leaving idle delivers every wake that
// was held back.
func (t *CronTimer) SetIdle(idle bool) {
	t.mu.Lock()

	t.idle = idle

	var pending []domain.AlarmRegistration
	if !idle {
		pending = t.deferred
		t.deferred = nil
	}

	t.mu.Unlock()

	slog.Info("timer idle state changed",
		"idle", idle,
		"released", len(pending),
	)

	for _, reg := range pending {
		t.fire(context.Background(), reg.Payload())
	}
}

func (t *CronTimer) IsIdle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.idle
}

// Lookup returns the registration waiting under key, scheduled or deferred.
func (t *CronTimer) Lookup(key domain.RegistrationKey) (domain.AlarmRegistration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if w, ok := t.live[key]; ok {
		return w.reg, true
	}

	for _, reg := range t.deferred {
		if reg.Key() == key {
			return reg, true
		}
	}

	return domain.AlarmRegistration{}, false
}

// Len counts registrations that have not fired yet.
func (t *CronTimer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.live) + len(t.deferred)
}
