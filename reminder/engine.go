// Package reminder implements the polling alarm engine. The engine reads
// the custom-reminder set and the active treatment plan from the store,
// compares each scheduled "HH:MM" against the current wall-clock minute, and
// fires at most one alert per reminder identity per 60-second cooldown
// window. The fire record is in-memory only; a restart re-arms everything.
package reminder

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hgapps/medicare-api/model"
)

// CooldownWindow is the span after a fire during which the same identity
// cannot fire again. It is elapsed-time based, not minute-boundary aware.
const CooldownWindow = 60 * time.Second

// DefaultPollInterval balances responsiveness against wasted cycles for
// minute-granularity schedules. Any interval up to 60s is accepted; coarser
// polling risks skipping a matching minute entirely.
const DefaultPollInterval = 5 * time.Second

// State of one reminder identity with respect to the cooldown window.
type State string

const (
	StateArmed       State = "ARMED"
	StateCoolingDown State = "COOLING_DOWN"
)

// Source supplies the schedules the engine evaluates on each tick.
type Source interface {
	CustomReminders() []model.CustomReminder
	ActivePlan() *model.TreatmentPlan
}

// Alert is the payload emitted for one fire: a notification request plus an
// audio cue resolved through the sound library.
type Alert struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Dosage  string     `json:"dosage"`
	Time    string     `json:"time"`
	Sound   AlarmSound `json:"sound"`
	FiredAt time.Time  `json:"firedAt"`
	// NotifyEnabled reflects the notification permission at fire time;
	// when false the alert degrades to the audio cue only.
	NotifyEnabled bool `json:"notifyEnabled"`
}

// Title renders the notification title line.
func (a Alert) Title() string { return fmt.Sprintf("MediCare: Time for %s", a.Name) }

// Body renders the notification body line.
func (a Alert) Body() string { return fmt.Sprintf("Dosage: %s", a.Dosage) }

// Alerter receives fired alerts. Delivery is fire-and-forget; an alerter
// must not block the tick.
type Alerter interface {
	Alert(a Alert)
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func(a Alert)

func (f AlerterFunc) Alert(a Alert) { f(a) }

// PlanReminderID synthesizes the identity of a plan-derived reminder from
// its medicine index and schedule time. The derivation is deterministic so
// repeated plan loads keep stable identities, but it is NOT stable across
// plan regeneration: a regenerated plan with reordered medicines changes
// identities.
func PlanReminderID(medicineIndex int, timeStr string) string {
	return fmt.Sprintf("plan-%d-%s", medicineIndex, timeStr)
}

// Option configures an Engine.
type Option func(*Engine)

// WithInterval overrides the poll interval. Intervals above 60s are clamped
// since they could skip a matching minute.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d <= 0 || d > time.Minute {
			d = time.Minute
		}
		e.interval = d
	}
}

// WithClock overrides the wall-clock source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithAlerter registers an additional alert sink.
func WithAlerter(a Alerter) Option {
	return func(e *Engine) { e.alerters = append(e.alerters, a) }
}

// WithLeader attaches a single-instance leader lock. Without one the engine
// always considers itself the firing instance.
func WithLeader(l *Leader) Option {
	return func(e *Engine) { e.leader = l }
}

// WithNotifications sets whether fired alerts request a system notification
// in addition to the audio cue.
func WithNotifications(enabled bool) Option {
	return func(e *Engine) { e.notifyEnabled = enabled }
}

// Engine evaluates reminder schedules against wall-clock time.
type Engine struct {
	src           Source
	alerters      []Alerter
	leader        *Leader
	interval      time.Duration
	notifyEnabled bool
	now           func() time.Time

	mu        sync.Mutex
	lastFired map[string]time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewEngine creates an engine over the given schedule source. By default it
// polls every 5 seconds, logs fired alerts, and requests notifications.
func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{
		src:           src,
		interval:      DefaultPollInterval,
		notifyEnabled: true,
		now:           time.Now,
		lastFired:     make(map[string]time.Time),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.alerters) == 0 {
		e.alerters = append(e.alerters, AlerterFunc(logAlert))
	}
	return e
}

// Start launches the poll loop. Stopping the engine only clears the timer;
// in-flight alert deliveries cannot be cancelled once issued.
func (e *Engine) Start() {
	go func() {
		defer close(e.doneCh)
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-e.stopCh:
				return
			case <-ticker.C:
				e.Tick(e.now())
			}
		}
	}()
	log.Printf("reminder engine started, polling every %s", e.interval)
}

// Stop halts the poll loop and waits for the current tick to finish.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	<-e.doneCh
}

// Tick evaluates all schedules against now. A missed match (process asleep
// across the minute) is permanently skipped; there is no catch-up.
func (e *Engine) Tick(now time.Time) {
	if e.leader != nil && !e.leader.Acquire(now) {
		return
	}

	currentTime := now.Format("15:04")

	for _, r := range e.src.CustomReminders() {
		if r.AlarmEnabled && r.Time == currentTime {
			e.maybeFire(r.ID, r.Name, r.Dosage, r.Time, r.Sound, now)
		}
	}

	plan := e.src.ActivePlan()
	if plan == nil {
		return
	}
	for idx, med := range plan.GeneratedPlan.Medicines {
		for _, t := range med.Schedule {
			if t == currentTime {
				e.maybeFire(PlanReminderID(idx, t), med.Name, med.Dosage, t, DefaultSoundKey, now)
			}
		}
	}
}

// maybeFire emits one alert for the identity unless it fired within the
// cooldown window. The cooldown is per-identity: a custom reminder and a
// plan-derived reminder colliding on the same minute both fire.
func (e *Engine) maybeFire(id, name, dosage, timeStr, soundKey string, now time.Time) bool {
	e.mu.Lock()
	if last, ok := e.lastFired[id]; ok && now.Sub(last) < CooldownWindow {
		e.mu.Unlock()
		return false
	}
	e.lastFired[id] = now
	e.mu.Unlock()

	alert := Alert{
		ID:            id,
		Name:          name,
		Dosage:        dosage,
		Time:          timeStr,
		Sound:         ResolveSound(soundKey),
		FiredAt:       now,
		NotifyEnabled: e.notifyEnabled,
	}
	for _, a := range e.alerters {
		a.Alert(alert)
	}
	return true
}

// State reports whether the identity may fire on the next exact time match.
// COOLING_DOWN expires automatically once the window elapses, independent of
// clock-match events.
func (e *Engine) State(id string, now time.Time) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if last, ok := e.lastFired[id]; ok && now.Sub(last) < CooldownWindow {
		return StateCoolingDown
	}
	return StateArmed
}

func logAlert(a Alert) {
	log.Printf("reminder fired: %s (%s) at %s sound=%s notify=%t",
		a.Name, a.Dosage, a.Time, a.Sound.Key, a.NotifyEnabled)
}
