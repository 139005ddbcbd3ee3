// Package spin drives a wheel through a spin cycle: constant-speed cruise,
// a timed linear ease-out, winner resolution and a display pause.
package spin

import (
	"errors"
	"fmt"
	"time"

	"spinwheel/internal/history"
	"spinwheel/internal/util"
	"spinwheel/internal/wheel"

	"github.com/google/uuid"
)

var (
	ErrTooFewItems  = errors.New("at least 2 items are required to spin")
	ErrInvalidPhase = errors.New("invalid phase transition")
)

type Phase int

const (
	Idle Phase = iota
	Spinning
	Decelerating
	Resolving
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	case Decelerating:
		return "decelerating"
	case Resolving:
		return "resolving"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Scheduler is how the controller asks its host for the next tick. A host
// calls Controller.Tick exactly once per request.
type Scheduler interface {
	RequestFrame()
	RequestAfter(d time.Duration)
}

// Settings are the timing constants of a spin cycle.
type Settings struct {
	CruiseSpeed  float64 // radians per tick
	Deceleration time.Duration
	DisplayDelay time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		CruiseSpeed:  0.2,
		Deceleration: 5 * time.Second,
		DisplayDelay: 2 * time.Second,
	}
}

// Winner is emitted once per completed spin cycle.
type Winner struct {
	Seq        int
	Label      string
	Index      int
	ItemID     uint64
	SpinID     uuid.UUID
	ResolvedAt time.Time
}

func (w Winner) String() string {
	return fmt.Sprintf("%d. %s", w.Seq, w.Label)
}

// Celebrator plays a fire-and-forget effect for a winner.
type Celebrator interface {
	Celebrate(w Winner)
}

type Option func(*Controller)

func WithSettings(s Settings) Option {
	return func(c *Controller) {
		c.settings = s
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithWinnerHandler subscribes fn to resolved winners. Handlers run in
// registration order before the celebrator and before the history append.
func WithWinnerHandler(fn func(Winner)) Option {
	return func(c *Controller) {
		c.handlers = append(c.handlers, fn)
	}
}

func WithCelebrator(cel Celebrator) Option {
	return func(c *Controller) {
		c.celebrators = append(c.celebrators, cel)
	}
}

type Controller struct {
	wheel    *wheel.Model
	log      *history.Log
	sched    Scheduler
	settings Settings
	now      func() time.Time

	handlers    []func(Winner)
	celebrators []Celebrator

	phase      Phase
	speed      float64
	startSpeed float64
	decelStart time.Time
	lastTick   time.Time
	spinID     uuid.UUID

	pending  *Winner
	removeAt time.Time
}

func New(w *wheel.Model, log *history.Log, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		wheel:    w,
		log:      log,
		sched:    sched,
		settings: DefaultSettings(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Speed is the current rotation speed in radians per tick.
func (c *Controller) Speed() float64 {
	return c.speed
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// CanStart reports whether Start would succeed right now.
func (c *Controller) CanStart() bool {
	return c.phase == Idle && c.wheel.Len() >= 2
}

// Pending returns the winner awaiting removal during the display pause.
func (c *Controller) Pending() (Winner, bool) {
	if c.pending == nil {
		return Winner{}, false
	}
	return *c.pending, true
}

// Start begins a spin at cruise speed and requests the first frame.
func (c *Controller) Start() error {
	if c.phase != Idle {
		return fmt.Errorf("start while %s: %w", c.phase, ErrInvalidPhase)
	}
	if n := c.wheel.Len(); n < 2 {
		return fmt.Errorf("start with %d item(s): %w", n, ErrTooFewItems)
	}

	c.speed = c.settings.CruiseSpeed
	c.phase = Spinning
	c.spinID = uuid.New()
	c.lastTick = time.Time{}
	c.sched.RequestFrame()
	return nil
}

// Stop begins the ease-out from the current speed. The frame already
// requested by the spinning loop keeps driving the wheel. The ease-out is
// measured on the frame timeline, starting at the last frame; the controller
// clock is only used when no frame has run yet.
func (c *Controller) Stop() error {
	if c.phase != Spinning {
		return fmt.Errorf("stop while %s: %w", c.phase, ErrInvalidPhase)
	}

	if c.lastTick.IsZero() {
		c.lastTick = c.now()
	}
	c.startSpeed = c.speed
	c.decelStart = c.lastTick
	c.phase = Decelerating
	return nil
}

// Tick advances the cycle. now is the frame timestamp supplied by the host.
// Frame timestamps that do not move forward are nudged past the previous
// one, so every frame after Stop lowers the speed.
func (c *Controller) Tick(now time.Time) {
	if !c.lastTick.IsZero() && !now.After(c.lastTick) {
		now = c.lastTick.Add(time.Nanosecond)
	}
	c.lastTick = now

	switch c.phase {
	case Spinning:
		c.wheel.Advance(c.speed)
		c.sched.RequestFrame()
	case Decelerating:
		c.decelerate(now)
	case Resolving:
		c.settle(now)
	}
}

// Progress is the elapsed fraction of the ease-out, in [0, 1].
func (c *Controller) Progress(now time.Time) float64 {
	if c.settings.Deceleration <= 0 {
		return 1
	}
	elapsed := now.Sub(c.decelStart)
	return util.Clamp(float64(elapsed)/float64(c.settings.Deceleration), 0, 1)
}

func (c *Controller) decelerate(now time.Time) {
	p := c.Progress(now)
	if p < 1 {
		c.speed = c.startSpeed * (1 - p)
		c.wheel.Advance(c.speed)
		c.sched.RequestFrame()
		return
	}

	c.speed = 0
	c.resolve(now)
}

func (c *Controller) resolve(now time.Time) {
	idx := c.wheel.SectorAt()
	item, err := c.wheel.At(idx)
	if err != nil {
		// The list was emptied mid-spin; there is nothing to pick.
		c.phase = Idle
		return
	}

	w := Winner{
		Seq:        c.log.NextSeq(),
		Label:      item.Label,
		Index:      idx,
		ItemID:     item.ID,
		SpinID:     c.spinID,
		ResolvedAt: now,
	}
	c.phase = Resolving

	for _, fn := range c.handlers {
		fn(w)
	}
	for _, cel := range c.celebrators {
		cel.Celebrate(w)
	}
	c.log.Append(w.Label, now)

	c.pending = &w
	c.removeAt = now.Add(c.settings.DisplayDelay)
	c.sched.RequestAfter(c.settings.DisplayDelay)
}

func (c *Controller) settle(now time.Time) {
	if now.Before(c.removeAt) {
		c.sched.RequestAfter(c.removeAt.Sub(now))
		return
	}

	// Removal is by identity so edits made during the pause cannot shift it
	// onto a different item.
	c.wheel.RemoveID(c.pending.ItemID)
	c.pending = nil
	c.phase = Idle
}
