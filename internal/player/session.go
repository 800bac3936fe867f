package player

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateLoading State = iota
	StatePlaying
	StatePaused
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

const (
	defaultInactivityTimeout = 3 * time.Second
	defaultMotionThreshold   = 40.0
	defaultSkipStep          = 5 * time.Second
)

// Config tunes the session's interaction heuristics.
type Config struct {
	// InactivityTimeout is how long without pointer activity before the
	// controls and cursor are hidden.
	InactivityTimeout time.Duration
	// MotionThreshold is the Euclidean pointer displacement, in pixels,
	// below which motion events are treated as noise.
	MotionThreshold float64
	// SkipStep is the distance of one forward/backward skip.
	SkipStep time.Duration
}

// Session drives one playback of one video. It exclusively owns the engine
// handle and releases it exactly once when closed.
type Session struct {
	engine     Engine
	dispatcher Dispatcher
	cfg        Config
	log        *slog.Logger

	onPosition func(elapsed time.Duration)
	onControls func(visible bool)

	// seeking guards against overlapping seeks: a programmatic scrubber
	// update arriving while a user seek is in flight must not trigger a
	// second engine call.
	seeking atomic.Bool

	mu             sync.Mutex
	state          State
	controlsHidden bool
	prevX, prevY   float64
	hasPointer     bool
	timer          *time.Timer
}

// Option configures a Session.
type Option func(*Session)

// WithPositionObserver registers the scrubber update callback. It is always
// invoked on the dispatcher.
func WithPositionObserver(fn func(elapsed time.Duration)) Option {
	return func(s *Session) {
		s.onPosition = fn
	}
}

// WithControlsObserver registers the controls visibility callback. It is
// always invoked on the dispatcher.
func WithControlsObserver(fn func(visible bool)) Option {
	return func(s *Session) {
		s.onControls = fn
	}
}

// NewSession creates a session over the given engine. The session starts in
// StateLoading; call Open to begin playback.
func NewSession(engine Engine, dispatcher Dispatcher, cfg Config, log *slog.Logger, opts ...Option) *Session {
	if cfg.InactivityTimeout <= 0 {
		cfg.InactivityTimeout = defaultInactivityTimeout
	}
	if cfg.MotionThreshold <= 0 {
		cfg.MotionThreshold = defaultMotionThreshold
	}
	if cfg.SkipStep <= 0 {
		cfg.SkipStep = defaultSkipStep
	}
	s := &Session{
		engine:     engine,
		dispatcher: dispatcher,
		cfg:        cfg,
		log:        log.With("component", "player"),
		state:      StateLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the media, wires the position feedback loop, resolves subtitles
// and starts playback. subPath is the expected sidecar subtitle location; it
// may not exist.
func (s *Session) Open(videoPath, subPath string) error {
	if _, err := os.Stat(videoPath); err != nil {
		return fmt.Errorf("video file: %w", err)
	}
	if err := s.engine.Load(videoPath); err != nil {
		return fmt.Errorf("load media: %w", err)
	}

	s.engine.SetPositionListener(func(pos time.Duration) {
		s.dispatcher.Dispatch(func() { s.notifyPosition(pos) })
	})
	s.setupSubtitles(subPath)

	if err := s.engine.Play(); err != nil {
		return fmt.Errorf("start playback: %w", err)
	}

	s.mu.Lock()
	s.state = StatePlaying
	s.timer = time.AfterFunc(s.cfg.InactivityTimeout, s.hideControls)
	s.mu.Unlock()

	s.log.Info("playback started", "path", videoPath)
	return nil
}

// setupSubtitles applies the resolution order: sidecar file, then the first
// embedded track whose name mentions english, then none.
func (s *Session) setupSubtitles(subPath string) {
	if subPath != "" {
		if _, err := os.Stat(subPath); err == nil {
			if err := s.engine.LoadSubtitleFile(subPath); err == nil {
				s.log.Info("sidecar subtitles loaded", "path", subPath)
				return
			}
			s.log.Warn("sidecar subtitle load failed", "path", subPath)
		}
	}
	for _, track := range s.engine.SubtitleTracks() {
		if strings.Contains(strings.ToLower(track.Name), "english") {
			if err := s.engine.SetSubtitleTrack(track.ID); err != nil {
				s.log.Warn("embedded subtitle selection failed", "track", track.ID)
			}
			return
		}
	}
	s.log.Info("no subtitles available")
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TogglePause flips between playing and paused. It is a no-op in any other
// state.
func (s *Session) TogglePause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StatePlaying:
		if err := s.engine.SetPause(true); err != nil {
			return fmt.Errorf("pause: %w", err)
		}
		s.state = StatePaused
	case StatePaused:
		if err := s.engine.SetPause(false); err != nil {
			return fmt.Errorf("resume: %w", err)
		}
		s.state = StatePlaying
	}
	return nil
}

// Seek moves playback to pos. Re-entrant calls while a seek is in flight are
// dropped so scrubber feedback cannot cascade into overlapping engine calls.
func (s *Session) Seek(pos time.Duration) {
	if s.State() == StateClosed {
		return
	}
	if !s.seeking.CompareAndSwap(false, true) {
		return
	}
	defer s.seeking.Store(false)

	if pos < 0 {
		pos = 0
	}
	if err := s.engine.SetPosition(pos); err != nil {
		s.log.Warn("seek failed", "pos", pos, "error", err)
	}
}

// SkipForward jumps ahead by one skip step.
func (s *Session) SkipForward() {
	s.skip(s.cfg.SkipStep)
}

// SkipBackward jumps back by one skip step.
func (s *Session) SkipBackward() {
	s.skip(-s.cfg.SkipStep)
}

func (s *Session) skip(delta time.Duration) {
	if s.State() == StateClosed {
		return
	}
	s.resetActivity()

	target := s.engine.Position() + delta
	if target < 0 {
		target = 0
	}
	if total := s.engine.Duration(); total > 0 && target > total {
		target = total
	}
	s.Seek(target)
	s.dispatcher.Dispatch(func() { s.notifyPosition(target) })
}

// PointerMoved feeds a pointer position sample into the inactivity
// heuristic. Motion events are noisy, so only a Euclidean displacement at or
// above the configured threshold counts as activity.
func (s *Session) PointerMoved(x, y float64) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	if !s.hasPointer {
		s.prevX, s.prevY = x, y
		s.hasPointer = true
		s.mu.Unlock()
		return
	}
	dx, dy := x-s.prevX, y-s.prevY
	moved := math.Sqrt(dx*dx+dy*dy) >= s.cfg.MotionThreshold
	if moved {
		s.prevX, s.prevY = x, y
	}
	s.mu.Unlock()

	if moved {
		s.resetActivity()
	}
}

// ControlsVisible reports whether the controls are currently shown.
func (s *Session) ControlsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.controlsHidden
}

// resetActivity restarts the inactivity countdown, restoring the controls if
// they were hidden.
func (s *Session) resetActivity() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	wasHidden := s.controlsHidden
	s.controlsHidden = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer.Reset(s.cfg.InactivityTimeout)
	}
	s.mu.Unlock()

	if wasHidden {
		s.notifyControls(true)
	}
}

func (s *Session) hideControls() {
	s.mu.Lock()
	if s.state == StateClosed || s.controlsHidden {
		s.mu.Unlock()
		return
	}
	s.controlsHidden = true
	s.mu.Unlock()

	s.notifyControls(false)
}

func (s *Session) notifyControls(visible bool) {
	if s.onControls == nil {
		return
	}
	s.dispatcher.Dispatch(func() { s.onControls(visible) })
}

func (s *Session) notifyPosition(pos time.Duration) {
	s.mu.Lock()
	closed := s.state == StateClosed
	s.mu.Unlock()
	if closed || s.onPosition == nil {
		return
	}
	s.onPosition(pos)
}

// Close stops playback and releases the engine handle. It is terminal and
// idempotent; the position listener is detached first so no callback can
// arrive after the handle is gone.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.engine.SetPositionListener(nil)
	if err := s.engine.Stop(); err != nil {
		s.log.Warn("stop playback", "error", err)
	}
	s.engine.Release()
	s.log.Info("session closed")
}

// FormatClock renders a position as "H:MM:SS" for the scrubber labels.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
