// Package player owns the playback session for one open video: a native
// engine handle, the pause/seek state machine, subtitle selection and the
// inactivity heuristic that hides the on-screen controls.
package player

import "time"

// SubtitleTrack describes one subtitle stream embedded in the media.
type SubtitleTrack struct {
	ID   int
	Name string
}

// Engine abstracts the native playback backend. Implementations may invoke
// the position listener from their own internal thread; the session marshals
// those callbacks onto the UI loop through a Dispatcher.
type Engine interface {
	Load(path string) error
	Play() error
	SetPause(paused bool) error
	Stop() error

	Position() time.Duration
	SetPosition(pos time.Duration) error
	Duration() time.Duration

	SubtitleTracks() []SubtitleTrack
	SetSubtitleTrack(id int) error
	LoadSubtitleFile(path string) error

	SetPositionListener(fn func(pos time.Duration))

	// Release frees the native handle. The session calls it exactly once,
	// during Close, after detaching the position listener.
	Release()
}
