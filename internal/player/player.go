// Package player holds server-side audio playback sessions. Each session owns
// one playlist, one current track index and one state machine; every command
// is serialized under the session lock so concurrent clients cannot interleave
// half-applied transitions.
package player

import (
	"errors"
	"sync"
	"time"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoaded  State = "loaded"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateEnded   State = "ended"
)

var ErrEmptyPlaylist = errors.New("playlist is empty")

// ErrStaleToken signals a command carrying a load token older than the
// current one. The command is dropped, not failed.
var ErrStaleToken = errors.New("stale load token")

// Track is one playable playlist entry.
type Track struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	FileURL     string `json:"file_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
	Duration    *int   `json:"duration,omitempty"`
}

func (t Track) playable() bool {
	return t.FileURL != "" || t.ExternalURL != ""
}

// Session is a playback state machine over a fixed playlist.
type Session struct {
	mu sync.Mutex

	ID       string
	Playlist []Track

	index     int
	state     State
	position  float64
	volume    float64
	loadToken uint64
	lastError string

	CreatedAt  time.Time
	lastActive time.Time
}

// Snapshot is the externally visible session state.
type Snapshot struct {
	ID        string  `json:"id"`
	State     State   `json:"state"`
	Index     int     `json:"index"`
	Track     *Track  `json:"track,omitempty"`
	Position  float64 `json:"position"`
	Volume    float64 `json:"volume"`
	LoadToken uint64  `json:"load_token"`
	Tracks    int     `json:"tracks"`
	LastError string  `json:"last_error,omitempty"`
}

func NewSession(id string, playlist []Track) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		Playlist:   playlist,
		state:      StateIdle,
		volume:     1.0,
		CreatedAt:  now,
		lastActive: now,
	}
}

// bind makes track i the single bound source. Position resets and the load
// token advances, invalidating any in-flight command for the previous track.
func (s *Session) bind(i int) {
	s.index = i
	s.position = 0
	s.loadToken++
	s.lastError = ""
	s.state = StateLoaded
}

// checkToken drops commands issued against an outdated bind. Zero means the
// caller did not pin a token and always passes.
func (s *Session) checkToken(token uint64) error {
	if token != 0 && token != s.loadToken {
		return ErrStaleToken
	}
	return nil
}

func (s *Session) current() *Track {
	if len(s.Playlist) == 0 {
		return nil
	}
	t := s.Playlist[s.index]
	return &t
}

// Play starts (or resumes) the current track. From Idle the first track is
// bound first. A track with no playable source fails to start and the
// session lands in Paused with the error recorded.
func (s *Session) Play(token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if len(s.Playlist) == 0 {
		return ErrEmptyPlaylist
	}
	if err := s.checkToken(token); err != nil {
		return err
	}

	if s.state == StateIdle || s.state == StateEnded {
		s.bind(s.index)
	}

	if track := s.current(); !track.playable() {
		s.state = StatePaused
		s.lastError = "track has no playable source"
		return nil
	}

	s.state = StatePlaying
	s.lastError = ""
	return nil
}

func (s *Session) Pause(token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.checkToken(token); err != nil {
		return err
	}
	if s.state == StatePlaying {
		s.state = StatePaused
	}
	return nil
}

// Next advances to (index+1) mod n. Playback continues if the session was
// playing, otherwise the new track sits in Loaded.
func (s *Session) Next(token uint64) error {
	return s.step(token, 1)
}

// Previous moves to (index-1+n) mod n, so track 0 wraps to the last one.
func (s *Session) Previous(token uint64) error {
	return s.step(token, -1)
}

func (s *Session) step(token uint64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	n := len(s.Playlist)
	if n == 0 {
		return ErrEmptyPlaylist
	}
	if err := s.checkToken(token); err != nil {
		return err
	}

	wasPlaying := s.state == StatePlaying
	s.bind(((s.index+delta)%n + n) % n)
	if wasPlaying {
		s.resumeBound()
	}
	return nil
}

// Ended handles natural end of track: advance with wraparound and keep
// playing.
func (s *Session) Ended(token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	n := len(s.Playlist)
	if n == 0 {
		return ErrEmptyPlaylist
	}
	if err := s.checkToken(token); err != nil {
		return err
	}

	s.state = StateEnded
	s.bind((s.index + 1) % n)
	s.resumeBound()
	return nil
}

// resumeBound enters Playing on the freshly bound track, or Paused when the
// track cannot start. Callers hold the lock.
func (s *Session) resumeBound() {
	if track := s.current(); track != nil && !track.playable() {
		s.state = StatePaused
		s.lastError = "track has no playable source"
		return
	}
	s.state = StatePlaying
}

// Seek positions playback at fraction p of the track duration. p is clamped
// to [0,1]; with an unknown duration the position stays at 0.
func (s *Session) Seek(p float64, token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if len(s.Playlist) == 0 {
		return ErrEmptyPlaylist
	}
	if err := s.checkToken(token); err != nil {
		return err
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	if s.state == StateIdle {
		s.bind(s.index)
	}

	track := s.current()
	if track.Duration != nil {
		s.position = p * float64(*track.Duration)
	} else {
		s.position = 0
	}
	return nil
}

// SetVolume clamps v into [0,1]. Volume never changes the playback state.
func (s *Session) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.volume = v
}

func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:        s.ID,
		State:     s.state,
		Index:     s.index,
		Track:     s.current(),
		Position:  s.position,
		Volume:    s.volume,
		LoadToken: s.loadToken,
		Tracks:    len(s.Playlist),
		LastError: s.lastError,
	}
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

func (s *Session) idleSince() time.Time {
	return s.lastActive
}
