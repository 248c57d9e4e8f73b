// Package notify schedules transient notifications: a message becomes
// visible on a near-immediate tick (so a presentation transition can
// engage), stays for a fixed display window, then fades and is cleared.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katlegop/baacafe-kiosk/internal/models"
)

// Timings controls the notification lifecycle.
type Timings struct {
	// ShowTick is the delay before a fresh notification turns visible.
	ShowTick time.Duration
	// Display is how long the notification stays visible.
	Display time.Duration
	// Fade is the delay between hiding and clearing.
	Fade time.Duration
}

// DefaultTimings matches the site's behavior: visible after 10ms,
// displayed for 3s, removed 300ms after hiding.
func DefaultTimings() Timings {
	return Timings{
		ShowTick: 10 * time.Millisecond,
		Display:  3 * time.Second,
		Fade:     300 * time.Millisecond,
	}
}

// Scheduler tracks at most one pending notification. A new Show replaces
// the pending one; every timer is keyed to the token issued at Show time,
// so a stale timer firing late never touches a newer notification.
type Scheduler struct {
	mu       sync.Mutex
	current  *models.Notification
	visible  bool
	token    string
	timings  Timings
	onChange func()
}

// NewScheduler builds a scheduler that invokes onChange after every
// visibility change, so the owner can re-render.
func NewScheduler(t Timings, onChange func()) *Scheduler {
	if onChange == nil {
		onChange = func() {}
	}
	return &Scheduler{timings: t, onChange: onChange}
}

// Show replaces any pending notification and starts its lifecycle.
func (s *Scheduler) Show(message string, kind models.NotificationKind) {
	s.mu.Lock()
	token := uuid.NewString()
	s.token = token
	s.current = &models.Notification{Message: message, Kind: kind}
	s.visible = false
	s.mu.Unlock()
	s.onChange()

	time.AfterFunc(s.timings.ShowTick, func() { s.reveal(token) })
	time.AfterFunc(s.timings.ShowTick+s.timings.Display, func() { s.hide(token) })
	time.AfterFunc(s.timings.ShowTick+s.timings.Display+s.timings.Fade, func() { s.clear(token) })
}

// Current returns the pending notification and whether it is visible.
// The notification is non-nil but invisible between Show and the show
// tick, and again during the fade-out.
func (s *Scheduler) Current() (*models.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.visible
}

func (s *Scheduler) reveal(token string) {
	s.mu.Lock()
	if s.token != token || s.current == nil {
		s.mu.Unlock()
		return
	}
	s.visible = true
	s.mu.Unlock()
	s.onChange()
}

func (s *Scheduler) hide(token string) {
	s.mu.Lock()
	if s.token != token || s.current == nil {
		s.mu.Unlock()
		return
	}
	s.visible = false
	s.mu.Unlock()
	s.onChange()
}

func (s *Scheduler) clear(token string) {
	s.mu.Lock()
	if s.token != token || s.current == nil {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.visible = false
	s.mu.Unlock()
	s.onChange()
}
