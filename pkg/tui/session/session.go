// ABOUTME: Session owns the exclusive raw terminal: alternate screen, raw input, hidden cursor
// ABOUTME: Enter acquires in order, Close releases in reverse; Run guarantees release on every exit path

package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/termwalk/internal/log"
)

// Controller is the part of the terminal surface a session toggles.
type Controller interface {
	EnterAlternateScreen() error
	LeaveAlternateScreen() error
	EnableRawMode() error
	DisableRawMode() error
	HideCursor() error
	ShowCursor() error
}

// step is one reversible terminal property.
type step struct {
	name    string
	acquire func(Controller) error
	release func(Controller) error
}

// steps are acquired top to bottom and released bottom to top.
var steps = []step{
	{name: "alternate screen", acquire: Controller.EnterAlternateScreen, release: Controller.LeaveAlternateScreen},
	{name: "raw mode", acquire: Controller.EnableRawMode, release: Controller.DisableRawMode},
	{name: "hidden cursor", acquire: Controller.HideCursor, release: Controller.ShowCursor},
}

// Session is a handle on an entered terminal session. It is not reentrant.
type Session struct {
	ctrl    Controller
	entered int // number of steps acquired
	once    sync.Once
	err     error
}

// Enter acquires the session. If any step fails, the steps already
// acquired are released in reverse order and the failure is returned.
func Enter(c Controller) (*Session, error) {
	s := &Session{ctrl: c}
	for _, st := range steps {
		if err := st.acquire(c); err != nil {
			if rerr := s.release(); rerr != nil {
				log.Debug("session: rollback after failed %s: %v", st.name, rerr)
			}
			return nil, fmt.Errorf("entering %s: %w", st.name, err)
		}
		s.entered++
	}
	return s, nil
}

// Close releases the session in reverse acquisition order. Every step is
// attempted even if an earlier one fails; the failures are joined and
// returned for reporting only. Calls after the first return the same result.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.err = s.release()
	})
	return s.err
}

func (s *Session) release() error {
	var errs []error
	for i := s.entered - 1; i >= 0; i-- {
		st := steps[i]
		if err := st.release(s.ctrl); err != nil {
			errs = append(errs, fmt.Errorf("releasing %s: %w", st.name, err))
		}
	}
	s.entered = 0
	return errors.Join(errs...)
}

// Run enters a session, calls fn, and closes the session before
// returning, including when fn panics. fn's error is returned as is;
// teardown failures are logged and otherwise ignored.
func Run(c Controller, fn func() error) error {
	s, err := Enter(c)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Debug("session: teardown: %v", cerr)
		}
	}()
	return fn()
}
