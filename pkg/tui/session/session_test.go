// ABOUTME: Tests for Session acquisition order, reverse release, rollback, and best-effort teardown
// ABOUTME: Uses a recording Controller plus an end-to-end check over surface.Surface and VirtualTerminal

package session

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mauromedda/termwalk/pkg/tui/surface"
	"github.com/mauromedda/termwalk/pkg/tui/terminal"
)

var errBoom = errors.New("boom")

// recorder is a Controller that logs every call and fails the ones named in fail.
type recorder struct {
	calls []string
	fail  map[string]error
}

func newRecorder(fail ...string) *recorder {
	r := &recorder{fail: make(map[string]error)}
	for _, name := range fail {
		r.fail[name] = errBoom
	}
	return r
}

func (r *recorder) do(name string) error {
	r.calls = append(r.calls, name)
	return r.fail[name]
}

func (r *recorder) EnterAlternateScreen() error { return r.do("enter-alt") }
func (r *recorder) LeaveAlternateScreen() error { return r.do("leave-alt") }
func (r *recorder) EnableRawMode() error        { return r.do("raw-on") }
func (r *recorder) DisableRawMode() error       { return r.do("raw-off") }
func (r *recorder) HideCursor() error           { return r.do("hide-cursor") }
func (r *recorder) ShowCursor() error           { return r.do("show-cursor") }

var (
	acquireOrder = []string{"enter-alt", "raw-on", "hide-cursor"}
	releaseOrder = []string{"show-cursor", "raw-off", "leave-alt"}
)

func TestEnterClose_Order(t *testing.T) {
	t.Parallel()
	r := newRecorder()

	s, err := Enter(r)
	if err != nil {
		t.Fatalf("Enter() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(r.calls, acquireOrder) {
		t.Fatalf("acquire calls = %v, want %v", r.calls, acquireOrder)
	}

	r.calls = nil
	if err := s.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(r.calls, releaseOrder) {
		t.Errorf("release calls = %v, want %v", r.calls, releaseOrder)
	}
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()
	r := newRecorder()

	s, err := Enter(r)
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Close()
	r.calls = nil
	_ = s.Close()

	if len(r.calls) != 0 {
		t.Errorf("second Close() made calls %v", r.calls)
	}
}

func TestEnter_FailureRollsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fail  string
		calls []string
	}{
		{name: "alternate screen fails", fail: "enter-alt", calls: []string{"enter-alt"}},
		{name: "raw mode fails", fail: "raw-on", calls: []string{"enter-alt", "raw-on", "leave-alt"}},
		{name: "hide cursor fails", fail: "hide-cursor", calls: []string{"enter-alt", "raw-on", "hide-cursor", "raw-off", "leave-alt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newRecorder(tt.fail)

			s, err := Enter(r)
			if !errors.Is(err, errBoom) {
				t.Fatalf("Enter() error = %v, want %v", err, errBoom)
			}
			if s != nil {
				t.Error("Enter() returned a session on failure")
			}
			if !reflect.DeepEqual(r.calls, tt.calls) {
				t.Errorf("calls = %v, want %v", r.calls, tt.calls)
			}
		})
	}
}

func TestClose_BestEffort(t *testing.T) {
	t.Parallel()
	r := newRecorder("show-cursor", "raw-off")

	s, err := Enter(r)
	if err != nil {
		t.Fatal(err)
	}
	r.calls = nil

	err = s.Close()
	if !reflect.DeepEqual(r.calls, releaseOrder) {
		t.Errorf("release calls = %v, want all of %v", r.calls, releaseOrder)
	}
	if !errors.Is(err, errBoom) {
		t.Fatalf("Close() error = %v, want joined %v", err, errBoom)
	}
	msg := err.Error()
	for _, want := range []string{"hidden cursor", "raw mode"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Close() error %q does not mention %q", msg, want)
		}
	}
}

func TestRun_ReleasesOnSuccessErrorAndPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      func() error
		wantErr error
		panics  bool
	}{
		{name: "success", fn: func() error { return nil }},
		{name: "loop error", fn: func() error { return errBoom }, wantErr: errBoom},
		{name: "panic", fn: func() error { panic("loop exploded") }, panics: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newRecorder()

			var err error
			func() {
				defer func() {
					if p := recover(); (p != nil) != tt.panics {
						t.Errorf("recover() = %v, panics = %v", p, tt.panics)
					}
				}()
				err = Run(r, tt.fn)
			}()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
			want := append(append([]string{}, acquireOrder...), releaseOrder...)
			if !reflect.DeepEqual(r.calls, want) {
				t.Errorf("calls = %v, want %v", r.calls, want)
			}
		})
	}
}

func TestRun_EnterFailureSkipsFn(t *testing.T) {
	t.Parallel()
	r := newRecorder("raw-on")
	called := false

	err := Run(r, func() error {
		called = true
		return nil
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("Run() error = %v, want %v", err, errBoom)
	}
	if called {
		t.Error("fn ran although the session could not be entered")
	}
}

func TestRun_TeardownErrorsSwallowed(t *testing.T) {
	t.Parallel()
	r := newRecorder("leave-alt")

	if err := Run(r, func() error { return nil }); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}

func TestSession_RestoresVirtualTerminal(t *testing.T) {
	t.Parallel()

	for _, loopErr := range []error{nil, errBoom} {
		vt := terminal.NewVirtualTerminal(10, 5)
		s := surface.New(vt)

		err := Run(s, func() error {
			if !vt.IsRawMode() {
				t.Error("raw mode off inside the session")
			}
			return loopErr
		})
		if !errors.Is(err, loopErr) {
			t.Errorf("Run() error = %v, want %v", err, loopErr)
		}

		if vt.IsRawMode() {
			t.Error("raw mode still on after the session")
		}
		if vt.EnterCount() != vt.ExitCount() {
			t.Errorf("raw mode enter/exit = %d/%d", vt.EnterCount(), vt.ExitCount())
		}
		out := vt.Output()
		if strings.Count(out, "\x1b[?1049h") != strings.Count(out, "\x1b[?1049l") {
			t.Errorf("alternate screen not left: %q", out)
		}
		if strings.LastIndex(out, "\x1b[?25h") < strings.LastIndex(out, "\x1b[?25l") {
			t.Errorf("cursor left hidden: %q", out)
		}
	}
}
