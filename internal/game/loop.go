// ABOUTME: Render/control loop: drain input, clamp to the viewport, repaint, flush, once per frame
// ABOUTME: Never blocks or sleeps; Run yields the processor between frames

package game

import (
	"context"
	"runtime"

	"github.com/mauromedda/termwalk/internal/log"
	"github.com/mauromedda/termwalk/internal/world"
	"github.com/mauromedda/termwalk/pkg/tui/theme"
	"github.com/mauromedda/termwalk/pkg/tui/width"
)

const (
	// Instructions is the overlay line painted at the top-left cell.
	Instructions = "move with wasd, press q to exit"
	// DefaultGlyph is the two-cell entity drawn at the world position.
	DefaultGlyph = "[]"
)

// Surface is the drawing capability the loop needs. Drawing calls queue
// output; Flush delivers it.
type Surface interface {
	Size() (width, height int, err error)
	Clear() error
	MoveTo(col, row int) error
	SetForeground(c theme.Color) error
	Print(text string) error
	Flush() error
}

// Source yields captured characters without blocking.
type Source interface {
	TryRecv() (rune, bool)
}

// Status is the loop lifecycle. Terminating is final.
type Status int

const (
	Running Status = iota
	Terminating
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Option configures a Loop.
type Option func(*Loop)

// WithGlyph replaces the entity glyph. It should be two cells wide.
func WithGlyph(g string) Option {
	return func(l *Loop) {
		if g != "" {
			l.glyph = g
		}
	}
}

// WithStart sets the initial world position.
func WithStart(s world.State) Option {
	return func(l *Loop) {
		l.pos = s
	}
}

// Loop owns the world state and the surface for the life of the program.
// It is used from one goroutine only.
type Loop struct {
	surface Surface
	source  Source
	glyph   string

	pos    world.State
	status Status
	frames uint64
}

// New returns a running Loop at (0, 0) drawing on s and reading from src.
func New(s Surface, src Source, opts ...Option) *Loop {
	l := &Loop{
		surface: s,
		source:  src,
		glyph:   DefaultGlyph,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Position returns the current world position.
func (l *Loop) Position() world.State { return l.pos }

// Status returns the lifecycle state.
func (l *Loop) Status() Status { return l.status }

// Frames returns how many frames were flushed.
func (l *Loop) Frames() uint64 { return l.frames }

// Frame runs one iteration. It returns false once the loop has quit.
// A surface failure stops the loop and is returned as *Error.
func (l *Loop) Frame() (bool, error) {
	if l.status == Terminating {
		return false, nil
	}

	if quit := l.drain(); quit {
		l.status = Terminating
		return false, nil
	}

	cols, rows, err := l.surface.Size()
	if err != nil {
		return false, l.fail(PhaseSize, err)
	}
	l.pos.Clamp(cols, rows)

	if err := l.surface.Clear(); err != nil {
		return false, l.fail(PhaseClear, err)
	}

	pal := theme.Current().Palette
	if err := l.drawOverlay(pal.Text, cols); err != nil {
		return false, l.fail(PhaseOverlay, err)
	}
	if err := l.drawEntity(pal.Glyph); err != nil {
		return false, l.fail(PhaseEntity, err)
	}

	if err := l.surface.Flush(); err != nil {
		return false, l.fail(PhaseFlush, err)
	}
	l.frames++
	return true, nil
}

// drain applies every pending character in arrival order. A quit stops
// the drain; characters behind it stay unread.
func (l *Loop) drain() bool {
	for {
		r, ok := l.source.TryRecv()
		if !ok {
			return false
		}
		cmd, bound := lookup(r)
		if !bound {
			continue
		}
		if cmd.quit {
			return true
		}
		l.pos.Move(cmd.dx, cmd.dy)
	}
}

func (l *Loop) drawOverlay(c theme.Color, cols int) error {
	if err := l.surface.SetForeground(c); err != nil {
		return err
	}
	if err := l.surface.MoveTo(0, 0); err != nil {
		return err
	}
	return l.surface.Print(width.Truncate(Instructions, cols))
}

func (l *Loop) drawEntity(c theme.Color) error {
	if err := l.surface.MoveTo(l.pos.ScreenCol(), l.pos.Y); err != nil {
		return err
	}
	if err := l.surface.SetForeground(c); err != nil {
		return err
	}
	return l.surface.Print(l.glyph)
}

func (l *Loop) fail(phase string, err error) error {
	l.status = Terminating
	return &Error{Phase: phase, Frame: l.frames, Err: err}
}

// Run calls Frame until the loop quits, a frame fails, or ctx is done.
// Cancellation is not an error: Run returns nil so cleanup is the same
// as for a quit.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		log.Debug("game: %s after %d frames at (%d, %d)", l.status, l.frames, l.pos.X, l.pos.Y)
	}()

	for {
		if ctx.Err() != nil {
			l.status = Terminating
			return nil
		}
		running, err := l.Frame()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		runtime.Gosched()
	}
}
