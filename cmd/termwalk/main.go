// ABOUTME: CLI entry point for termwalk with terminal crash recovery
// ABOUTME: Loads settings, owns the raw terminal session, and runs the capture goroutine beside the render loop

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	// termfix must be imported before anything renders with lipgloss.
	_ "github.com/mauromedda/termwalk/internal/termfix"

	"github.com/mauromedda/termwalk/internal/config"
	"github.com/mauromedda/termwalk/internal/game"
	"github.com/mauromedda/termwalk/internal/log"
	"github.com/mauromedda/termwalk/pkg/tui/input"
	"github.com/mauromedda/termwalk/pkg/tui/session"
	"github.com/mauromedda/termwalk/pkg/tui/surface"
	"github.com/mauromedda/termwalk/pkg/tui/terminal"
	"github.com/mauromedda/termwalk/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// captureGrace bounds the wait for the capture goroutine after the loop
// ends. The poll reader wakes within 100ms; a plain blocking read never does.
const captureGrace = 500 * time.Millisecond

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("termwalk %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// run performs setup, plays until quit or signal, and returns the first
// setup or frame error. The terminal is restored before run returns.
func run(args cliArgs) error {
	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	log.SetLevel(cfg.Level())
	if args.debug {
		log.SetLevel(log.LevelDebug)
	}

	overrides, err := cfg.Palette()
	if err != nil {
		return err
	}
	if _, err := theme.Activate(cfg.Theme, overrides); err != nil {
		return err
	}

	restoreLogs, err := redirectLogs(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restoreLogs()

	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return play(ctx, term, os.Stdin, cfg)
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	cfg, err := config.Load(args.config)
	if err != nil {
		return nil, err
	}
	cfg.Override(config.Settings{
		Theme:   args.theme,
		Glyph:   args.glyph,
		LogFile: args.logFile,
	})
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// play owns the terminal session: the render loop runs on the calling
// goroutine while capture feeds the queue from stdin.
func play(ctx context.Context, term terminal.Terminal, stdin *os.File, cfg *config.Settings) error {
	surf := surface.New(term)
	term.OnResize(func(w, h int) {
		log.Debug("terminal resized to %dx%d", w, h)
	})

	queue := input.NewQueue()
	loop := game.New(surf, queue, game.WithGlyph(cfg.Glyph))

	return session.Run(surf, func() error {
		captureCtx, cancelCapture := context.WithCancel(ctx)
		defer cancelCapture()

		var g errgroup.Group
		g.Go(func() error {
			defer terminal.RecoverGoroutine(term)
			capture := input.NewCapture(input.NewPollReader(captureCtx, stdin), queue)
			if err := capture.Run(captureCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn("input capture stopped: %v", err)
			}
			return nil
		})

		err := loop.Run(ctx)
		log.Debug("loop finished: %s, %d frames", loop.Status(), loop.Frames())

		cancelCapture()
		queue.Close()
		waitCapture(&g)
		return err
	})
}

// waitCapture gives the capture goroutine captureGrace to notice
// cancellation. A goroutine still blocked in read is left to process exit.
func waitCapture(g *errgroup.Group) {
	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(captureGrace):
		log.Debug("input capture still blocked in read; leaving it to process exit")
	}
}

// redirectLogs keeps log output off the screen while the session runs.
// With a path, logs are appended to that file. Without one they are
// buffered and replayed on the previous output by the returned func,
// which must run after the terminal is restored.
func redirectLogs(path string) (func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		prev := log.SetOutput(f)
		return func() {
			log.SetOutput(prev)
			_ = f.Close()
		}, nil
	}

	var buf bytes.Buffer
	prev := log.SetOutput(&buf)
	return func() {
		log.SetOutput(prev)
		replayLogs(prev, &buf)
	}, nil
}

func replayLogs(w io.Writer, buf *bytes.Buffer) {
	if buf.Len() == 0 {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
