// ABOUTME: Cancellable tty reader: poll(2) with a short timeout so a blocked read observes ctx
// ABOUTME: Lets the capture goroutine exit promptly when the render loop quits

//go:build unix

package input

import (
	"context"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// pollTimeoutMs bounds how long a cancelled reader can stay blocked.
const pollTimeoutMs = 100

type pollReader struct {
	ctx context.Context
	fd  int
}

// NewPollReader returns a reader over f whose Read returns io.EOF once
// ctx is done, even if no input ever arrives.
func NewPollReader(ctx context.Context, f *os.File) io.Reader {
	return &pollReader{ctx: ctx, fd: int(f.Fd())}
}

func (p *pollReader) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	fds := []unix.PollFd{{Fd: int32(p.fd), Events: unix.POLLIN}}
	for {
		if p.ctx.Err() != nil {
			return 0, io.EOF
		}

		n, err := unix.Poll(fds, pollTimeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(p.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}
