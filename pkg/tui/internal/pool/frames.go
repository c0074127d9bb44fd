// ABOUTME: sync.Pool of byte buffers used to assemble flushed frames
// ABOUTME: Buffers that grew past maxPooled are dropped so one huge frame does not stay pinned

package pool

import (
	"bytes"
	"sync"
)

const maxPooled = 64 << 10

var frameBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetFrame returns an empty buffer from the pool.
func GetFrame() *bytes.Buffer {
	buf := frameBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutFrame returns buf to the pool. The caller must not use buf afterwards.
func PutFrame(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooled {
		return
	}
	buf.Reset()
	frameBufferPool.Put(buf)
}
