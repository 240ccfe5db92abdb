package execution

import (
	"fmt"
	"io"
)

// BufferSize is the chunk size copied from the child per read
const BufferSize = 32 * 1024

// sink labels write errors with the destination they came from
type sink struct {
	name string
	w    io.Writer
}

func (s sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", s.name, err)
	}
	return n, nil
}

// Tee copies src to console and log in a single read loop. Every chunk goes to
// both writers, in order, before the next read; memory use is one buffer.
func Tee(console, log io.Writer, src io.Reader) (int64, error) {
	dst := io.MultiWriter(sink{name: "console", w: console}, sink{name: "log file", w: log})
	return io.CopyBuffer(dst, src, make([]byte, BufferSize))
}
