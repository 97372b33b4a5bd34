// Package audio implements the voice memo capture lifecycle: explicit
// start/stop, in-memory buffering until stop, then conversion to a
// persistable base64 form.
package audio

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/lifeos/internal/common"
)

// Source acquires the audio byte stream. Acquisition is best-effort: a
// denied or unavailable device surfaces as ErrDeviceAccess.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads captured audio from a file or named pipe. This is the
// CLI's stand-in for a microphone device.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrDeviceAccess, err.Error())
	}
	return f, nil
}

// Recorder buffers one capture at a time. After a device failure the
// recorder is disabled for the rest of the session.
type Recorder struct {
	source Source

	mu        sync.Mutex
	buf       bytes.Buffer
	stream    io.ReadCloser
	copying   sync.WaitGroup
	recording bool
	disabled  bool
}

func NewRecorder(source Source) *Recorder {
	return &Recorder{source: source}
}

// Recording reports whether a capture is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Disabled reports whether a previous device failure disabled capture for
// this session.
func (r *Recorder) Disabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled
}

// Start acquires the source and begins buffering in memory. A second Start
// without a Stop is an error. A source failure disables the recorder for
// the session.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disabled {
		return fmt.Errorf("%w: capture disabled for this session", common.ErrDeviceAccess)
	}
	if r.recording {
		return fmt.Errorf("capture already in progress")
	}

	stream, err := r.source.Open(ctx)
	if err != nil {
		r.disabled = true
		return err
	}

	r.buf.Reset()
	r.stream = stream
	r.recording = true

	r.copying.Add(1)
	go func() {
		defer r.copying.Done()
		buf := make([]byte, 32*1024)
		for {
			n, err := stream.Read(buf)
			if n > 0 {
				r.mu.Lock()
				r.buf.Write(buf[:n])
				r.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// Stop ends the capture, releases the source and returns the buffered data
// base64-encoded, ready to be persisted on a journal entry. The in-memory
// buffer is released.
func (r *Recorder) Stop() (string, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return "", fmt.Errorf("no capture in progress")
	}
	stream := r.stream
	r.mu.Unlock()

	_ = stream.Close()
	r.copying.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()

	encoded := base64.StdEncoding.EncodeToString(r.buf.Bytes())
	r.buf.Reset()
	r.stream = nil
	r.recording = false

	return encoded, nil
}
