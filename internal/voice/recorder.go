package voice

import (
	"context"
	"errors"
	"sync"
)

// ErrDeviceUnavailable is returned when the audio device cannot be
// acquired (no microphone, permission denied). Recording simply does
// not start; the rest of the session is unaffected.
var ErrDeviceUnavailable = errors.New("audio device unavailable or permission denied")

// ErrRecorderBusy is returned when Start is called while a recording or
// transcription is already in progress. At most one transcription may
// be in flight per recorder.
var ErrRecorderBusy = errors.New("recording or transcription already in progress")

// ErrNotRecording is returned when Stop is called with no active
// recording.
var ErrNotRecording = errors.New("no recording in progress")

// Device grants access to an audio capture source.
type Device interface {
	Acquire(ctx context.Context) (Capture, error)
}

// Capture is an acquired audio source. Release must be idempotent.
type Capture interface {
	// Bytes drains the audio recorded so far.
	Bytes() []byte
	// Release stops the capture and frees the underlying device.
	Release()
}

// TranscriptResult is delivered once the transcription of a stopped
// recording settles.
type TranscriptResult struct {
	Text string
	Err  error
}

// Recorder drives one capture-then-transcribe cycle at a time. Stop
// always releases the audio device synchronously, before the
// transcription result is delivered, regardless of how transcription
// turns out; an abandoned result never corrupts recorder state.
type Recorder struct {
	device      Device
	transcriber Transcriber

	mu        sync.Mutex
	capture   Capture
	recording bool
	inflight  bool
}

// NewRecorder creates a recorder over the given device and engine.
func NewRecorder(device Device, transcriber Transcriber) *Recorder {
	return &Recorder{device: device, transcriber: transcriber}
}

// Start acquires the device and begins capturing. Device failures
// surface as ErrDeviceUnavailable.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording || r.inflight {
		return ErrRecorderBusy
	}

	capture, err := r.device.Acquire(ctx)
	if err != nil {
		return ErrDeviceUnavailable
	}
	r.capture = capture
	r.recording = true
	return nil
}

// Recording reports whether a capture is in progress.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Stop releases the device and hands the clip to the transcriber. The
// device is free by the time Stop returns; the result arrives on the
// returned channel (buffered, so the caller may abandon it).
func (r *Recorder) Stop(ctx context.Context) (<-chan TranscriptResult, error) {
	r.mu.Lock()
	if !r.recording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}

	clip := r.capture.Bytes()
	r.capture.Release()
	r.capture = nil
	r.recording = false
	r.inflight = true
	r.mu.Unlock()

	results := make(chan TranscriptResult, 1)
	go func() {
		text, err := r.transcriber.Transcribe(ctx, clip)

		r.mu.Lock()
		r.inflight = false
		r.mu.Unlock()

		results <- TranscriptResult{Text: text, Err: err}
	}()
	return results, nil
}
