package voice

import "context"

// MockDevice simulates an audio capture source. When Available is
// false, Acquire fails the way a denied microphone permission would.
type MockDevice struct {
	Available bool
	// Clip is the audio the capture hands back on Bytes.
	Clip []byte
}

func (d *MockDevice) Acquire(ctx context.Context) (Capture, error) {
	if !d.Available {
		return nil, ErrDeviceUnavailable
	}
	return &mockCapture{clip: d.Clip}, nil
}

type mockCapture struct {
	clip     []byte
	released bool
}

func (c *mockCapture) Bytes() []byte {
	return c.clip
}

func (c *mockCapture) Release() {
	c.released = true
}
