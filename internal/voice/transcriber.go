// Package voice models the audio capture and transcription
// collaborators. The real speech-to-text engine sits behind the
// Transcriber interface; everything shipped here is a simulation.
package voice

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Transcriber converts a recorded audio clip to text. Implementations
// must honor context cancellation: an abandoned call returns promptly
// with ctx.Err().
type Transcriber interface {
	Transcribe(ctx context.Context, clip []byte) (string, error)
}

// Canned transcripts served by the mock engine.
var mockTranscripts = []string{
	"I would like to report a stolen vehicle. My car was taken from the mall parking lot yesterday evening.",
	"I witnessed a break-in at my neighbor's apartment yesterday around 8 PM.",
	"I need to file a complaint about repeated harassment at my workplace.",
	"My phone was snatched by someone on a motorcycle while I was walking in the park.",
}

// MockTranscriber cycles deterministically through a fixed transcript
// list. Delay simulates engine latency and is configuration, not
// behavior: tests leave it at zero.
type MockTranscriber struct {
	Delay time.Duration

	mu   sync.Mutex
	next int
}

// NewMockTranscriber creates a mock engine with the given simulated
// latency.
func NewMockTranscriber(delay time.Duration) *MockTranscriber {
	return &MockTranscriber{Delay: delay}
}

func (m *MockTranscriber) Transcribe(ctx context.Context, clip []byte) (string, error) {
	if m.Delay > 0 {
		timer := time.NewTimer(m.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	text := mockTranscripts[m.next%len(mockTranscripts)]
	m.next++
	return text, nil
}

// SuggestTitle derives a short FIR title from a transcript: the first
// sentence when it is short enough, otherwise a truncated prefix.
func SuggestTitle(transcript string) string {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return ""
	}
	first := strings.SplitN(transcript, ".", 2)[0]
	if first != "" && utf8.RuneCountInString(first) < 50 {
		return first
	}
	// Truncate on a rune boundary so the title stays valid UTF-8.
	runes := []rune(transcript)
	if len(runes) <= 40 {
		return transcript
	}
	return string(runes[:40]) + "..."
}
