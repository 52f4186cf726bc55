// ABOUTME: Continuous-recognition state machine over a speech engine
// ABOUTME: Accumulates finalized transcript text and self-restarts on benign end events
package speech

import (
	"log"
	"sync"
)

type state int

const (
	stateIdle state = iota
	stateRecording
)

// Recognizer wraps an Engine with the {idle, recording} automaton. Engine
// callbacks arrive asynchronously and may fire after the user has logically
// stopped; they are no-ops outside the recording state so the transcript
// cannot be corrupted. A nil engine means the host has no speech facility
// and every operation degrades to a no-op with Supported() == false.
type Recognizer struct {
	mu         sync.Mutex
	engine     Engine
	st         state
	transcript string
}

func NewRecognizer(engine Engine) *Recognizer {
	r := &Recognizer{engine: engine}
	if engine != nil {
		engine.SetHandlers(Handlers{
			OnResult: r.handleResult,
			OnError:  r.handleError,
			OnEnd:    r.handleEnd,
		})
	}
	return r
}

// Supported reports whether the host exposes a speech facility.
func (r *Recognizer) Supported() bool {
	return r.engine != nil
}

// Recording reports whether capture is logically active.
func (r *Recognizer) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.st == stateRecording
}

// Transcript returns the accumulated finalized text.
func (r *Recognizer) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transcript
}

// SetTranscript replaces the transcript with a hand-edited value.
func (r *Recognizer) SetTranscript(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcript = text
}

// Toggle flips capture. From idle it clears any prior transcript and starts
// the engine; from recording it stops and leaves the transcript as-is for
// manual editing. It reports whether recording is active afterwards.
func (r *Recognizer) Toggle() bool {
	r.mu.Lock()

	if r.engine == nil {
		r.mu.Unlock()
		return false
	}

	if r.st == stateRecording {
		r.st = stateIdle
		r.mu.Unlock()
		r.engine.Stop()
		return false
	}

	r.transcript = ""
	r.st = stateRecording
	r.mu.Unlock()

	if err := r.engine.Start(); err != nil {
		log.Printf("warning: speech engine failed to start: %v", err)
		r.mu.Lock()
		r.st = stateIdle
		r.mu.Unlock()
		return false
	}
	return true
}

func (r *Recognizer) handleResult(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.st != stateRecording {
		return // late event after stop, ignore
	}
	if r.transcript != "" {
		r.transcript += " "
	}
	r.transcript += text
}

// handleError forces the automaton back to idle. Engine errors are
// non-fatal: logged, never thrown.
func (r *Recognizer) handleError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.st == stateRecording {
		log.Printf("warning: speech engine error: %v", err)
	}
	r.st = stateIdle
}

// handleEnd re-issues Start when the user still intends to record
// (continuous-mode emulation over end-of-utterance termination).
func (r *Recognizer) handleEnd() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.st != stateRecording {
		return
	}

	if err := r.engine.Start(); err != nil {
		log.Printf("warning: speech engine restart failed: %v", err)
		r.st = stateIdle
	}
}
