// ABOUTME: Speech engine abstraction and capability probe
// ABOUTME: Small start/stop interface with result, error, and end callback slots
package speech

// Handlers are the three callback slots a recognition engine drives.
// OnResult receives only finalized text; interim fragments never reach the
// adapter. OnEnd fires on benign end-of-utterance termination; OnError on
// engine failure.
type Handlers struct {
	OnResult func(text string)
	OnError  func(err error)
	OnEnd    func()
}

// Engine is the platform speech-to-text facility. Implementations call the
// handlers from their own goroutines; the Recognizer serializes them.
type Engine interface {
	SetHandlers(h Handlers)
	Start() error
	Stop()
}

// Detect probes the host once for a usable recognition engine. The probe
// looks for a configured streaming transcriber command (SNAPCARD_SPEECH_CMD,
// one finalized utterance per stdout line). A nil return means the host has
// no speech facility and the recording control should render disabled
// rather than fail at use time.
func Detect() Engine {
	cmd := speechCommand()
	if cmd == "" {
		return nil
	}
	return &CommandEngine{command: cmd}
}
