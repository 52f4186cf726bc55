// ABOUTME: Engine backed by an external streaming speech-to-text command
// ABOUTME: Runs the configured command and forwards finalized stdout lines
package speech

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
)

func speechCommand() string {
	return strings.TrimSpace(os.Getenv("SNAPCARD_SPEECH_CMD"))
}

// CommandEngine runs a shell command that emits one finalized utterance per
// stdout line. Lines are forwarded through OnResult; a clean exit fires
// OnEnd (end-of-utterance), a failed start or non-zero exit fires OnError.
type CommandEngine struct {
	command  string
	handlers Handlers

	mu  sync.Mutex
	cmd *exec.Cmd
}

func (e *CommandEngine) SetHandlers(h Handlers) {
	e.handlers = h
}

func (e *CommandEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil {
		return nil // already running
	}

	cmd := exec.Command("sh", "-c", e.command)
	// Own process group, so Stop can kill pipeline children along with the
	// shell.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open transcriber pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start transcriber: %w", err)
	}
	e.cmd = cmd

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if e.handlers.OnResult != nil {
				e.handlers.OnResult(line)
			}
		}

		err := cmd.Wait()

		e.mu.Lock()
		// Only clear our own handle. Stop() may already have nilled it, or a
		// fast re-toggle may have installed a new session's cmd; neither is
		// ours to touch.
		current := e.cmd == cmd
		if current {
			e.cmd = nil
		}
		e.mu.Unlock()

		if !current {
			return
		}
		if err != nil {
			if e.handlers.OnError != nil {
				e.handlers.OnError(err)
			}
			return
		}
		if e.handlers.OnEnd != nil {
			e.handlers.OnEnd()
		}
	}()

	return nil
}

func (e *CommandEngine) Stop() {
	e.mu.Lock()
	cmd := e.cmd
	e.cmd = nil
	e.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}

	// Kill the whole group: killing only the shell would leave pipeline
	// children running with the microphone open.
	if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
		_ = cmd.Process.Kill()
	}
}
