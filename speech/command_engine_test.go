// ABOUTME: Tests for the external-command speech engine
// ABOUTME: Covers subprocess group teardown and fast stop/start cycling
package speech

import (
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"
)

func enginePID(t *testing.T, e *CommandEngine) int {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil || e.cmd.Process == nil {
		t.Fatal("engine has no running command")
	}
	return e.cmd.Process.Pid
}

// waitGroupGone polls until no process in the group remains.
func waitGroupGone(t *testing.T, pgid int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		err := syscall.Kill(-pgid, 0)
		if errors.Is(err, syscall.ESRCH) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	_ = syscall.Kill(-pgid, syscall.SIGKILL)
	t.Fatalf("process group %d still alive after Stop", pgid)
}

func TestStopKillsPipelineChildren(t *testing.T) {
	e := &CommandEngine{command: "sleep 60 | cat"}
	e.SetHandlers(Handlers{})

	if err := e.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	pgid := enginePID(t, e)

	e.Stop()

	// Both the shell and the pipeline children share the group; all of
	// them must be gone.
	waitGroupGone(t, pgid)
}

func TestFastRestartKeepsNewSession(t *testing.T) {
	e := &CommandEngine{command: "sleep 60"}

	var mu sync.Mutex
	var errs, ends int
	e.SetHandlers(Handlers{
		OnError: func(error) { mu.Lock(); errs++; mu.Unlock() },
		OnEnd:   func() { mu.Lock(); ends++; mu.Unlock() },
	})

	if err := e.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	oldPID := enginePID(t, e)

	// Stop and immediately restart, before the old session's reader
	// goroutine has observed the kill.
	e.Stop()
	if err := e.Start(); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	newPID := enginePID(t, e)
	if newPID == oldPID {
		t.Fatalf("restart reused pid %d", oldPID)
	}

	// Let the old goroutine finish reaping its command.
	waitGroupGone(t, oldPID)
	time.Sleep(100 * time.Millisecond)

	e.mu.Lock()
	lost := e.cmd == nil
	e.mu.Unlock()
	if lost {
		t.Fatal("old session's cleanup clobbered the new session's handle")
	}

	mu.Lock()
	gotErrs, gotEnds := errs, ends
	mu.Unlock()
	if gotErrs != 0 || gotEnds != 0 {
		t.Errorf("stopped session fired callbacks: %d errors, %d ends", gotErrs, gotEnds)
	}

	e.Stop()
	waitGroupGone(t, newPID)
}
