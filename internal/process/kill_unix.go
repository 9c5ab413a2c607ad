//go:build !windows

// Package process terminates browser process trees left behind by the
// Chrome renderer.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, which
// takes Chrome's renderer and GPU helpers down with the main process.
// Non-positive PIDs are ignored: -0 would target our own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher kills the main process afterwards anyway
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
