//go:build linux

package recorder

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// resolveThreadName asks the kernel for the calling thread's comm name via
// prctl(PR_GET_NAME). The caller falls back to the spec's "Thread_<N>"
// label (spec §3 "thread_names") when ok is false (sandboxed environments,
// stripped permissions).
func resolveThreadName(osTID uint64) (name string, ok bool) {
	var buf [16]byte
	if err := unix.Prctl(unix.PR_GET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return "", false
	}

	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	if n == 0 {
		return "", false
	}
	return string(buf[:n]), true
}

// currentOSThreadID returns the calling goroutine's OS thread id.
func currentOSThreadID() uint64 {
	return uint64(unix.Gettid())
}
