//go:build !linux && !windows

package recorder

// resolveThreadName has no portable way to read the OS thread's name
// without cgo on non-Linux platforms; the caller falls back to the spec's
// "Thread_<N>" label (spec §3 "thread_names").
func resolveThreadName(osTID uint64) (name string, ok bool) {
	return "", false
}

// currentOSThreadID has no portable non-cgo OS thread id outside Linux, so
// it keys on the calling goroutine's id instead. That is stable enough for
// this layer's purposes: the target API's loader contract calls back into
// a given interception on the same goroutine for the duration of one call,
// which is all the thread-identity table needs.
func currentOSThreadID() uint64 {
	return goroutineID()
}
