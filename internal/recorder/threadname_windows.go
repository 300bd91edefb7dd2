//go:build windows

package recorder

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetThreadDescription = kernel32.NewProc("GetThreadDescription")
	procLocalFree            = kernel32.NewProc("LocalFree")
)

// resolveThreadName calls GetThreadDescription on the calling thread (the
// Windows analogue of prctl(PR_GET_NAME) on Linux), matching the original
// source's ::GetThreadDescription call in SyncAnalyzer.cpp::_GetThreadID.
// The caller falls back to the spec's "Thread_<N>" label when ok is false.
func resolveThreadName(osTID uint64) (name string, ok bool) {
	var strPtr uintptr
	hr, _, _ := procGetThreadDescription.Call(
		uintptr(windows.CurrentThread()),
		uintptr(unsafe.Pointer(&strPtr)),
	)
	if int32(hr) < 0 || strPtr == 0 {
		return "", false
	}
	defer procLocalFree.Call(strPtr)

	s := utf16PtrToString(strPtr)
	if s == "" {
		return "", false
	}
	return s, true
}

// currentOSThreadID returns the calling OS thread id.
func currentOSThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

func utf16PtrToString(ptr uintptr) string {
	var chars []uint16
	for i := 0; ; i++ {
		c := *(*uint16)(unsafe.Pointer(ptr + uintptr(i)*2))
		if c == 0 {
			break
		}
		chars = append(chars, c)
	}
	return string(utf16.Decode(chars))
}
