//go:build linux

package pshared

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux futex(2) operation codes. golang.org/x/sys/unix exposes the
// SYS_FUTEX syscall number but not these operation constants, so they are
// defined locally.
const (
	futexWaitOp = 0
	futexWakeOp = 1
)

// futexWait blocks the calling goroutine until addr's value changes away
// from expected, or until it is woken by futexWake. A spurious return is
// always safe: every caller re-checks its own condition in a loop.
func futexWait(addr *uint32, expected uint32) {
	for {
		_, _, errno := unix.Syscall6(
			unix.SYS_FUTEX,
			uintptr(unsafe.Pointer(addr)),
			uintptr(futexWaitOp),
			uintptr(expected),
			0, 0, 0,
		)
		switch errno {
		case 0, unix.EAGAIN:
			return
		case unix.EINTR:
			continue
		default:
			return
		}
	}
}

// futexWake wakes up to n goroutines (in any process) blocked in
// futexWait on addr.
func futexWake(addr *uint32, n int) {
	unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWakeOp),
		uintptr(n),
		0, 0, 0,
	)
}
