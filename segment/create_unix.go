//go:build linux || darwin || freebsd

package segment

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Create allocates a new System V shared memory segment of the requested
// size, attaches it into this process's address space, and immediately
// requests its removal (IPC_RMID) so the kernel defers reclamation until
// every attached process — including this one — has detached. This
// matches original_source/shmmgr.c's shmmgr_init exactly: the segment
// outlives no process deliberately, but neither does it leak once the
// last attacher goes away.
//
// The returned Segment's Header is zeroed by the kernel at allocation
// time; callers still need to run the buddy bootstrap tiling before the
// segment is usable.
func Create(opts Options) (*Segment, error) {
	if opts.Size <= 0 {
		return nil, ErrInvalidSize
	}

	flags := 0o600 | unix.IPC_CREAT | unix.IPC_EXCL
	if opts.HugePages {
		flags |= shmHugetlbFlag
	}

	id, err := unix.SysvShmGet(unix.IPC_PRIVATE, int(opts.Size), flags)
	if err != nil && opts.HugePages {
		// Huge pages may not be reserved on this host; retry without
		// them rather than fail outright.
		flags &^= shmHugetlbFlag
		id, err = unix.SysvShmGet(unix.IPC_PRIVATE, int(opts.Size), flags)
	}
	if err != nil {
		return nil, fmt.Errorf("segment: shmget failed: %w", err)
	}

	data, attachErr := unix.SysvShmAttach(id, 0, 0)

	// Request removal regardless of attach outcome: if attach failed,
	// this is the only reference to the segment and it must not leak.
	if _, ctlErr := unix.SysvShmCtl(id, unix.IPC_RMID, nil); ctlErr != nil && attachErr == nil {
		return nil, fmt.Errorf("segment: shmctl(IPC_RMID) failed: %w", ctlErr)
	}
	if attachErr != nil {
		return nil, fmt.Errorf("segment: shmat failed: %w", attachErr)
	}

	seg := newMapped(data, int32(id), func() error {
		return unix.SysvShmDetach(data)
	})
	seg.Header().SegmentID = int32(id)
	return seg, nil
}
