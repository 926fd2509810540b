//go:build !linux && !darwin && !freebsd && !windows

package segment

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Create falls back to an anonymous MAP_SHARED|MAP_ANON mapping on
// platforms without a wired-up System V shmget path. The mapping is
// visible only to processes that fork from this one (there is no shmid to
// hand to a later-joining process), which is sufficient for the
// allocator's own contract but weaker than create_unix.go's System V path.
// Huge-page backing is not available here; opts.HugePages is accepted and
// ignored.
func Create(opts Options) (*Segment, error) {
	if opts.Size <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := unix.Mmap(-1, 0, int(opts.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("segment: mmap failed: %w", err)
	}

	seg := newMapped(data, 0, func() error {
		return unix.Munmap(data)
	})
	return seg, nil
}
