//go:build windows

package segment

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Create allocates an anonymous, pagefile-backed file mapping — the
// closest Windows analogue of an anonymous System V shared memory
// segment, and the same primitive Windows processes normally use to share
// memory by name. Large-page backing is requested via SEC_LARGE_PAGES
// when opts.HugePages is set; like the SysV SHM_HUGETLB path, this
// silently falls back to normal pages if the process lacks
// SeLockMemoryPrivilege.
func Create(opts Options) (*Segment, error) {
	if opts.Size <= 0 {
		return nil, ErrInvalidSize
	}

	sizeHigh := uint32(uint64(opts.Size) >> 32)
	sizeLow := uint32(uint64(opts.Size) & 0xFFFFFFFF)

	flags := uint32(windows.PAGE_READWRITE)
	var h windows.Handle
	var err error
	if opts.HugePages {
		h, err = windows.CreateFileMapping(windows.InvalidHandle, nil, flags|windows.SEC_LARGE_PAGES, sizeHigh, sizeLow, nil)
	}
	if !opts.HugePages || err != nil {
		h, err = windows.CreateFileMapping(windows.InvalidHandle, nil, flags, sizeHigh, sizeLow, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("segment: CreateFileMapping failed: %w", err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_WRITE, 0, 0, uintptr(opts.Size))
	if err != nil {
		_ = windows.CloseHandle(h)
		return nil, fmt.Errorf("segment: MapViewOfFile failed: %w", err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), opts.Size)
	seg := newMapped(data, 0, func() error {
		if err := windows.UnmapViewOfFile(addr); err != nil {
			return err
		}
		return windows.CloseHandle(h)
	})
	return seg, nil
}
