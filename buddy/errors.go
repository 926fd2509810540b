package buddy

import "errors"

var (
	// ErrSegmentTooSmall is returned by New when the segment cannot fit
	// even a single class-MinClass chunk after the header.
	ErrSegmentTooSmall = errors.New("buddy: segment too small to carve a single minimum-class chunk")

	// ErrCreateFailed wraps any error bootstrap returns while New is
	// tiling a fresh segment, so callers can errors.Is against a single
	// sentinel regardless of the underlying cause.
	ErrCreateFailed = errors.New("buddy: failed to initialize segment")

	// ErrClassOverflow is returned by Alloc when size, plus chunk header
	// overhead, needs a class larger than MaxClass can represent.
	ErrClassOverflow = errors.New("buddy: requested size exceeds the largest chunk class")

	// ErrNoSpace is returned by Alloc when no free chunk of the required
	// class or any class above it is available.
	ErrNoSpace = errors.New("buddy: no free chunk of sufficient class available")

	// ErrBadOffset is returned by Free when ref does not address a chunk
	// that Alloc could plausibly have returned: it falls outside the
	// segment's chunk-bearing region, or outside the segment entirely.
	ErrBadOffset = errors.New("buddy: offset does not address a valid chunk")
)
