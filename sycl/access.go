package sycl

// AccessMode describes how a kernel intends to use an accessor.
// The mode is recorded but does not restrict indexing yet: every accessor
// is read-write.
type AccessMode int

const (
	AccessRead AccessMode = iota
	AccessWrite
	AccessAtomic
	AccessReadWrite
	AccessDiscardReadWrite
)

// String returns a human-readable name for the access mode.
func (m AccessMode) String() string {
	switch m {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessAtomic:
		return "atomic"
	case AccessReadWrite:
		return "read_write"
	case AccessDiscardReadWrite:
		return "discard_read_write"
	default:
		return "unknown"
	}
}

// Writes reports whether the mode may modify the buffer.
func (m AccessMode) Writes() bool { return m != AccessRead }

// AccessTarget describes the memory an accessor addresses. On the host all
// targets address the buffer storage directly.
type AccessTarget int

const (
	TargetGlobalBuffer AccessTarget = iota
	TargetConstantBuffer
	TargetLocal
	TargetImage
	TargetHostBuffer
	TargetHostImage
	TargetImageArray
	TargetCLBuffer
	TargetCLImage
)

// String returns a human-readable name for the access target.
func (t AccessTarget) String() string {
	switch t {
	case TargetGlobalBuffer:
		return "global_buffer"
	case TargetConstantBuffer:
		return "constant_buffer"
	case TargetLocal:
		return "local"
	case TargetImage:
		return "image"
	case TargetHostBuffer:
		return "host_buffer"
	case TargetHostImage:
		return "host_image"
	case TargetImageArray:
		return "image_array"
	case TargetCLBuffer:
		return "cl_buffer"
	case TargetCLImage:
		return "cl_image"
	default:
		return "unknown"
	}
}

// FenceSpace selects the memory a barrier orders.
type FenceSpace int

const (
	LocalMemFence FenceSpace = iota + 1
	GlobalMemFence
)

// Barrier is the work-item synchronization hook. Kernels run to completion
// one work-item at a time within a group, so there is nothing to wait for.
func Barrier(FenceSpace) {}
