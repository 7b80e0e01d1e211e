// Package mem provides the physical memory backend of the simulator: a
// word-addressable frame array paired with a backing store for pages
// that are not resident.
package mem

import "github.com/sarchlab/vmsim/vm"

// A Backend is a word-addressable physical memory with page-in and
// page-out primitives against a backing store. All operations are
// synchronous and cannot fail; out-of-range accesses are programmer
// errors.
type Backend interface {
	// Read returns the word at a physical word address.
	Read(addr uint64) vm.Word

	// Write stores a word at a physical word address.
	Write(addr uint64, value vm.Word)

	// Restore copies the backing-store contents of page into frame. A
	// page that was never evicted restores as all zeros.
	Restore(frame, page uint64)

	// Evict copies the contents of frame out to the backing-store slot
	// of page.
	Evict(frame, page uint64)
}

// An Op identifies one kind of backend operation.
type Op int

// The backend operation kinds.
const (
	OpRead Op = iota
	OpWrite
	OpEvict
	OpRestore
)

func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpEvict:
		return "evict"
	case OpRestore:
		return "restore"
	}
	return "unknown"
}

// An Access describes one backend operation as seen by observers. Addr
// and Value are meaningful for reads and writes, Frame and Page for
// evictions and restores.
type Access struct {
	Op    Op
	Addr  uint64
	Value vm.Word
	Frame uint64
	Page  uint64
}

// An Observer is notified of every operation a hookable backend
// performs.
type Observer interface {
	Observe(access Access)
}
