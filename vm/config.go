// Package vm defines the word type, the address-space geometry, and the
// pure address arithmetic shared by the virtual memory simulator.
package vm

// A Word is the unit of physical memory. It is wide enough to hold any
// frame index or page index.
type Word int64

// A Config describes the geometry of the simulated address spaces. The
// three widths are given; everything else is derived.
type Config struct {
	OffsetWidth       uint64
	VirtualAddrWidth  uint64
	PhysicalAddrWidth uint64

	// TablesDepth is the number of page-table levels. A virtual address
	// decomposes into TablesDepth slot indices of OffsetWidth bits each,
	// followed by one OffsetWidth-bit in-page offset.
	TablesDepth uint64

	PageSize       uint64
	NumFrames      uint64
	NumPages       uint64
	VirtualMemSize uint64
}

// MakeConfig derives a full Config from the offset width and the widths
// of the virtual and physical address spaces. It panics if the geometry
// cannot host a page-table tree: the root, one table per level, and one
// data frame must be able to coexist.
func MakeConfig(offsetWidth, vAddrWidth, pAddrWidth uint64) Config {
	if offsetWidth == 0 {
		panic("vm: offset width must be positive")
	}

	if vAddrWidth <= offsetWidth {
		panic("vm: virtual address width must exceed the offset width")
	}

	c := Config{
		OffsetWidth:       offsetWidth,
		VirtualAddrWidth:  vAddrWidth,
		PhysicalAddrWidth: pAddrWidth,
	}

	c.PageSize = 1 << offsetWidth
	c.TablesDepth = (vAddrWidth - offsetWidth + offsetWidth - 1) / offsetWidth
	c.NumFrames = (1 << pAddrWidth) / c.PageSize
	c.NumPages = 1 << (vAddrWidth - offsetWidth)
	c.VirtualMemSize = 1 << vAddrWidth

	if c.NumFrames <= c.TablesDepth {
		panic("vm: not enough frames to host the table tree")
	}

	return c
}
