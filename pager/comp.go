// Package pager implements demand paging over a hierarchical page
// table. A pager translates virtual addresses by walking a multi-level
// table tree rooted at frame 0, materializing missing table frames on
// the way and, when physical memory is full, evicting the resident page
// farthest from the faulting page by cyclic distance.
package pager

import (
	"errors"

	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
)

// Validation errors returned by Read and Write.
var (
	ErrAddrOutOfRange = errors.New("pager: virtual address out of range")
	ErrNilValue       = errors.New("pager: nil value destination")
)

// Stats counts the work a pager has performed since construction.
type Stats struct {
	Translations  uint64
	PageFaults    uint64
	FreshFrames   uint64
	TableReclaims uint64
	Evictions     uint64
	Restores      uint64
}

// A Comp owns a page-table tree hosted in a physical memory backend and
// translates virtual addresses against it. A Comp assumes exclusive
// access to its backend for the duration of each Read or Write; callers
// that share one across goroutines must serialize externally.
type Comp struct {
	name    string
	cfg     vm.Config
	backend mem.Backend
	stats   Stats
}

// Name returns the name of the pager.
func (c *Comp) Name() string {
	return c.name
}

// Config returns the address-space geometry the pager was built with.
func (c *Comp) Config() vm.Config {
	return c.cfg
}

// Stats returns a snapshot of the operation counters.
func (c *Comp) Stats() Stats {
	return c.stats
}

// Initialize zeroes the root table frame. The contents of every other
// frame are left as found.
func (c *Comp) Initialize() {
	c.clearFrame(0)
}

// Read translates vAddr and loads the word it refers to into value. No
// memory is touched when validation fails.
func (c *Comp) Read(vAddr uint64, value *vm.Word) error {
	if value == nil {
		return ErrNilValue
	}

	if vAddr >= c.cfg.VirtualMemSize {
		return ErrAddrOutOfRange
	}

	*value = c.backend.Read(c.translate(vAddr))

	return nil
}

// Write translates vAddr and stores value at the word it refers to. No
// memory is touched when validation fails.
func (c *Comp) Write(vAddr uint64, value vm.Word) error {
	if vAddr >= c.cfg.VirtualMemSize {
		return ErrAddrOutOfRange
	}

	c.backend.Write(c.translate(vAddr), value)

	return nil
}

// translate walks the table tree level by level from the root frame and
// returns the physical word address for vAddr. Each zero parent slot on
// the way triggers an allocation; the walk never caches, so every call
// starts over from frame 0.
func (c *Comp) translate(vAddr uint64) uint64 {
	c.stats.Translations++

	pageNumber := c.cfg.PageNumber(vAddr)
	frame := uint64(0)
	forbidden := uint64(0)

	for level := uint64(0); level < c.cfg.TablesDepth; level++ {
		slotAddr := c.cfg.FrameAddr(frame) + c.cfg.SlotAt(vAddr, level)
		next := c.backend.Read(slotAddr)
		if next == 0 {
			next = c.addFrame(pageNumber, level, &forbidden, slotAddr)
		}
		frame = uint64(next)
	}

	return c.cfg.FrameAddr(frame) + c.cfg.Offset(vAddr)
}

func (c *Comp) clearFrame(frame uint64) {
	base := c.cfg.FrameAddr(frame)
	for i := uint64(0); i < c.cfg.PageSize; i++ {
		c.backend.Write(base+i, 0)
	}
}
