package pager

import "github.com/sarchlab/vmsim/vm"

// A parentRef locates the table slot that points at the frame being
// visited. The root frame has no parent.
type parentRef struct {
	present bool
	addr    uint64
}

// A walkState carries the joint search state of one selector run: the
// highest frame index referenced anywhere in the tree, the first
// reusable empty table, and the running best eviction candidate. One
// walkState lives exactly as long as one addFrame call.
type walkState struct {
	pageNumber uint64
	targetSlot uint64
	// faultFrame holds the target slot and must keep its place in the
	// tree, so it is never adopted even when it has become all-zero.
	faultFrame uint64
	forbidden  uint64

	maxSeen vm.Word

	emptyFound bool
	emptyFrame uint64

	bestDist     int64
	victimPage   uint64
	victimParent uint64
	victimFrame  uint64
}

// findFrame walks the table tree depth first, visiting slots in
// ascending index order. Leaf-table entries are examined through their
// parent, so the walk never descends past the last table level. Once an
// empty table has been adopted the walk unwinds without visiting
// anything else.
func (c *Comp) findFrame(
	s *walkState,
	frame uint64,
	parent parentRef,
	level, path uint64,
) {
	if level >= c.cfg.TablesDepth {
		return
	}

	base := c.cfg.FrameAddr(frame)
	allZero := true

	for i := uint64(0); i < c.cfg.PageSize; i++ {
		value := c.backend.Read(base + i)
		if value == 0 {
			continue
		}
		allZero = false

		if value > s.maxSeen && uint64(value) < c.cfg.NumFrames {
			s.maxSeen = value
		}

		childPath := c.cfg.ConcatPath(path, i)

		if level == c.cfg.TablesDepth-1 {
			// The child hosts the data page childPath. Strict > keeps
			// the earliest equidistant candidate.
			d := int64(c.cfg.CyclicDistance(s.pageNumber, childPath))
			if d > s.bestDist {
				s.bestDist = d
				s.victimPage = childPath
				s.victimParent = frame
				s.victimFrame = uint64(value)
			}
			continue
		}

		childParent := parentRef{present: true, addr: base + i}
		c.findFrame(s, uint64(value), childParent, level+1, childPath)
		if s.emptyFound {
			return
		}
	}

	if allZero && !s.emptyFound && parent.present &&
		frame != s.forbidden && frame != s.faultFrame {
		// Adopt this table. The old parent slot must be zeroed before
		// the target slot is populated.
		s.emptyFound = true
		s.emptyFrame = frame
		c.backend.Write(parent.addr, 0)
		c.backend.Write(s.targetSlot, vm.Word(frame))
	}
}
