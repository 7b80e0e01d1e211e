package pager

import "github.com/sarchlab/vmsim/vm"

// addFrame resolves a page fault at the given level of a walk. It runs
// the selector once and then commits one of three strategies, in order
// of preference: reclaim an all-zero table, take the first never-used
// frame, or evict the resident page farthest from the faulting page.
// The chosen frame is installed into the parent slot at slotAddr and
// returned.
func (c *Comp) addFrame(
	pageNumber, level uint64,
	forbidden *uint64,
	slotAddr uint64,
) vm.Word {
	c.stats.PageFaults++

	s := &walkState{
		pageNumber: pageNumber,
		targetSlot: slotAddr,
		faultFrame: slotAddr / c.cfg.PageSize,
		forbidden:  *forbidden,
		bestDist:   -1,
	}
	c.findFrame(s, 0, parentRef{}, 0, 0)

	var frame uint64
	switch {
	case s.emptyFound:
		// The walk already detached the table from its old parent and
		// installed it into the target slot.
		frame = s.emptyFrame
		c.stats.TableReclaims++

	case uint64(s.maxSeen)+1 < c.cfg.NumFrames:
		frame = uint64(s.maxSeen) + 1
		c.backend.Write(slotAddr, vm.Word(frame))
		c.stats.FreshFrames++

	default:
		if s.bestDist < 0 {
			panic("pager: no eviction candidate")
		}
		frame = s.victimFrame
		c.backend.Evict(frame, s.victimPage)
		victimSlot := c.cfg.FrameAddr(s.victimParent) +
			c.cfg.Offset(s.victimPage)
		c.backend.Write(victimSlot, 0)
		c.backend.Write(slotAddr, vm.Word(frame))
		c.stats.Evictions++
	}

	if level == c.cfg.TablesDepth-1 {
		c.backend.Restore(frame, pageNumber)
		c.stats.Restores++
	} else {
		c.clearFrame(frame)
		// The frame now serves a shallower level of this same walk and
		// must not be picked again before the walk ends.
		*forbidden = frame
	}

	return vm.Word(frame)
}
