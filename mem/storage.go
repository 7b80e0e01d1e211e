package mem

import "github.com/sarchlab/vmsim/vm"

// A Storage is the default Backend. It keeps the resident frames in a
// dense word array. The backing store is sparse, with one slot per
// page; pages without a slot read back as zeros.
type Storage struct {
	cfg       vm.Config
	frames    []vm.Word
	swap      map[uint64][]vm.Word
	observers []Observer
}

// NewStorage creates a Storage that hosts cfg.NumFrames frames.
func NewStorage(cfg vm.Config) *Storage {
	return &Storage{
		cfg:    cfg,
		frames: make([]vm.Word, cfg.NumFrames*cfg.PageSize),
		swap:   make(map[uint64][]vm.Word),
	}
}

// AttachObserver registers an observer that will see every subsequent
// operation.
func (s *Storage) AttachObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Read returns the word at a physical word address.
func (s *Storage) Read(addr uint64) vm.Word {
	s.mustBeInRange(addr)

	value := s.frames[addr]
	s.notify(Access{Op: OpRead, Addr: addr, Value: value})

	return value
}

// Write stores a word at a physical word address.
func (s *Storage) Write(addr uint64, value vm.Word) {
	s.mustBeInRange(addr)

	s.frames[addr] = value
	s.notify(Access{Op: OpWrite, Addr: addr, Value: value})
}

// Restore fills frame with the backing-store contents of page.
func (s *Storage) Restore(frame, page uint64) {
	s.mustBeValidFrame(frame)

	base := s.cfg.FrameAddr(frame)
	stored := s.swap[page]
	for i := uint64(0); i < s.cfg.PageSize; i++ {
		if stored == nil {
			s.frames[base+i] = 0
		} else {
			s.frames[base+i] = stored[i]
		}
	}

	s.notify(Access{Op: OpRestore, Frame: frame, Page: page})
}

// Evict copies frame out to the backing-store slot of page.
func (s *Storage) Evict(frame, page uint64) {
	s.mustBeValidFrame(frame)

	base := s.cfg.FrameAddr(frame)
	stored := make([]vm.Word, s.cfg.PageSize)
	copy(stored, s.frames[base:base+s.cfg.PageSize])
	s.swap[page] = stored

	s.notify(Access{Op: OpEvict, Frame: frame, Page: page})
}

func (s *Storage) notify(access Access) {
	for _, o := range s.observers {
		o.Observe(access)
	}
}

func (s *Storage) mustBeInRange(addr uint64) {
	if addr >= uint64(len(s.frames)) {
		panic("mem: accessing physical address beyond the storage capacity")
	}
}

func (s *Storage) mustBeValidFrame(frame uint64) {
	if frame >= s.cfg.NumFrames {
		panic("mem: frame index beyond the storage capacity")
	}
}
