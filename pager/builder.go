package pager

import (
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
)

// A Builder constructs pagers.
type Builder struct {
	cfg     vm.Config
	backend mem.Backend
}

// MakeBuilder returns a Builder with a default geometry of 16-word
// pages, a 20-bit virtual address space, and a 12-bit physical address
// space.
func MakeBuilder() Builder {
	return Builder{
		cfg: vm.MakeConfig(4, 20, 12),
	}
}

// WithConfig sets the address-space geometry.
func (b Builder) WithConfig(cfg vm.Config) Builder {
	b.cfg = cfg
	return b
}

// WithBackend sets the physical memory the pager operates on. When no
// backend is given, Build creates a fresh Storage.
func (b Builder) WithBackend(backend mem.Backend) Builder {
	b.backend = backend
	return b
}

// Build creates a pager and initializes its root table frame.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		name:    name,
		cfg:     b.cfg,
		backend: b.backend,
	}

	if c.backend == nil {
		c.backend = mem.NewStorage(b.cfg)
	}

	c.Initialize()

	return c
}
