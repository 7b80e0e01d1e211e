package pager

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
)

var _ = Describe("Pager", func() {
	var cfg vm.Config

	BeforeEach(func() {
		cfg = vm.MakeConfig(1, 5, 4)
	})

	Context("input validation", func() {
		var (
			mockCtrl *gomock.Controller
			backend  *MockBackend
			pager    *Comp
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			backend = NewMockBackend(mockCtrl)
			pager = &Comp{name: "Pager", cfg: cfg, backend: backend}
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should reject an out-of-range read without touching memory", func() {
			var value vm.Word

			err := pager.Read(cfg.VirtualMemSize, &value)

			Expect(err).To(MatchError(ErrAddrOutOfRange))
		})

		It("should reject an out-of-range write without touching memory", func() {
			Expect(pager.Write(cfg.VirtualMemSize, 1)).
				To(MatchError(ErrAddrOutOfRange))
			Expect(pager.Write(^uint64(0), 1)).
				To(MatchError(ErrAddrOutOfRange))
		})

		It("should reject a read without a destination", func() {
			Expect(pager.Read(0, nil)).To(MatchError(ErrNilValue))
		})
	})

	Context("walking an installed path", func() {
		var (
			mockCtrl *gomock.Controller
			backend  *MockBackend
			pager    *Comp
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			backend = NewMockBackend(mockCtrl)
			pager = &Comp{name: "Pager", cfg: cfg, backend: backend}
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should translate a mapped address with reads only", func() {
			// 13 = 0b01101 walks slots 0, 1, 1, 0 through frames
			// 1, 2, 3 into data frame 4, then reads offset 1.
			gomock.InOrder(
				backend.EXPECT().Read(uint64(0)).Return(vm.Word(1)),
				backend.EXPECT().Read(uint64(3)).Return(vm.Word(2)),
				backend.EXPECT().Read(uint64(5)).Return(vm.Word(3)),
				backend.EXPECT().Read(uint64(6)).Return(vm.Word(4)),
				backend.EXPECT().Read(uint64(9)).Return(vm.Word(42)),
			)

			var value vm.Word
			err := pager.Read(13, &value)

			Expect(err).ToNot(HaveOccurred())
			Expect(value).To(Equal(vm.Word(42)))
		})
	})

	Context("building the tree", func() {
		var (
			storage *mem.Storage
			pager   *Comp
		)

		BeforeEach(func() {
			storage = mem.NewStorage(cfg)
			pager = MakeBuilder().
				WithConfig(cfg).
				WithBackend(storage).
				Build("Pager")
		})

		It("should materialize the path of a cold write in frame order", func() {
			Expect(pager.Write(13, 3)).To(Succeed())

			Expect(storage.Read(0)).To(Equal(vm.Word(1)))
			Expect(storage.Read(3)).To(Equal(vm.Word(2)))
			Expect(storage.Read(5)).To(Equal(vm.Word(3)))
			Expect(storage.Read(6)).To(Equal(vm.Word(4)))
			Expect(storage.Read(9)).To(Equal(vm.Word(3)))

			stats := pager.Stats()
			Expect(stats.PageFaults).To(Equal(uint64(4)))
			Expect(stats.FreshFrames).To(Equal(uint64(4)))
			Expect(stats.Restores).To(Equal(uint64(1)))
			Expect(stats.Evictions).To(Equal(uint64(0)))
		})

		It("should reuse the installed path on a repeated access", func() {
			Expect(pager.Write(13, 3)).To(Succeed())
			faultsAfterFirst := pager.Stats().PageFaults

			Expect(pager.Write(13, 4)).To(Succeed())

			Expect(pager.Stats().PageFaults).To(Equal(faultsAfterFirst))
			Expect(storage.Read(9)).To(Equal(vm.Word(4)))
		})

		It("should never install a reference to the root frame", func() {
			for addr := uint64(0); addr < cfg.VirtualMemSize; addr++ {
				Expect(pager.Write(addr, vm.Word(addr))).To(Succeed())
			}

			refs := map[uint64]int{}
			collectRefs(cfg, storage, 0, 0, refs)

			Expect(refs).ToNot(HaveKey(uint64(0)))
		})
	})
})

// collectRefs walks the table tree and counts, per frame, how many
// parent slots reference it.
func collectRefs(
	cfg vm.Config,
	backend mem.Backend,
	frame, level uint64,
	refs map[uint64]int,
) {
	if level >= cfg.TablesDepth {
		return
	}

	base := cfg.FrameAddr(frame)
	for i := uint64(0); i < cfg.PageSize; i++ {
		value := backend.Read(base + i)
		if value == 0 {
			continue
		}
		refs[uint64(value)]++
		collectRefs(cfg, backend, uint64(value), level+1, refs)
	}
}
