package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/pager"
	"github.com/sarchlab/vmsim/trace"
	"github.com/sarchlab/vmsim/vm"
)

var (
	offsetWidth uint64
	vAddrWidth  uint64
	pAddrWidth  uint64
	numOps      uint64
	seed        int64
	traceOps    bool
	recordPath  string
)

// runCmd runs a random read/write workload and prints a summary.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a reproducible random workload against a fresh pager",
	Run: func(cmd *cobra.Command, args []string) {
		runWorkload()
	},
}

func init() {
	runCmd.Flags().Uint64Var(&offsetWidth, "offset-width",
		envUint("VMSIM_OFFSET_WIDTH", 4),
		"bits of the in-frame offset")
	runCmd.Flags().Uint64Var(&vAddrWidth, "va-width",
		envUint("VMSIM_VA_WIDTH", 20),
		"bits of the virtual address space")
	runCmd.Flags().Uint64Var(&pAddrWidth, "pa-width",
		envUint("VMSIM_PA_WIDTH", 12),
		"bits of the physical address space")
	runCmd.Flags().Uint64Var(&numOps, "ops", 10000,
		"number of operations to run")
	runCmd.Flags().Int64Var(&seed, "seed", 1,
		"seed of the workload generator")
	runCmd.Flags().BoolVar(&traceOps, "trace", false,
		"log every backend operation to stderr")
	runCmd.Flags().StringVar(&recordPath, "record", "",
		"record backend operations into the SQLite database <path>.sqlite3")

	rootCmd.AddCommand(runCmd)
}

func runWorkload() {
	cfg := vm.MakeConfig(offsetWidth, vAddrWidth, pAddrWidth)
	storage := mem.NewStorage(cfg)

	if traceOps {
		logger := log.New(os.Stderr, "vmsim ", 0)
		storage.AttachObserver(trace.NewTracer(logger))
	}

	var recorder datarecording.DataRecorder
	if recordPath != "" {
		recorder = datarecording.New(recordPath)
		storage.AttachObserver(trace.NewDBTracer(recorder))
	}

	p := pager.MakeBuilder().
		WithConfig(cfg).
		WithBackend(storage).
		Build("Pager")

	rng := rand.New(rand.NewSource(seed))
	written := make(map[uint64]vm.Word)
	addrs := []uint64{}
	mismatches := 0

	for i := uint64(0); i < numOps; i++ {
		if len(addrs) == 0 || rng.Intn(2) == 0 {
			addr := uint64(rng.Int63n(int64(cfg.VirtualMemSize)))
			value := vm.Word(rng.Int63n(1 << 16))
			if err := p.Write(addr, value); err != nil {
				panic(err)
			}
			if _, seen := written[addr]; !seen {
				addrs = append(addrs, addr)
			}
			written[addr] = value
		} else {
			addr := addrs[rng.Intn(len(addrs))]
			var value vm.Word
			if err := p.Read(addr, &value); err != nil {
				panic(err)
			}
			if value != written[addr] {
				mismatches++
			}
		}
	}

	if recorder != nil {
		recorder.Flush()
	}

	stats := p.Stats()
	fmt.Printf("translations:   %d\n", stats.Translations)
	fmt.Printf("page faults:    %d\n", stats.PageFaults)
	fmt.Printf("fresh frames:   %d\n", stats.FreshFrames)
	fmt.Printf("table reclaims: %d\n", stats.TableReclaims)
	fmt.Printf("evictions:      %d\n", stats.Evictions)
	fmt.Printf("restores:       %d\n", stats.Restores)
	fmt.Printf("mismatches:     %d\n", mismatches)

	if mismatches > 0 {
		os.Exit(1)
	}
}
