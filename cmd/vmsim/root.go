package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "vmsim",
	Short: "vmsim drives a simulated hierarchical virtual memory.",
	Long: `vmsim drives a simulated hierarchical virtual memory. It builds a ` +
		`pager over a fixed number of physical frames and runs workloads that ` +
		`exercise demand paging, on-the-fly page-table construction, and ` +
		`cyclic-distance eviction.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// The defaults of the geometry flags can be overridden by
	// VMSIM_OFFSET_WIDTH, VMSIM_VA_WIDTH and VMSIM_PA_WIDTH in a .env
	// file or the environment.
	_ = godotenv.Load()
}

func envUint(key string, fallback uint64) uint64 {
	s, found := os.LookupEnv(key)
	if !found {
		return fallback
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fallback
	}

	return v
}
