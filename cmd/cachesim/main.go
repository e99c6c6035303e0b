// Command cachesim replays memory address traces against a configurable
// multi-level cache hierarchy and reports hit/miss statistics.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Simulate set-associative cache hierarchies over address traces.",
	Long: `cachesim replays a stream of read/write addresses against one or ` +
		`two levels of set-associative caches with configurable geometry, ` +
		`write policy (write-back or write-through), and eviction policy ` +
		`(LRU or FIFO). It reports per-level hit/miss statistics without ` +
		`modeling data values or timing.`,
}

func main() {
	// A .env file can hold CACHESIM_-prefixed defaults for the flags.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
