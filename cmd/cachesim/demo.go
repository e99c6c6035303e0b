package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in two-level demo workload.",
	Long: `demo builds a 2-way 64-KB L1 on top of a 4-way 1-MB L2, both ` +
		`write-back with LRU eviction, and interleaves reads of two ` +
		`address streams with writes of a third for 16384 iterations.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().Bool("verbose", false,
		"Log every access in human-readable form")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	l1, err := hierarchy.MakeBuilder().
		WithCapacityBits(16).
		WithWayAssociativity(2).
		WithAddrBits(32).
		WithBlockBits(5).
		WithWritePolicy(hierarchy.WriteBack).
		WithEvictPolicy(hierarchy.LRU).
		Build("L1")
	if err != nil {
		return err
	}

	l2, err := hierarchy.MakeBuilder().
		WithCapacityBits(20).
		WithWayAssociativity(4).
		WithAddrBits(32).
		WithBlockBits(5).
		WithWritePolicy(hierarchy.WriteBack).
		WithEvictPolicy(hierarchy.LRU).
		Build("L2")
	if err != nil {
		return err
	}

	l1.Cascade(l2)

	verbose, _ := cmd.Flags().GetBool("verbose")
	l1.SetVerbose(verbose)
	l2.SetVerbose(verbose)

	a := uint64(0x110000)
	b := uint64(0x120000)
	c := uint64(0x130000)

	for i := uint64(0); i < 16384; i++ {
		if verbose {
			fmt.Printf("-------- iter %d --------\n", i+1)
		}

		l1.Read(a + i<<2)
		l1.Read(b + i<<2)
		l1.Write(c + i<<2)
	}

	fmt.Println()
	l1.WriteStats(os.Stdout)
	l2.WriteStats(os.Stdout)

	return nil
}
