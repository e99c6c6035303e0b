package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Bob-Chou/cse240-cache-simulator/datarecording"
	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
	"github.com/Bob-Chou/cse240-cache-simulator/monitoring"
	"github.com/Bob-Chou/cse240-cache-simulator/trace"
	"github.com/Bob-Chou/cse240-cache-simulator/tracing"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an address trace against a cache hierarchy.",
	Long: `run builds an L1 (and optionally L2) cache from the flags and ` +
		`replays either a trace file of "<r|w> <address>" lines or a ` +
		`generated pseudo-random stream, then prints per-level statistics.`,
	RunE: runSimulation,
}

func init() {
	flags := runCmd.Flags()

	flags.String("trace", "", "Trace file to replay")
	flags.Int("random", 0, "Number of random accesses to generate instead")
	flags.Int64("seed", 1, "Random seed")
	flags.Uint64("max-address", 1048576, "Address range for random accesses")
	flags.Float64("write-ratio", 0.5, "Write fraction of random accesses")

	flags.Int("addr-bits", 32, "Simulated address width in bits")

	flags.Int("l1-capacity-bits", 16, "L1 capacity in address bits")
	flags.Int("l1-ways", 2, "L1 way associativity")
	flags.Int("l1-block-bits", 5, "L1 block size in address bits")
	flags.String("l1-write", "writeback", "L1 write policy: writeback|writethrough")
	flags.String("l1-evict", "lru", "L1 eviction policy: lru|fifo")

	flags.Bool("l2", false, "Attach an L2 cache")
	flags.Int("l2-capacity-bits", 20, "L2 capacity in address bits")
	flags.Int("l2-ways", 4, "L2 way associativity")
	flags.Int("l2-block-bits", 5, "L2 block size in address bits")
	flags.String("l2-write", "writeback", "L2 write policy: writeback|writethrough")
	flags.String("l2-evict", "lru", "L2 eviction policy: lru|fifo")

	flags.Bool("verbose", false, "Log every access in human-readable form")
	flags.String("csv", "", "Record the trace into a CSV file at this path")
	flags.String("db", envDefault("DB", ""),
		"Record the trace into a SQLite database at this path")
	flags.Int("monitor", envDefaultInt("PORT", 0),
		"Serve live statistics over HTTP on this port")

	rootCmd.AddCommand(runCmd)
}

// envDefault returns the CACHESIM_-prefixed environment value for key, or
// the fallback when unset.
func envDefault(key, fallback string) string {
	if v := os.Getenv("CACHESIM_" + key); v != "" {
		return v
	}

	return fallback
}

func envDefaultInt(key string, fallback int) int {
	v := envDefault(key, "")
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func parseWritePolicy(s string) (hierarchy.WritePolicy, error) {
	switch strings.ToLower(s) {
	case "writeback", "write-back", "wb":
		return hierarchy.WriteBack, nil
	case "writethrough", "write-through", "wt":
		return hierarchy.WriteThrough, nil
	default:
		return 0, fmt.Errorf("unknown write policy %q", s)
	}
}

func parseEvictPolicy(s string) (hierarchy.EvictPolicy, error) {
	switch strings.ToLower(s) {
	case "lru":
		return hierarchy.LRU, nil
	case "fifo":
		return hierarchy.FIFO, nil
	default:
		return 0, fmt.Errorf("unknown eviction policy %q", s)
	}
}

func buildLevel(cmd *cobra.Command, name, prefix string) (*hierarchy.Cache, error) {
	flags := cmd.Flags()

	capacityBits, _ := flags.GetInt(prefix + "-capacity-bits")
	ways, _ := flags.GetInt(prefix + "-ways")
	blockBits, _ := flags.GetInt(prefix + "-block-bits")
	addrBits, _ := flags.GetInt("addr-bits")
	writeFlag, _ := flags.GetString(prefix + "-write")
	evictFlag, _ := flags.GetString(prefix + "-evict")

	writePolicy, err := parseWritePolicy(writeFlag)
	if err != nil {
		return nil, err
	}

	evictPolicy, err := parseEvictPolicy(evictFlag)
	if err != nil {
		return nil, err
	}

	return hierarchy.MakeBuilder().
		WithCapacityBits(capacityBits).
		WithWayAssociativity(ways).
		WithAddrBits(addrBits).
		WithBlockBits(blockBits).
		WithWritePolicy(writePolicy).
		WithEvictPolicy(evictPolicy).
		Build(name)
}

func loadAccesses(cmd *cobra.Command) ([]trace.Access, error) {
	flags := cmd.Flags()

	traceFile, _ := flags.GetString("trace")
	numRandom, _ := flags.GetInt("random")

	switch {
	case traceFile != "" && numRandom > 0:
		return nil, fmt.Errorf("--trace and --random are mutually exclusive")
	case traceFile != "":
		f, err := os.Open(traceFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return trace.Parse(f)
	case numRandom > 0:
		seed, _ := flags.GetInt64("seed")
		maxAddr, _ := flags.GetUint64("max-address")
		writeRatio, _ := flags.GetFloat64("write-ratio")

		gen := trace.NewGenerator(seed, maxAddr, writeRatio)
		accesses := make([]trace.Access, numRandom)
		for i := range accesses {
			accesses[i] = gen.Next()
		}

		return accesses, nil
	default:
		return nil, fmt.Errorf("either --trace or --random is required")
	}
}

func attachObservers(cmd *cobra.Command, caches []*hierarchy.Cache) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	csvPath, _ := flags.GetString("csv")
	dbPath, _ := flags.GetString("db")
	monitorPort, _ := flags.GetInt("monitor")

	for _, c := range caches {
		c.SetVerbose(verbose)
	}

	if csvPath != "" {
		writer := tracing.NewCSVTraceWriter(csvPath)
		writer.Init()

		for _, c := range caches {
			tracing.Collect(c, writer)
		}
	}

	if dbPath != "" {
		tracer := tracing.NewDBTracer(datarecording.New(dbPath))

		for _, c := range caches {
			tracing.Collect(c, tracer)
		}
	}

	if monitorPort != 0 {
		monitor := monitoring.NewMonitor().WithPortNumber(monitorPort)
		for _, c := range caches {
			monitor.RegisterCache(c)
		}

		monitor.StartServer()
	}

	return nil
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	l1, err := buildLevel(cmd, "L1", "l1")
	if err != nil {
		return err
	}

	caches := []*hierarchy.Cache{l1}

	withL2, _ := cmd.Flags().GetBool("l2")
	if withL2 {
		l2, err := buildLevel(cmd, "L2", "l2")
		if err != nil {
			return err
		}

		l1.Cascade(l2)
		caches = append(caches, l2)
	}

	if err := attachObservers(cmd, caches); err != nil {
		return err
	}

	accesses, err := loadAccesses(cmd)
	if err != nil {
		return err
	}

	for _, access := range accesses {
		switch access.Op {
		case hierarchy.OpWrite:
			l1.Write(access.Addr)
		default:
			l1.Read(access.Addr)
		}
	}

	fmt.Println()
	for _, c := range caches {
		c.WriteStats(os.Stdout)
	}

	return nil
}
