// Package hierarchy models set-associative, multi-level memory caches. It
// replays streams of read and write addresses against cache levels, tracking
// hits, misses, evictions, and write propagation between levels. No data
// values are stored; only block presence, recency, and dirty state.
package hierarchy
