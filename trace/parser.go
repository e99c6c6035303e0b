// Package trace supplies address streams to replay against a cache
// hierarchy, either parsed from trace files or generated pseudo-randomly.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
)

// An Access is one record of an address trace.
type Access struct {
	Op   hierarchy.Op
	Addr uint64
}

// Parse reads an address trace. Each line holds an operation letter (r or w)
// and an address in hex (0x-prefixed) or decimal. Blank lines and lines
// starting with # are skipped.
func Parse(r io.Reader) ([]Access, error) {
	var accesses []Access

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		access, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("trace line %d: %w", lineNum, err)
		}

		accesses = append(accesses, access)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}

	return accesses, nil
}

func parseLine(line string) (Access, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Access{}, fmt.Errorf(
			"expected \"<r|w> <address>\", got %q", line)
	}

	var op hierarchy.Op
	switch strings.ToLower(fields[0]) {
	case "r":
		op = hierarchy.OpRead
	case "w":
		op = hierarchy.OpWrite
	default:
		return Access{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	addr, err := strconv.ParseUint(fields[1], 0, 64)
	if err != nil {
		return Access{}, fmt.Errorf("bad address %q: %w", fields[1], err)
	}

	return Access{Op: op, Addr: addr}, nil
}
