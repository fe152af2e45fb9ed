// Package engine implements the three candidate-generation modes
// described for this tool: a contiguous range sweep, a scalar-list
// consumer, and a randomized sub-range sweep. Each mode drives the
// same point-to-hash-to-filter pipeline, differing only in how
// candidate scalars are produced.
package engine

import (
	"fmt"
	"io"
	"log"
	"sync"

	"ecsweep.dev"
	"ecsweep.dev/coord"
	"ecsweep.dev/filter"
)

// Found is one match: the label ("addr33" or "addr65"), the matching
// hash, and the private scalar that produced it.
type Found struct {
	Label string
	Hash  ecsweep.H160
	Key   ecsweep.Fe
}

// Context holds everything shared read-only (after setup) by every
// worker goroutine in a run: the target filter, which address
// encodings to check, the output sink, and the shared counters. The
// generator table and gpoints grid live on the mode-specific engines
// since only the sweep and mul modes need them.
type Context struct {
	Filter *filter.Filter

	CheckAddr33 bool
	CheckAddr65 bool

	Threads int
	Quiet   bool

	outMu  sync.Mutex
	out    io.Writer
	Counts *coord.Counters
}

// NewContext builds a Context; out may be nil to disable the found-log
// sink (found lines still go to stdout unless Quiet is set).
func NewContext(f *filter.Filter, threads int, out io.Writer) *Context {
	return &Context{
		Filter:  f,
		Threads: threads,
		out:     out,
		Counts:  coord.NewCounters(),
	}
}

// CheckPoint hashes an affine point under the configured encodings and
// reports+records any filter hit. pk is the originating scalar.
func (c *Context) CheckPoint(p *ecsweep.Pe, pk *ecsweep.Fe) bool {
	found := false

	if c.CheckAddr33 {
		h := ecsweep.Addr33(p)
		if c.Filter.Membership(h) {
			c.writeFound("addr33", h, pk)
			found = true
		}
	}

	if c.CheckAddr65 {
		h := ecsweep.Addr65(p)
		if c.Filter.Membership(h) {
			c.writeFound("addr65", h, pk)
			found = true
		}
	}

	return found
}

func (c *Context) writeFound(label string, h ecsweep.H160, pk *ecsweep.Fe) {
	c.outMu.Lock()
	defer c.outMu.Unlock()

	if !c.Quiet {
		fmt.Printf("%s: %08x%08x%08x%08x%08x <- %s\n", label, h[0], h[1], h[2], h[3], h[4], pk.Hex())
	}
	if c.out != nil {
		fmt.Fprintf(c.out, "%s\t%08x%08x%08x%08x%08x\t%s\n", label, h[0], h[1], h[2], h[3], h[4], pk.Hex())
	}
}

// PrintStatus logs the current throughput to stderr.
func (c *Context) PrintStatus() {
	checked, found, elapsed := c.Counts.Snapshot()
	rate := c.Counts.Rate() / 1_000_000
	log.Printf("%.2fs ~ %.2fM it/s ~ %d / %d", elapsed.Seconds(), rate, found, checked)
}
