package engine

import (
	"bufio"
	"io"

	"ecsweep.dev"
	"ecsweep.dev/coord"
)

// MulJobSize caps how many lines are batched into one queued job, the
// same grouping width the sweep engine uses for its inversion batch.
const MulJobSize = GroupInvSize

// MaxLineSize bounds a single input line; longer lines are truncated
// before hashing.
const MaxLineSize = 128

// mulJob is one producer-to-worker unit of work: up to MulJobSize
// input lines, not yet parsed.
type mulJob struct {
	lines []string
}

// MulEngine consumes a stream of lines (hex-encoded private keys, or
// in RawText mode arbitrary text whose SHA-256 digest becomes the
// scalar), computes each corresponding public point via a fixed-base
// generator table, and checks it against the filter.
type MulEngine struct {
	Ctx     *Context
	GTable  *ecsweep.GTable
	RawText bool
	Input   io.Reader
}

// NewMulEngine builds a MulEngine. gt must be a table for the
// secp256k1 base point G1.
func NewMulEngine(ctx *Context, gt *ecsweep.GTable, rawText bool, input io.Reader) *MulEngine {
	return &MulEngine{Ctx: ctx, GTable: gt, RawText: rawText, Input: input}
}

// Run starts the producer (reading Input and splitting it into jobs)
// and the configured number of worker goroutines, and blocks until
// the input is exhausted and every job has been processed.
func (e *MulEngine) Run() {
	queue := coord.NewQueue[mulJob](e.Ctx.Threads * 2)

	go func() {
		defer queue.Done()
		e.produce(queue)
	}()

	pool := coord.NewPool(e.Ctx.Threads)
	pool.Run(func(workerID int) {
		for {
			job, ok := queue.Get()
			if !ok {
				return
			}
			e.runJob(job)
		}
	})

	e.Ctx.PrintStatus()
}

// produce reads lines from Input, grouping up to MulJobSize non-empty
// lines (truncated to MaxLineSize) into each queued job.
func (e *MulEngine) produce(queue *coord.Queue[mulJob]) {
	scanner := bufio.NewScanner(e.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if len(line) > MaxLineSize {
			line = line[:MaxLineSize]
		}

		lines = append(lines, line)
		if len(lines) == MulJobSize {
			queue.Put(mulJob{lines: lines})
			lines = nil
		}
	}

	if len(lines) > 0 {
		queue.Put(mulJob{lines: lines})
	}
}

// runJob parses every line in the job into a scalar, multiplies each
// by the fixed base in batch, reduces the resulting points with a
// single shared modular inversion, and checks every point against the
// filter.
func (e *MulEngine) runJob(job mulJob) {
	n := len(job.lines)
	pk := make([]ecsweep.Fe, n)
	cp := make([]ecsweep.Pe, n)

	for i, line := range job.lines {
		if !e.RawText {
			pk[i].FromHex(line)
		} else {
			pk[i] = scalarFromText(line)
		}
	}

	for i := 0; i < n; i++ {
		e.GTable.Mul(&cp[i], &pk[i])
	}
	ecsweep.JacobiGrpRdc(cp)

	var found uint64
	for i := 0; i < n; i++ {
		if e.Ctx.CheckPoint(&cp[i], &pk[i]) {
			found++
		}
	}

	e.Ctx.Counts.AddChecked(uint64(n))
	e.Ctx.Counts.AddFound(found)
	e.Ctx.PrintStatus()
}

// scalarFromText hashes the raw bytes of line with SHA-256 and packs
// the eight big-endian 32-bit digest words into the four 64-bit limbs
// of a scalar, pairing words (6,7), (4,5), (2,3), (0,1) into limbs
// (0,1,2,3) respectively, matching the reference tool's byte layout.
func scalarFromText(line string) ecsweep.Fe {
	digest := ecsweep.Sum256([]byte(line))

	var res [8]uint32
	for i := 0; i < 8; i++ {
		res[i] = uint32(digest[i*4])<<24 | uint32(digest[i*4+1])<<16 | uint32(digest[i*4+2])<<8 | uint32(digest[i*4+3])
	}

	var pk ecsweep.Fe
	pk[0] = uint64(res[6])<<32 | uint64(res[7])
	pk[1] = uint64(res[4])<<32 | uint64(res[5])
	pk[2] = uint64(res[2])<<32 | uint64(res[3])
	pk[3] = uint64(res[0])<<32 | uint64(res[1])
	return pk
}
