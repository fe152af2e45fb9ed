package engine

import (
	"sync"

	"ecsweep.dev"
	"ecsweep.dev/coord"
)

// GroupInvSize is the number of points batch_add advances per round of
// the batched modular-inversion trick.
const GroupInvSize = 1024

// MaxJobSize is the largest contiguous span of scalars a single worker
// claims from the shared range before looping back for more.
const MaxJobSize = 1024 * 1024 * 2

// SweepEngine sweeps a contiguous scalar range [RangeStart, RangeEnd)
// using batched add-stride point generation, optionally expanding each
// candidate to its 6 GLV-endomorphism companions.
type SweepEngine struct {
	Ctx *Context

	RangeStart, RangeEnd ecsweep.Fe
	Offset               uint // stride is 2^Offset
	Endo                 bool

	gs      ecsweep.Fe // stride, 2^Offset
	gpoints [GroupInvSize]ecsweep.Pe

	mu      sync.Mutex
	rangeS  ecsweep.Fe
	jobSize uint64
}

// NewSweepEngine precomputes the fixed-stride generator grid used by
// batch_add for the given offset.
func NewSweepEngine(ctx *Context, rangeStart, rangeEnd ecsweep.Fe, offset uint, endo bool) *SweepEngine {
	e := &SweepEngine{
		Ctx:        ctx,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Offset:     offset,
		Endo:       endo,
		rangeS:     rangeStart,
	}
	e.precomputeGpoints()
	return e
}

// precomputeGpoints builds gpoints[i] = (i+1)*2^Offset*G for
// i in [0, GroupInvSize), the fixed grid that batch_add steps the
// running point through.
func (e *SweepEngine) precomputeGpoints() {
	gs := ecsweep.Fe{1, 0, 0, 0}
	gs.ShiftL(e.Offset)
	e.gs = gs

	var g1, g2 ecsweep.Pe
	ecsweep.JacobiMul(&g1, &ecsweep.G1, &gs)
	ecsweep.JacobiDbl(&g2, &g1) // can't double an affine point via add, so dbl(Gi)
	ecsweep.JacobiRdc(&g1, &g1)
	ecsweep.JacobiRdc(&g2, &g2)

	e.gpoints[0] = g1
	e.gpoints[1] = g2
	for i := 2; i < GroupInvSize; i++ {
		ecsweep.JacobiAdd(&e.gpoints[i], &e.gpoints[i-1], &g1)
		ecsweep.JacobiRdc(&e.gpoints[i], &e.gpoints[i])
	}
}

// nextJob pops the next contiguous span from the shared range under
// the engine's mutex, reporting ok=false once the range is exhausted.
func (e *SweepEngine) nextJob() (pk ecsweep.Fe, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	isOverflow := e.rangeS.Cmp(&e.RangeStart) < 0
	if e.rangeS.Cmp(&e.RangeEnd) >= 0 || isOverflow {
		return ecsweep.Fe{}, false
	}

	pk = e.rangeS
	inc := e.incrementFor(e.jobSize)
	ecsweep.FeModPAdd(&e.rangeS, &e.rangeS, &inc)
	return pk, true
}

func (e *SweepEngine) incrementFor(jobSize uint64) ecsweep.Fe {
	var inc ecsweep.Fe
	inc.SetU64(jobSize)
	ecsweep.FeModPMul(&inc, &inc, &e.gs)
	return inc
}

// batchAdd advances from pk for `iterations` scalars, GroupInvSize at
// a time, using the batched add-stride trick: one modular inversion
// amortized over up to GroupInvSize candidate points per round.
func (e *SweepEngine) batchAdd(pk ecsweep.Fe, iterations uint64) uint64 {
	dxSize := iterations
	if dxSize > GroupInvSize {
		dxSize = GroupInvSize
	}

	var found uint64
	ck := pk

	var startPoint ecsweep.Pe
	ecsweep.JacobiMul(&startPoint, &ecsweep.G1, &ck)
	ecsweep.JacobiRdc(&startPoint, &startPoint)

	dx := make([]ecsweep.Fe, dxSize)
	bp := make([]ecsweep.Pe, dxSize)

	var counter uint64
	for counter < iterations {
		collide := false
		for i := uint64(0); i < dxSize; i++ {
			ecsweep.FeModPSub(&dx[i], &e.gpoints[i].X, &startPoint.X)
			if dx[i].IsZero() {
				collide = true
			}
		}

		di := make([]ecsweep.Fe, dxSize)
		copy(di, dx)
		ecsweep.FeModPGrpInv(di)

		for i := uint64(0); i < dxSize; i++ {
			var ss, rx, ry ecsweep.Fe
			ecsweep.FeModPSub(&ss, &e.gpoints[i].Y, &startPoint.Y)
			ecsweep.FeModPMul(&ss, &ss, &di[i]) // lambda = (y2-y1)/(x2-x1)

			ecsweep.FeModPSqr(&rx, &ss)
			ecsweep.FeModPSub(&rx, &rx, &startPoint.X)
			ecsweep.FeModPSub(&rx, &rx, &e.gpoints[i].X) // rx = lambda^2 - x1 - x2

			ecsweep.FeModPSub(&ry, &e.gpoints[i].X, &rx)
			ecsweep.FeModPMul(&ry, &ss, &ry)
			ecsweep.FeModPSub(&ry, &ry, &e.gpoints[i].Y) // ry = lambda*(x1-x3) - y1

			bp[i] = ecsweep.Pe{X: rx, Y: ry, Z: ecsweep.Fe{1, 0, 0, 0}}
		}

		// A grid point sharing startPoint's x coordinate makes the slope
		// above divide by zero; derive this round's points directly.
		if collide {
			k := ck
			for i := uint64(0); i < dxSize; i++ {
				ecsweep.FeModPAdd(&k, &k, &e.gs)
				ecsweep.JacobiMulRdc(&bp[i], &ecsweep.G1, &k)
			}
		}

		for i := uint64(0); i < dxSize; i++ {
			ecsweep.FeModPAdd(&ck, &ck, &e.gs)
			if e.checkCandidate(&bp[i], &ck) {
				found++
			}
		}

		startPoint = bp[dxSize-1]
		counter += dxSize
	}

	return found
}

// checkCandidate tests p (and, if Endo is set, its 6 GLV companions)
// against the filter, recovering the originating scalar for any hit.
func (e *SweepEngine) checkCandidate(p *ecsweep.Pe, pk *ecsweep.Fe) bool {
	if !e.Endo {
		return e.Ctx.CheckPoint(p, pk)
	}

	found := false
	for _, c := range ecsweep.EndoCompanions(p, pk) {
		cc := c
		if e.Ctx.CheckPoint(&cc.Point, &cc.Scalar) {
			found = true
		}
	}
	return found
}

// Run launches the configured number of worker goroutines and blocks
// until the range is exhausted.
func (e *SweepEngine) Run() {
	var size ecsweep.Fe
	ecsweep.FeModPSub(&size, &e.RangeEnd, &e.RangeStart)
	if size.Cmp64(MaxJobSize) < 0 {
		e.jobSize = size[0]
	} else {
		e.jobSize = MaxJobSize
	}

	pool := coord.NewPool(e.Ctx.Threads)
	pool.Run(func(workerID int) {
		for {
			pk, ok := e.nextJob()
			if !ok {
				return
			}

			found := e.batchAdd(pk, e.jobSize)
			e.Ctx.Counts.AddChecked(e.jobSize)
			e.Ctx.Counts.AddFound(found)
			e.Ctx.PrintStatus()
		}
	})

	e.Ctx.PrintStatus()
}
