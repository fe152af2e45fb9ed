// Command ecsweep searches the secp256k1 keyspace for private keys
// whose derived Bitcoin address hash matches a target filter, using
// one of three candidate-generation modes: a contiguous range sweep
// (add), a scalar-list consumer (mul), or a randomized sub-range
// sweep (rnd). It also provides filter-building and benchmarking
// subcommands.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ecsweep.dev"
	"ecsweep.dev/engine"
	"ecsweep.dev/filter"
)

const gtableWidth = 14

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		runAdd(os.Args[2:])
	case "mul":
		runMul(os.Args[2:])
	case "rnd":
		runRnd(os.Args[2:])
	case "blf-gen":
		runBlfGen(os.Args[2:])
	case "bench":
		runBench()
	case "bench-gtable":
		runBenchGTable()
	case "mult-verify":
		runMultVerify()
	case "-v", "--version", "version":
		fmt.Println("ecsweep v0.1.0")
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: ecsweep <cmd> [options]")
	fmt.Println()
	fmt.Println("compute commands:")
	fmt.Println("  add          search a contiguous range with batch addition")
	fmt.Println("  mul          search hex-encoded private keys (from stdin)")
	fmt.Println("  rnd          search random sub-ranges of bits in a given range")
	fmt.Println()
	fmt.Println("compute options:")
	fmt.Println("  -f <file>    filter file (bloom .blf, or newline-separated hex hash160)")
	fmt.Println("  -o <file>    output file for found keys (default: stdout)")
	fmt.Println("  -t <n>       worker threads (default: NumCPU)")
	fmt.Println("  -a <c|u>     address encoding(s) to check (default: c)")
	fmt.Println("  -r <a:b>     search range in hex, add/rnd only (default: full range)")
	fmt.Println("  -d <o:s>     bit offset:size window, add/rnd only (default: 0:32)")
	fmt.Println("  -endo        also check the 6 GLV-endomorphism companions per point")
	fmt.Println("  -raw         mul only: hash each input line instead of parsing hex")
	fmt.Println("  -seed <s>    rnd only: seed the draw for a reproducible run")
	fmt.Println("  -q           quiet (suppress stdout; -o required)")
	fmt.Println()
	fmt.Println("other commands:")
	fmt.Println("  blf-gen -f <in> -o <out.blf>   build a bloom filter from hex hash160 lines")
	fmt.Println("  bench                          run internal microbenchmarks")
	fmt.Println("  bench-gtable                   benchmark fixed-base tables at varying widths")
	fmt.Println("  mult-verify                     cross-check gtable multiply against double-and-add")
}

// commonFlags holds the options shared across add/mul/rnd.
type commonFlags struct {
	filterPath string
	outPath    string
	threads    int
	addrs      string
	endo       bool
	quiet      bool
}

func bindCommon(fs *flag.FlagSet, c *commonFlags) {
	fs.StringVar(&c.filterPath, "f", "", "filter file")
	fs.StringVar(&c.outPath, "o", "", "output file")
	fs.IntVar(&c.threads, "t", runtime.NumCPU(), "worker threads")
	fs.StringVar(&c.addrs, "a", "c", "address encodings to check: c, u, or cu")
	fs.BoolVar(&c.endo, "endo", false, "also check GLV-endomorphism companions")
	fs.BoolVar(&c.quiet, "q", false, "quiet mode")
}

func buildContext(c *commonFlags) *engine.Context {
	if c.filterPath == "" {
		log.Fatal("missing filter file, pass -f")
	}
	f, err := loadFilter(c.filterPath)
	if err != nil {
		log.Fatalf("failed to load filter: %s", err)
	}

	var out *os.File
	if c.outPath != "" {
		out, err = os.OpenFile(c.outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("failed to open output file: %s", err)
		}
	}
	if out == nil && c.quiet {
		log.Fatal("quiet mode chosen without an output file")
	}

	ctx := engine.NewContext(f, c.threads, out)
	ctx.Quiet = c.quiet
	ctx.CheckAddr33 = strings.Contains(c.addrs, "c")
	ctx.CheckAddr65 = strings.Contains(c.addrs, "u")
	if !ctx.CheckAddr33 && !ctx.CheckAddr65 {
		ctx.CheckAddr33 = true
	}

	log.Printf("threads: %d ~ addr33: %v ~ addr65: %v", c.threads, ctx.CheckAddr33, ctx.CheckAddr65)
	return ctx
}

// loadFilter loads path as a persisted bloom filter (.blf extension) or
// as a newline-separated list of hex-encoded hash160 values.
func loadFilter(path string) (*filter.Filter, error) {
	if strings.HasSuffix(path, ".blf") {
		b, err := filter.LoadBloom(path)
		if err != nil {
			return nil, err
		}
		return filter.NewBloomFilter(b), nil
	}

	l, err := filter.LoadHashListHex(path)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d target hashes from %s", l.Len(), path)
	return filter.NewListFilter(l), nil
}

// parseRange parses a "start:end" hex range, defaulting to
// [GroupInvSize, P) when raw is empty, and clamping to that span.
func parseRange(raw string) (start, end ecsweep.Fe) {
	if raw == "" {
		start.SetU64(engine.GroupInvSize)
		end = ecsweep.FeP
		return start, end
	}

	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		log.Fatal("invalid search range, use format: -r 8000:ffff")
	}

	start.FromHex(parts[0])
	end.FromHex(parts[1])

	if start.Cmp64(engine.GroupInvSize) < 0 {
		start.SetU64(engine.GroupInvSize)
	}
	if end.Cmp(&ecsweep.FeP) > 0 {
		end = ecsweep.FeP
	}
	if start.Cmp(&end) >= 0 {
		log.Fatal("invalid search range, start >= end")
	}
	return start, end
}

// parseOffsSize parses an "offset:size" bit window, defaulting to
// 0:32 when raw is empty.
func parseOffsSize(raw string) (offs, size uint) {
	if raw == "" {
		return 0, 32
	}

	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		log.Fatal("invalid offset:size format, use format: -d 128:32")
	}

	o, err1 := strconv.Atoi(parts[0])
	s, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || o > 255 {
		log.Fatal("invalid offset, max is 255")
	}
	if s < 20 || s > 64 {
		log.Fatal("invalid size, must be between 20 and 64")
	}
	return uint(o), uint(s)
}

func runAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	var c commonFlags
	bindCommon(fs, &c)
	rangeArg := fs.String("r", "", "search range in hex, e.g. 8000:ffff")
	offsArg := fs.String("d", "", "bit offset:size window; offset sets the stride 2^offset (default: 0:32)")
	fs.Parse(args)

	ctx := buildContext(&c)
	start, end := parseRange(*rangeArg)
	offs, _ := parseOffsSize(*offsArg)
	log.Printf("range_s: %s", start.Hex())
	log.Printf("range_e: %s", end.Hex())

	e := engine.NewSweepEngine(ctx, start, end, offs, c.endo)
	e.Run()
}

func runMul(args []string) {
	fs := flag.NewFlagSet("mul", flag.ExitOnError)
	var c commonFlags
	bindCommon(fs, &c)
	raw := fs.Bool("raw", false, "hash each input line instead of parsing hex")
	fs.Parse(args)

	ctx := buildContext(&c)
	gt := ecsweep.NewGTable(&ecsweep.G1, gtableWidth)

	e := engine.NewMulEngine(ctx, gt, *raw, os.Stdin)
	e.Run()
}

func runRnd(args []string) {
	fs := flag.NewFlagSet("rnd", flag.ExitOnError)
	var c commonFlags
	bindCommon(fs, &c)
	rangeArg := fs.String("r", "", "parent range in hex, e.g. 8000:ffff")
	offsArg := fs.String("d", "", "bit offset:size window, e.g. 128:32")
	seed := fs.String("seed", "", "seed for a reproducible draw (default: crypto-random)")
	fs.Parse(args)

	ctx := buildContext(&c)
	start, end := parseRange(*rangeArg)
	offs, size := parseOffsSize(*offsArg)
	log.Printf("[random mode] offs: %d ~ bits: %d", offs, size)

	e := engine.NewRndEngine(ctx, start, end, offs, size, c.endo)
	if *seed != "" {
		e.Rand = rand.New(rand.NewSource(int64(encodeSeed(*seed))))
	}
	e.OnRange = func(subStart, subEnd ecsweep.Fe) {
		log.Printf("range_s: %s", subStart.Hex())
		log.Printf("range_e: %s", subEnd.Hex())
	}
	e.Run()
}

// encodeSeed folds an arbitrary string into a 32-bit seed, the same
// rolling-hash shape the reference tool uses for its "-seed" flag.
func encodeSeed(s string) uint32 {
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash = hash<<5 - hash + uint32(s[i])
	}
	return hash
}

func runBlfGen(args []string) {
	fs := flag.NewFlagSet("blf-gen", flag.ExitOnError)
	inPath := fs.String("f", "", "input file, one hex hash160 per line")
	outPath := fs.String("o", "", "output .blf file")
	fpRate := fs.Uint64("r", 1_000_000_000, "target 1-in-r false positive rate")
	fs.Parse(args)

	if *inPath == "" || *outPath == "" {
		log.Fatal("blf-gen requires -f <input> and -o <output.blf>")
	}

	l, err := filter.LoadHashListHex(*inPath)
	if err != nil {
		log.Fatalf("failed to read input: %s", err)
	}

	size := filter.EstimateBloomSize(uint64(l.Len()), *fpRate)
	b := filter.NewBloom(size)
	if err := insertAllHex(*inPath, b); err != nil {
		log.Fatalf("failed to read input: %s", err)
	}

	if err := b.Save(*outPath); err != nil {
		log.Fatalf("failed to write filter: %s", err)
	}
	log.Printf("wrote %s: %d hashes, %d words (%.2f MiB)", *outPath, l.Len(), size, float64(size*8)/(1024*1024))
}

// insertAllHex re-reads path (a newline-separated hex hash160 list)
// and inserts every well-formed line into b, duplicates included.
func insertAllHex(path string, b *filter.Bloom) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if len(line) != 40 {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			continue
		}
		var h ecsweep.H160
		for i := 0; i < 5; i++ {
			h[i] = uint32(raw[i*4])<<24 | uint32(raw[i*4+1])<<16 | uint32(raw[i*4+2])<<8 | uint32(raw[i*4+3])
		}
		b.Insert(h)
	}
	return sc.Err()
}

func runBench() {
	fmt.Println("microbenchmarks:")
	benchPointOps()
	benchMul()
	benchHash()
}

func benchPointOps() {
	const iters = 1_000_000 * 3
	g := ecsweep.G2

	start := time.Now()
	for i := 0; i < iters; i++ {
		ecsweep.JacobiAdd(&g, &g, &ecsweep.G1)
	}
	printRate("JacobiAdd", start, iters)

	g = ecsweep.G2
	start = time.Now()
	for i := 0; i < iters; i++ {
		ecsweep.JacobiDbl(&g, &g)
	}
	printRate("JacobiDbl", start, iters)
}

func benchMul() {
	const iters = 2000
	var pk ecsweep.Fe
	g := ecsweep.G2

	start := time.Now()
	for i := 0; i < iters; i++ {
		pk.SetU64(uint64(i + 2))
		ecsweep.JacobiMul(&g, &ecsweep.G1, &pk)
	}
	printRate("JacobiMul", start, iters)

	gt := ecsweep.NewGTable(&ecsweep.G1, gtableWidth)
	start = time.Now()
	for i := 0; i < iters*100; i++ {
		pk.SetU64(uint64(i + 2))
		gt.Mul(&g, &pk)
	}
	printRate("GTable.Mul", start, iters*100)
}

func benchHash() {
	const iters = 1_000_000 * 2
	g := ecsweep.G1

	start := time.Now()
	for i := 0; i < iters; i++ {
		ecsweep.Addr33(&g)
	}
	printRate("Addr33", start, iters)

	start = time.Now()
	for i := 0; i < iters; i++ {
		ecsweep.Addr65(&g)
	}
	printRate("Addr65", start, iters)
}

func printRate(label string, start time.Time, iters int) {
	dt := time.Since(start).Seconds()
	if dt <= 0 {
		dt = 1e-9
	}
	fmt.Printf("%16s: %.2fM it/s ~ %.2fs\n", label, float64(iters)/dt/1_000_000, dt)
}

func runBenchGTable() {
	var pk ecsweep.Fe
	const iters = 1000 * 500

	for w := uint64(8); w <= 20; w += 2 {
		pk.SetU64(1)

		start := time.Now()
		gt := ecsweep.NewGTable(&ecsweep.G1, w)
		genTime := time.Since(start).Seconds()

		var g ecsweep.Pe
		start = time.Now()
		for i := 0; i < iters; i++ {
			pk.SetU64(uint64(i + 2))
			gt.Mul(&g, &pk)
		}
		mulTime := time.Since(start).Seconds()

		memMiB := float64(gt.MemSize()*96) / (1024 * 1024)
		fmt.Printf("w=%02d: %.1fK it/s | gen: %5.2fs | mul: %5.2fs | mem: %8.1fMiB\n",
			w, float64(iters)/mulTime/1000, genTime, mulTime, memMiB)
	}
}

func runMultVerify() {
	gt := ecsweep.NewGTable(&ecsweep.G1, gtableWidth)

	for i := 0; i < 1000*16; i++ {
		var pk ecsweep.Fe
		pk.SetU64(uint64(i + 2))

		var r1, r2 ecsweep.Pe
		ecsweep.JacobiMulRdc(&r1, &ecsweep.G1, &pk)
		if !ecsweep.ECVerify(&r1) {
			log.Fatalf("r1 off-curve at i=%d", i)
		}

		gt.Mul(&r2, &pk)
		ecsweep.JacobiRdc(&r2, &r2)
		if !ecsweep.ECVerify(&r2) {
			log.Fatalf("r2 off-curve at i=%d", i)
		}

		if r1.X != r2.X || r1.Y != r2.Y {
			log.Fatalf("mismatch at i=%d\n  pk: %s\n  r1: %s\n  r2: %s", i, pk.Hex(), r1.X.Hex(), r2.X.Hex())
		}
	}

	fmt.Println("mult-verify: ok")
}
