package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/g-m-twostay/bintrees/Trees"
	"github.com/google/btree"
	"github.com/ledgerwatch/log/v3"
	"github.com/panjf2000/ants/v2"
	"github.com/petar/GoLLRB/llrb"
	"github.com/urfave/cli/v2"
)

var (
	nFlag         = &cli.IntFlag{Name: "n", Value: 100000, Usage: "number of values per tree"}
	seedFlag      = &cli.Int64Flag{Name: "seed", Value: 0, Usage: "random seed"}
	roundsFlag    = &cli.IntFlag{Name: "rounds", Value: 10, Usage: "number of benchmark rounds or verified trees"}
	workersFlag   = &cli.IntFlag{Name: "workers", Value: 4, Usage: "size of the verify worker pool"}
	verbosityFlag = &cli.IntFlag{Name: "verbosity", Value: int(log.LvlInfo), Usage: "log level, 0 crit to 5 trace"}
	heapFlag      = &cli.BoolFlag{Name: "heap", Usage: "render a max heap instead of an AVL tree"}
)

// insert all then remove all; the result is in ms/op.
type workload func(all []int) func(b *testing.B)

var rivals = []struct {
	name string
	run  workload
}{
	{"avl", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				tree := Trees.MakeAVL()
				for _, v := range all {
					tree.Insert(v)
				}
				for _, v := range all {
					tree.Remove(v)
				}
			}
		}
	}},
	{"bst", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				tree := Trees.MakeBST()
				for _, v := range all {
					tree.Insert(v)
				}
				for _, v := range all {
					tree.Remove(v)
				}
			}
		}
	}},
	{"heap", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				h := Trees.MakeMaxHeap()
				for _, v := range all {
					h.Push(v)
				}
				for !h.Empty() {
					h.Pop()
				}
			}
		}
	}},
	{"gods", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				tree := avltree.NewWithIntComparator()
				for _, v := range all {
					tree.Put(v, nil)
				}
				for _, v := range all {
					tree.Remove(v)
				}
			}
		}
	}},
	{"btree", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				tree := btree.NewOrderedG[int](32)
				for _, v := range all {
					tree.ReplaceOrInsert(v)
				}
				for _, v := range all {
					tree.Delete(v)
				}
			}
		}
	}},
	{"llrb", func(all []int) func(b *testing.B) {
		return func(b *testing.B) {
			for range b.N {
				tree := llrb.New()
				for _, v := range all {
					tree.ReplaceOrInsert(llrb.Int(v))
				}
				for _, v := range all {
					tree.Delete(llrb.Int(v))
				}
			}
		}
	}},
}

func stats(cs []float64) (avg, stddev float64) {
	if len(cs) == 0 {
		return 0, 0
	}
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		a := v - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(cs)))
}

func bench(c *cli.Context) error {
	n, rounds := c.Int(nFlag.Name), c.Int(roundsFlag.Name)
	r := rand.New(rand.NewSource(c.Int64(seedFlag.Name)))
	all := make([]int, n)
	for _, rv := range rivals {
		cs := make([]float64, 0, rounds)
		for i := range rounds {
			for j := range all {
				all[j] = r.Int()
			}
			br := testing.Benchmark(rv.run(all))
			if br.N == 0 {
				return fmt.Errorf("benchmark %s failed in round %d", rv.name, i)
			}
			cs = append(cs, float64(br.NsPerOp())/1e6)
			log.Debug("round", "tree", rv.name, "i", i, "N", br.N, "ms/op", cs[i])
		}
		avg, stddev := stats(cs)
		log.Info("benchmark", "tree", rv.name, "n", n, "average ms/op", avg, "stddev", stddev)
	}
	return nil
}

// checks one randomly built tree of each kind against a map, returns the kinds that failed.
func check(n int, seed int64) (failed []string) {
	r := rand.New(rand.NewSource(seed))
	avl, bst, h := Trees.MakeAVL(), Trees.MakeBST(), Trees.MakeMaxHeap()
	content := make(map[int]struct{}, n)
	for range n {
		a := r.Intn(n * 2)
		avl.Insert(a)
		bst.Insert(a)
		h.Push(a)
		content[a] = struct{}{}
	}
	for range n / 2 {
		a := r.Intn(n * 2)
		avl.Remove(a)
		bst.Remove(a)
		h.Pop()
		delete(content, a)
	}
	for _, tree := range []struct {
		name string
		Trees.Tree
	}{{"avl", avl}, {"bst", bst}} {
		bad := tree.Corrupt() || tree.Size() != uint(len(content))
		for k := range content {
			bad = bad || !tree.Has(k)
		}
		if bad {
			failed = append(failed, tree.name)
		}
	}
	if h.Corrupt() || h.Size() != uint(n-n/2) {
		failed = append(failed, "heap")
	}
	return
}

type job struct {
	seed int64
	wg   *sync.WaitGroup
	bad  *atomic.Int32
}

func verify(n, rounds, workers int, seed int64) (int32, error) {
	pool, err := ants.NewPoolWithFunc(workers, func(i interface{}) {
		j := i.(job)
		defer j.wg.Done()
		if failed := check(n, j.seed); len(failed) > 0 {
			j.bad.Add(1)
			log.Error("corrupt trees", "seed", j.seed, "kinds", failed)
		} else {
			log.Trace("verified", "seed", j.seed)
		}
	})
	if err != nil {
		return 0, err
	}
	defer pool.Release()
	var wg sync.WaitGroup
	var bad atomic.Int32
	for i := range rounds {
		wg.Add(1)
		if err = pool.Invoke(job{seed + int64(i), &wg, &bad}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()
	return bad.Load(), err
}

func verifyAction(c *cli.Context) error {
	n, rounds := c.Int(nFlag.Name), c.Int(roundsFlag.Name)
	bad, err := verify(n, rounds, c.Int(workersFlag.Name), c.Int64(seedFlag.Name))
	if err != nil {
		return err
	}
	log.Info("verify done", "trees", rounds, "n", n, "failed", bad)
	if bad > 0 {
		return fmt.Errorf("%d of %d rounds built corrupt trees", bad, rounds)
	}
	return nil
}

func render(c *cli.Context) error {
	r := rand.New(rand.NewSource(c.Int64(seedFlag.Name)))
	sli := r.Perm(c.Int(nFlag.Name))
	var root *Trees.Node
	if c.Bool(heapFlag.Name) {
		root = Trees.ArrayToHeap(sli)
	} else {
		root = Trees.ArrayToAVL(sli)
	}
	_, err := fmt.Fprintln(c.App.Writer, Trees.Dot(root).String())
	return err
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "measure",
		Usage: "benchmark, verify, and render the binary trees",
		Flags: []cli.Flag{nFlag, seedFlag, roundsFlag, workersFlag, verbosityFlag},
		Before: func(c *cli.Context) error {
			lvl := log.Lvl(c.Int(verbosityFlag.Name))
			log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(c.App.ErrWriter, log.TerminalFormat())))
			return nil
		},
		Commands: []*cli.Command{
			{Name: "bench", Usage: "time insert and remove against other tree libraries", Action: bench},
			{Name: "verify", Usage: "build random trees in parallel and check their invariants", Action: verifyAction},
			{Name: "dot", Usage: "print a random tree as graphviz", Flags: []cli.Flag{heapFlag}, Action: render},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Crit("measure failed", "err", err)
		os.Exit(1)
	}
}
