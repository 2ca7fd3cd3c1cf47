// Command example demonstrates the chained hash table: a short walkthrough
// of the basic operations followed by a timing loop over the whole API.
//
// The timing loop is configurable through the environment:
//
//	CHAINHASH_OPS       number of keys to exercise (default 10000)
//	CHAINHASH_CAPACITY  initial bucket count (default 16)
package main

import (
	"fmt"
	"time"

	"github.com/xyproto/env/v2"

	"github.com/akozadaev/chaining-hash/chaining"
)

func main() {
	demonstrate()

	ops := env.Int("CHAINHASH_OPS", 10000)
	capacity := env.Int("CHAINHASH_CAPACITY", 16)
	benchmark(ops, capacity)
}

func demonstrate() {
	fmt.Println("Basic operations")

	ht := chaining.New[int, string](chaining.IntKey, 8, 0.75)
	for i := 0; i < 20; i++ {
		ht.Set(i, fmt.Sprintf("value_%d", i))
	}
	fmt.Printf("inserted 20 keys, load factor %.4f, capacity %d\n", ht.LoadFactor(), ht.Cap())

	if v, ok := ht.Get(5); ok {
		fmt.Printf("search 5: %s\n", v)
	}
	if _, ok := ht.Get(100); !ok {
		fmt.Println("search 100: not found")
	}

	fmt.Printf("delete 5: %v\n", ht.Delete(5))
	if _, ok := ht.Get(5); !ok {
		fmt.Println("search 5 after delete: not found")
	}
	fmt.Println(ht)
}

func benchmark(ops, capacity int) {
	fmt.Printf("\nTiming %d operations (initial capacity %d)\n", ops, capacity)

	ht := chaining.New[int, string](chaining.IntKey, capacity, 0.75)

	start := time.Now()
	for i := 0; i < ops; i++ {
		ht.Set(i, fmt.Sprintf("value_%d", i))
	}
	report("insert", ops, time.Since(start))
	printStats(ht.Stats())

	start = time.Now()
	for i := 0; i < ops; i++ {
		if _, ok := ht.Get(i); !ok {
			fmt.Printf("key %d unexpectedly missing\n", i)
			return
		}
	}
	report("search (hit)", ops, time.Since(start))

	start = time.Now()
	for i := ops; i < 2*ops; i++ {
		if _, ok := ht.Get(i); ok {
			fmt.Printf("key %d unexpectedly present\n", i)
			return
		}
	}
	report("search (miss)", ops, time.Since(start))

	start = time.Now()
	for i := 0; i < ops; i += 2 {
		ht.Delete(i)
	}
	report("delete", ops/2, time.Since(start))
	printStats(ht.Stats())
}

func report(op string, n int, elapsed time.Duration) {
	fmt.Printf("%-14s %8d ops in %10v (%.3f µs/op)\n",
		op, n, elapsed, float64(elapsed.Microseconds())/float64(n))
}

func printStats(s chaining.Statistics) {
	fmt.Printf("  size=%d capacity=%d load=%.4f collisions=%d resizes=%d\n",
		s.Size, s.Capacity, s.LoadFactor, s.Collisions, s.Resizes)
	fmt.Printf("  max chain=%d avg chain=%.4f non-empty=%d empty=%d\n",
		s.MaxChainLength, s.AvgChainLength, s.NonEmptyBuckets, s.EmptyBuckets)
}
