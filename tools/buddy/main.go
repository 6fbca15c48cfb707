package main

import "os"
import "fmt"
import "flag"
import "unsafe"
import "math/rand"

import s "github.com/bnclabs/gosettings"
import hm "github.com/dustin/go-humanize"

import "github.com/mnavickas/EECS678-BuddyAllocator/api"
import "github.com/mnavickas/EECS678-BuddyAllocator/buddy"

var options struct {
	minorder  int
	maxorder  int
	n         int
	seed      int
	dumpevery int
}

func argParse() {
	flag.IntVar(&options.minorder, "minorder", 12,
		"page size exponent, pages are 2^minorder bytes")
	flag.IntVar(&options.maxorder, "maxorder", 20,
		"arena size exponent, capacity is 2^maxorder bytes")
	flag.IntVar(&options.n, "n", 10000,
		"number of operations to run")
	flag.IntVar(&options.seed, "seed", 42,
		"seed for the random workload")
	flag.IntVar(&options.dumpevery, "dumpevery", 1000,
		"dump free counts every so many operations, 0 to disable")
	flag.Parse()
}

func main() {
	argParse()
	buddy.LogComponents("all")
	setts := s.Settings{
		"minorder": int64(options.minorder),
		"maxorder": int64(options.maxorder),
	}
	arena := buddy.NewArena("tools", setts)
	var mallocer api.Mallocer = arena

	rnd := rand.New(rand.NewSource(int64(options.seed)))
	maxsize := int64(1) << uint64(options.maxorder-2)
	live := make([]unsafe.Pointer, 0, 128)
	allocs, frees, ooms := 0, 0, 0
	for i := 0; i < options.n; i++ {
		if len(live) > 0 && rnd.Intn(2) == 0 {
			j := rnd.Intn(len(live))
			if err := mallocer.Free(live[j]); err != nil {
				fmt.Printf("free: %v\n", err)
				os.Exit(1)
			}
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
			frees++

		} else {
			size := rnd.Int63n(maxsize) + 1
			ptr, err := mallocer.Alloc(size)
			if err == buddy.ErrorOutofMemory {
				ooms++
				continue
			} else if err != nil {
				fmt.Printf("alloc %v: %v\n", size, err)
				os.Exit(1)
			}
			live = append(live, ptr)
			allocs++
		}
		if options.dumpevery > 0 && (i%options.dumpevery) == 0 {
			arena.Dump(os.Stdout)
		}
	}
	for _, ptr := range live {
		if err := mallocer.Free(ptr); err != nil {
			fmt.Printf("free: %v\n", err)
			os.Exit(1)
		}
	}
	arena.Validate()
	arena.Dump(os.Stdout)

	capacity, _, _, overhead := mallocer.Info()
	fmt.Printf("capacity %v, overhead %v bytes\n",
		hm.IBytes(uint64(capacity)), hm.Comma(overhead))
	fmt.Printf("allocs %v, frees %v, ooms %v\n", allocs, frees, ooms)
	arena.Log(true /*humanize*/)
	arena.Release()
}
