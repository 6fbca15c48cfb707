package buddy

import "io"
import "fmt"
import "strings"

import "github.com/mnavickas/EECS678-BuddyAllocator/lib"
import hm "github.com/dustin/go-humanize"

// Freecounts implement api.Mallocer{} interface. Number of free
// blocks at each order, indexed 0 through maxorder; orders below
// minorder are always zero.
func (arena *Arena) Freecounts() []int64 {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	counts := make([]int64, arena.maxorder+1)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		counts[k] = arena.freelists[k].Count()
	}
	return counts
}

// Dump write per-order free block counts to w as one "count:size"
// field per order, smallest order first.
func (arena *Arena) Dump(w io.Writer) {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	fields := make([]string, 0, arena.maxorder-arena.minorder+1)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		count := int64(0)
		arena.freelists[k].Each(func(n *lib.Node) bool {
			count++
			return true
		})
		// IBytes renders "4.0 KiB", drop the space so every
		// per-order entry stays one whitespace delimited field.
		size := strings.ReplaceAll(hm.IBytes(uint64(int64(1)<<uint64(k))), " ", "")
		fields = append(fields, fmt.Sprintf("%v:%v", count, size))
	}
	fmt.Fprintln(w, strings.Join(fields, " "))
}
