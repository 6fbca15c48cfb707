package buddy

import "fmt"
import "unsafe"

import "github.com/mnavickas/EECS678-BuddyAllocator/api"
import "github.com/mnavickas/EECS678-BuddyAllocator/lib"
import s "github.com/bnclabs/gosettings"
import hm "github.com/dustin/go-humanize"

// Arena manage a fixed capacity memory block using binary buddy
// allocation. Every block is 2^k bytes for k between minorder and
// maxorder, aligned to its own size relative to the arena base.
type Arena struct {
	// 64-bit aligned stats
	n_allocs  int64
	n_frees   int64
	n_splits  int64
	n_merges  int64
	allocated int64

	name       string
	memory     []byte
	base       uintptr
	pages      []page
	freelists  []lib.List // indexed by order, used [minorder, maxorder]
	liveblocks []int64    // per-order count of live allocations
	h_sizes    *lib.AverageInt64

	// settings
	minorder  int64
	maxorder  int64
	capacity  int64 // 1 << maxorder
	pagesize  int64 // 1 << minorder
	logprefix string
}

//---- compile time check that Arena is a Mallocer.

var _ api.Mallocer = &Arena{}

// NewArena create a new buddy arena. Settings not supplied fall back
// to Defaultsettings(), inconsistent settings panic.
func NewArena(name string, setts s.Settings) *Arena {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	minorder, maxorder := setts.Int64("minorder"), setts.Int64("maxorder")
	validatesettings(minorder, maxorder)
	arena := &Arena{
		name:      name,
		minorder:  minorder,
		maxorder:  maxorder,
		capacity:  int64(1) << uint64(maxorder),
		pagesize:  int64(1) << uint64(minorder),
		logprefix: fmt.Sprintf("buddy [%v]", name),
	}
	arena.memory = make([]byte, arena.capacity)
	arena.base = uintptr(unsafe.Pointer(&arena.memory[0]))
	arena.pages = newpages(arena.capacity/arena.pagesize, arena.pagesize)
	arena.freelists = make([]lib.List, maxorder+1)
	arena.liveblocks = make([]int64, maxorder+1)
	arena.h_sizes = &lib.AverageInt64{}
	arena.reset()
	fmsg := "%v started with %v pages of %v ...\n"
	infof(fmsg, arena.logprefix, len(arena.pages), hm.IBytes(uint64(arena.pagesize)))
	return arena
}

//---- operations

// Alloc implement api.Mallocer{} interface. Allocate a block of at
// least size bytes, rounded up to the next power of two. Failures
// leave the arena untouched.
func (arena *Arena) Alloc(size int64) (unsafe.Pointer, error) {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	if size <= 0 {
		return nil, ErrorInvalidSize
	}
	order := requiredOrder(size, arena.minorder)
	if order > arena.maxorder {
		return nil, ErrorOutofMemory
	}
	// ascending scan for a donor block.
	donor := int64(-1)
	for k := order; k <= arena.maxorder; k++ {
		if arena.freelists[k].IsEmpty() == false {
			donor = k
			break
		}
	}
	if donor == -1 {
		return nil, ErrorOutofMemory
	}
	node := arena.freelists[donor].Head()
	arena.freelists[donor].Remove(node)
	pg := &arena.pages[node.Index]
	// halve the donor until it fits, right halves become free heads.
	for k := donor - 1; k >= order; k-- {
		right := &arena.pages[pg.index+(int64(1)<<uint64(k))/arena.pagesize]
		right.order, right.state = k, pgFreehead
		arena.freelists[k].Insert(&right.node)
		arena.n_splits++
	}
	pg.order, pg.state = order, pgAllochead
	arena.n_allocs++
	arena.allocated += int64(1) << uint64(order)
	arena.liveblocks[order]++
	arena.h_sizes.Add(size)
	return unsafe.Pointer(arena.base + uintptr(pg.offset)), nil
}

// Free implement api.Mallocer{} interface. Return a live allocation
// to the arena, merging it with its buddy repeatedly while the buddy
// is also free. Addresses that are not live allocations from this
// arena are rejected with ErrorInvalidFree, leaving the arena
// untouched.
func (arena *Arena) Free(ptr unsafe.Pointer) error {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	if ptr == nil {
		return ErrorInvalidFree
	}
	offset := int64(uintptr(ptr) - arena.base)
	if offset < 0 || offset >= arena.capacity {
		return ErrorInvalidFree
	} else if (offset % arena.pagesize) != 0 {
		return ErrorInvalidFree
	}
	pg := &arena.pages[offset/arena.pagesize]
	if pg.state != pgAllochead {
		errorf("%v invalid free at offset %v\n", arena.logprefix, offset)
		return ErrorInvalidFree
	}
	order := pg.order
	arena.allocated -= int64(1) << uint64(order)
	arena.liveblocks[order]--
	arena.n_frees++
	pg.state = pgInert
	for order < arena.maxorder {
		buddy := arena.findbuddy(offset, order)
		if buddy == nil {
			break
		}
		arena.freelists[order].Remove(&buddy.node)
		// order is meaningful only on head pages, leave it stale.
		buddy.state = pgInert
		if buddy.offset < offset {
			offset = buddy.offset
		}
		pg = &arena.pages[offset/arena.pagesize]
		order++
		arena.n_merges++
	}
	pg.order, pg.state = order, pgFreehead
	arena.freelists[order].Insert(&pg.node)
	return nil
}

// findbuddy scan free-list[order] for the buddy of the block at
// offset, return its descriptor, or nil when the buddy is not free at
// that order.
func (arena *Arena) findbuddy(offset, order int64) *page {
	boffset := buddyoffset(offset, order)
	var buddy *page
	arena.freelists[order].Each(func(n *lib.Node) bool {
		if pg := &arena.pages[n.Index]; pg.offset == boffset {
			buddy = pg
			return false
		}
		return true
	})
	return buddy
}

// Reset restore the arena to its initial state, a single free block
// of capacity bytes. Outstanding allocations are forgotten and all
// statistics cleared.
func (arena *Arena) Reset() {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	arena.reset()
}

func (arena *Arena) reset() {
	initpages(arena.pages, arena.pagesize)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		arena.freelists[k].Init()
	}
	pg := &arena.pages[0]
	pg.order, pg.state = arena.maxorder, pgFreehead
	arena.freelists[arena.maxorder].Insert(&pg.node)
	for k := range arena.liveblocks {
		arena.liveblocks[k] = 0
	}
	arena.allocated = 0
	arena.n_allocs, arena.n_frees = 0, 0
	arena.n_splits, arena.n_merges = 0, 0
	arena.h_sizes = &lib.AverageInt64{}
	debugf("%v reset to single block of %v bytes\n", arena.logprefix, arena.capacity)
}

// Release implement api.Mallocer{} interface. Drop the arena and all
// its book keeping, subsequent operations on the arena panic.
func (arena *Arena) Release() {
	infof("%v released\n", arena.logprefix)
	arena.memory, arena.pages = nil, nil
	arena.freelists, arena.liveblocks = nil, nil
	arena.base = 0
}

//---- statistics and maintenance

// Slabs implement api.Mallocer{} interface. Allocatable block sizes,
// one per order, smallest first.
func (arena *Arena) Slabs() []int64 {
	sizes := make([]int64, 0, arena.maxorder-arena.minorder+1)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		sizes = append(sizes, int64(1)<<uint64(k))
	}
	return sizes
}

// Slabsize implement api.Mallocer{} interface. Block size backing the
// live allocation at ptr.
func (arena *Arena) Slabsize(ptr unsafe.Pointer) (int64, error) {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	if ptr == nil {
		return 0, ErrorInvalidFree
	}
	offset := int64(uintptr(ptr) - arena.base)
	if offset < 0 || offset >= arena.capacity {
		return 0, ErrorInvalidFree
	} else if (offset % arena.pagesize) != 0 {
		return 0, ErrorInvalidFree
	}
	pg := &arena.pages[offset/arena.pagesize]
	if pg.state != pgAllochead {
		return 0, ErrorInvalidFree
	}
	return int64(1) << uint64(pg.order), nil
}

// Info implement api.Mallocer{} interface. capacity and heap are both
// the arena size, the whole arena is reserved up front.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*arena))
	pagesz := int64(len(arena.pages)) * int64(unsafe.Sizeof(page{}))
	listsz := int64(len(arena.freelists)) * int64(unsafe.Sizeof(lib.List{}))
	overhead = self + pagesz + listsz
	return arena.capacity, arena.capacity, arena.allocated, overhead
}

// Utilization implement api.Mallocer{} interface. For every block
// size with live allocations, the percentage of arena capacity held
// live at that size.
func (arena *Arena) Utilization() ([]int, []float64) {
	sizes, zs := make([]int, 0), make([]float64, 0)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		if live := arena.liveblocks[k] << uint64(k); live > 0 {
			sizes = append(sizes, int(int64(1)<<uint64(k)))
			zs = append(zs, (float64(live)/float64(arena.capacity))*100)
		}
	}
	return sizes, zs
}

// Stats return arena counters and requested-size statistics.
func (arena *Arena) Stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_allocs":  arena.n_allocs,
		"n_frees":   arena.n_frees,
		"n_splits":  arena.n_splits,
		"n_merges":  arena.n_merges,
		"capacity":  arena.capacity,
		"allocated": arena.allocated,
		"available": arena.capacity - arena.allocated,
	}
	for k, v := range arena.h_sizes.Stats() {
		stats["reqsizes."+k] = v
	}
	return stats
}

// Log arena statistics via the configured logger, if humanize is true
// log sizes in human readable format.
func (arena *Arena) Log(humanize bool) {
	stats := arena.Stats()
	dohumanize := func(val interface{}) interface{} {
		if humanize {
			return hm.IBytes(uint64(val.(int64)))
		}
		return val
	}
	alloc := dohumanize(stats["allocated"])
	avail := dohumanize(stats["available"])
	capac := dohumanize(stats["capacity"])
	fmsg := "%v allocated %v of %v, available %v\n"
	infof(fmsg, arena.logprefix, alloc, capac, avail)
	fmsg = "%v n_allocs %v n_frees %v n_splits %v n_merges %v\n"
	infof(fmsg, arena.logprefix,
		stats["n_allocs"], stats["n_frees"],
		stats["n_splits"], stats["n_merges"])
}

// Validate check arena invariants, panic on corruption:
//
//   - every free-list node points to a free head of that list's
//     order, aligned to its block size.
//   - no two buddies are simultaneously free at the same order.
//   - free bytes and allocated bytes add up to the arena capacity.
func (arena *Arena) Validate() {
	if arena.pages == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	freebytes := int64(0)
	for k := arena.minorder; k <= arena.maxorder; k++ {
		order := k
		arena.freelists[order].Each(func(n *lib.Node) bool {
			pg := &arena.pages[n.Index]
			if pg.state != pgFreehead || pg.order != order {
				fmsg := "%v page %v on free-list %v has state {%v,%v}"
				panicerr(fmsg, arena.logprefix, pg.index, order, pg.state, pg.order)
			}
			if (pg.offset % (int64(1) << uint64(order))) != 0 {
				fmsg := "%v free block at %v unaligned for order %v"
				panicerr(fmsg, arena.logprefix, pg.offset, order)
			}
			if order < arena.maxorder {
				if buddy := arena.findbuddy(pg.offset, order); buddy != nil {
					fmsg := "%v free buddies %v and %v at order %v"
					panicerr(fmsg, arena.logprefix, pg.offset, buddy.offset, order)
				}
			}
			freebytes += int64(1) << uint64(order)
			return true
		})
	}
	if freebytes+arena.allocated != arena.capacity {
		fmsg := "%v conservation broken: free %v allocated %v capacity %v"
		panicerr(fmsg, arena.logprefix, freebytes, arena.allocated, arena.capacity)
	}
}
