package buddy

import "github.com/mnavickas/EECS678-BuddyAllocator/lib"

// page states. Only head pages carry a meaningful order.
const (
	pgInert     byte = iota // interior page of a larger block
	pgFreehead              // head page of a free block
	pgAllochead             // head page of a live allocation
)

// page descriptor, one per 2^minorder bytes of arena.
type page struct {
	node   lib.Node // free-list linkage, node.Index is the page index
	index  int64
	offset int64 // from arena base
	order  int64 // meaningful only when state != pgInert
	state  byte
}

// newpages build the page table for an arena of npages pages.
func newpages(npages, pagesize int64) []page {
	pages := make([]page, npages)
	initpages(pages, pagesize)
	return pages
}

// initpages reset every descriptor to inert with computed offsets.
func initpages(pages []page, pagesize int64) {
	for i := range pages {
		pg := &pages[i]
		pg.node = lib.Node{Index: int64(i)}
		pg.index = int64(i)
		pg.offset = int64(i) * pagesize
		pg.order, pg.state = 0, pgInert
	}
}
