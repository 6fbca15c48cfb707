// Package buddy supplies a binary buddy memory allocator over a
// single fixed capacity arena, with a limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe.
//   - Block sizes are powers of two between 2^minorder and
//     2^maxorder bytes; allocation requests round up to the nearest
//     block size.
//   - Freeing a block merges it with its buddy neighbour while the
//     neighbour is also free, bounding fragmentation.
//   - The whole arena is reserved from the Go heap up front and is
//     given back only when the arena is Released.
//
// Book keeping is one page descriptor per 2^minorder bytes of arena
// and one free-list per order. Only the descriptor at the head of a
// block carries the block's order; interior descriptors are inert.
// Allocation and free cost O(log n) in the arena capacity.
package buddy
