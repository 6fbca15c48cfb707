package buddy

import "testing"

func TestRequiredOrder(t *testing.T) {
	// without clamping.
	testcases := [][2]int64{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4},
		{1024, 10}, {1025, 11}, {60 * 1024, 16}, {64 * 1024, 16},
		{(64 * 1024) + 1, 17}, {1 << 20, 20}, {(1 << 20) + 1, 21},
	}
	for _, tc := range testcases {
		if x := requiredOrder(tc[0], 0); x != tc[1] {
			t.Errorf("requiredOrder(%v) expected %v, got %v", tc[0], tc[1], x)
		}
	}
	// clamped to minorder.
	for _, size := range []int64{1, 100, 4095, 4096} {
		if x := requiredOrder(size, 12); x != 12 {
			t.Errorf("requiredOrder(%v) expected %v, got %v", size, 12, x)
		}
	}
	if x := requiredOrder(4097, 12); x != 13 {
		t.Errorf("expected %v, got %v", 13, x)
	}
}

func TestBuddyoffset(t *testing.T) {
	testcases := [][3]int64{
		{0, 12, 4096},
		{4096, 12, 0},
		{0, 19, 1 << 19},
		{1 << 19, 19, 0},
		{3 << 16, 16, 2 << 16},
		{2 << 16, 16, 3 << 16},
		{12 << 12, 12, 13 << 12},
	}
	for _, tc := range testcases {
		if x := buddyoffset(tc[0], tc[1]); x != tc[2] {
			t.Errorf("buddyoffset(%v,%v) expected %v, got %v", tc[0], tc[1], tc[2], x)
		}
	}
	// buddy relation is an involution.
	for order := int64(12); order <= 19; order++ {
		offset := int64(5) << 19
		if x := buddyoffset(buddyoffset(offset, order), order); x != offset {
			t.Errorf("expected %v, got %v", offset, x)
		}
	}
}
