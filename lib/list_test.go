package lib

import "testing"

func TestListInit(t *testing.T) {
	l := (&List{}).Init()
	if l.IsEmpty() == false {
		t.Errorf("expected an empty list")
	} else if x := l.Count(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if l.Head() != nil {
		t.Errorf("expected nil head")
	}
}

func TestListInsert(t *testing.T) {
	l := (&List{}).Init()
	nodes := make([]Node, 10)
	for i := range nodes {
		nodes[i].Index = int64(i)
		l.Insert(&nodes[i])
	}
	if l.IsEmpty() {
		t.Errorf("expected a non-empty list")
	} else if x := l.Count(); x != 10 {
		t.Errorf("expected %v, got %v", 10, x)
	} else if x := l.Head().Index; x != 9 {
		t.Errorf("expected %v, got %v", 9, x)
	}
	// head to tail order is reverse of insertion order.
	ref, idxs := []int64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, []int64{}
	l.Each(func(n *Node) bool {
		idxs = append(idxs, n.Index)
		return true
	})
	if len(idxs) != len(ref) {
		t.Errorf("expected %v, got %v", len(ref), len(idxs))
	}
	for i, idx := range idxs {
		if idx != ref[i] {
			t.Errorf("expected %v, got %v at %v", ref[i], idx, i)
		}
	}
}

func TestListRemove(t *testing.T) {
	l := (&List{}).Init()
	nodes := make([]Node, 5)
	for i := range nodes {
		nodes[i].Index = int64(i)
		l.Insert(&nodes[i])
	}
	// remove middle, head and tail.
	l.Remove(&nodes[2])
	l.Remove(&nodes[4])
	l.Remove(&nodes[0])
	if x := l.Count(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
	ref, idxs := []int64{3, 1}, []int64{}
	l.Each(func(n *Node) bool {
		idxs = append(idxs, n.Index)
		return true
	})
	for i, idx := range idxs {
		if idx != ref[i] {
			t.Errorf("expected %v, got %v at %v", ref[i], idx, i)
		}
	}
	l.Remove(&nodes[3])
	l.Remove(&nodes[1])
	if l.IsEmpty() == false {
		t.Errorf("expected an empty list")
	} else if x := l.Count(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestListEachStop(t *testing.T) {
	l := (&List{}).Init()
	nodes := make([]Node, 10)
	for i := range nodes {
		nodes[i].Index = int64(i)
		l.Insert(&nodes[i])
	}
	visited := 0
	l.Each(func(n *Node) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected %v, got %v", 3, visited)
	}
}

func TestListReinit(t *testing.T) {
	l := (&List{}).Init()
	nodes := make([]Node, 4)
	for i := range nodes {
		nodes[i].Index = int64(i)
		l.Insert(&nodes[i])
	}
	l.Init()
	if l.IsEmpty() == false {
		t.Errorf("expected an empty list")
	} else if x := l.Count(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func BenchmarkListInsert(b *testing.B) {
	l := (&List{}).Init()
	nodes := make([]Node, b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Insert(&nodes[i])
	}
}

func BenchmarkListRemove(b *testing.B) {
	l := (&List{}).Init()
	nodes := make([]Node, b.N)
	for i := 0; i < b.N; i++ {
		l.Insert(&nodes[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Remove(&nodes[i])
	}
}
