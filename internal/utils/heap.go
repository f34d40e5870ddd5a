package utils

import "container/heap"

// Scored is an interface for items that can be ranked by score
type Scored interface {
	GetScore() float64
}

// Keyed adds a stable identity used to break score ties deterministically
type Keyed interface {
	Scored
	GetKey() string
}

// outranks reports whether a ranks above b: higher score, or equal score
// and smaller key.
func outranks[T Keyed](a, b T) bool {
	if a.GetScore() != b.GetScore() {
		return a.GetScore() > b.GetScore()
	}
	return a.GetKey() < b.GetKey()
}

// minHeap implements heap.Interface; the root is the lowest-ranked item
type minHeap[T Keyed] []T

func (h minHeap[T]) Len() int           { return len(h) }
func (h minHeap[T]) Less(i, j int) bool { return outranks(h[j], h[i]) }
func (h minHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK returns the k highest-ranked items in descending score order, score
// ties ordered by ascending key.
// Time complexity: O(n log k), space: O(k).
func TopK[T Keyed](items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}

	h := &minHeap[T]{}
	heap.Init(h)

	for _, item := range items {
		if h.Len() < k {
			heap.Push(h, item)
		} else if outranks(item, (*h)[0]) {
			heap.Pop(h)
			heap.Push(h, item)
		}
	}

	// extract in descending order
	result := make([]T, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(h).(T)
	}

	return result
}
