// Package heapsort sorts a doubly linked list of integers in place with a binary max-heap laid over list
// positions. Position `i` is reached by walking `i` nodes from the head, so the list is addressed like an
// array. Values are swapped between nodes, links never change. Every swap is reported to a StepFunc so the
// caller can show the list as the sort progresses.

package heapsort

import (
	"fmt"
	"strings"

	"github.com/nobletooth/listheap/pkg/list"
	"github.com/nobletooth/listheap/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SiftMode selects how values are sifted down the heap.
type SiftMode string

const (
	// SiftModeFull sifts over positions 2i+1 and 2i+2 until heap order is restored and always sorts.
	SiftModeFull SiftMode = "full"
	// SiftModeLegacy treats a node's next two neighbours as its children and sifts a single level. It does
	// not guarantee a sorted result; it exists to replay the classic trace of the list heap sort exercise.
	SiftModeLegacy SiftMode = "legacy"
)

// ParseSiftMode converts a case-insensitive mode name into a SiftMode.
func ParseSiftMode(name string) (SiftMode, error) {
	switch mode := SiftMode(strings.ToLower(strings.TrimSpace(name))); mode {
	case SiftModeFull, SiftModeLegacy:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown sift mode %q, want %q or %q", name, SiftModeFull, SiftModeLegacy)
	}
}

// Phase tells which part of the sort performed a swap.
type Phase string

const (
	PhaseBuild   Phase = "build"   // Turning the unordered list into heap order.
	PhaseExtract Phase = "extract" // Moving the root to the end of the active region.
	PhaseSift    Phase = "sift"    // Restoring heap order below the root after an extraction.
)

// StepFunc is called after every swap with the phase that caused it and the list in its new state.
type StepFunc func(phase Phase, l *list.LinkedList[int])

var swapsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "heapsort_swaps_total",
	Help: "The total number of value swaps performed by the heap sort.",
}, []string{"mode", "phase"})

// sorter carries the state shared by both phases of a single sort.
type sorter struct {
	list   *list.LinkedList[int]
	mode   SiftMode
	onSwap StepFunc
}

// swap exchanges the values of `a` and `b` and reports the new list state.
func (s *sorter) swap(phase Phase, a, b *list.Node[int]) {
	list.Swap(a, b)
	swapsMetric.WithLabelValues(string(s.mode), string(phase)).Inc()
	s.onSwap(phase, s.list)
}

// Sort sorts the first `size` positions of `l` in place. `size` is normally l.Len(); a larger value is a bug
// in the caller and is clamped to the list length. A nil `onSwap` is allowed.
func Sort(l *list.LinkedList[int], size int, mode SiftMode, onSwap StepFunc) {
	if size > l.Len() {
		utils.RaiseInvariant("heapsort", "size_exceeds_list", "Sort size is larger than the list.",
			"size", size, "len", l.Len())
		size = l.Len()
	}
	if size <= 0 {
		return
	}
	if onSwap == nil {
		onSwap = func(Phase, *list.LinkedList[int]) {}
	}

	s := &sorter{list: l, mode: mode, onSwap: onSwap}
	switch mode {
	case SiftModeLegacy:
		s.sortLegacy(size)
	case SiftModeFull:
		s.sortFull(size)
	default:
		utils.RaiseInvariant("heapsort", "unknown_sift_mode", "Got an unknown sift mode, using full.",
			"mode", mode)
		s.mode = SiftModeFull
		s.sortFull(size)
	}
}

// sortFull is a textbook heap sort where every position lookup walks the list from the head.
func (s *sorter) sortFull(size int) {
	for pos := size/2 - 1; pos >= 0; pos-- {
		s.siftDown(PhaseBuild, pos, size)
	}

	head, last := s.list.Front(), s.list.At(size-1)
	for heapSize := size - 1; heapSize > 0; heapSize-- {
		s.swap(PhaseExtract, head, last)
		last = last.Prev()
		s.siftDown(PhaseSift, 0, heapSize)
	}
}

// siftDown moves the value at `pos` towards the leaves until both of its children within the first
// `heapSize` positions hold smaller or equal values.
func (s *sorter) siftDown(phase Phase, pos, heapSize int) {
	for {
		root := s.list.At(pos)
		largestPos, largest := pos, root
		if left := 2*pos + 1; left < heapSize {
			if child := s.list.At(left); child.Value > largest.Value {
				largestPos, largest = left, child
			}
		}
		if right := 2*pos + 2; right < heapSize {
			if child := s.list.At(right); child.Value > largest.Value {
				largestPos, largest = right, child
			}
		}
		if largestPos == pos {
			return
		}
		s.swap(phase, root, largest)
		pos = largestPos
	}
}

// sortLegacy replays the classic list heap sort trace step for step, including its shortcuts: children are
// the two following nodes, each sift goes one level deep, and the post-extraction sift may reach into the
// already sorted tail.
func (s *sorter) sortLegacy(size int) {
	for pos := size/2 - 1; pos >= 0; pos-- {
		root := s.list.At(pos)
		if largest := largestOfNextTwo(root); largest != root {
			s.swap(PhaseBuild, root, largest)
		}
	}

	head, last := s.list.Front(), s.list.Back()
	for remaining := size - 1; remaining > 0; remaining-- {
		s.swap(PhaseExtract, head, last)
		last = last.Prev()
		if largest := largestOfNextTwo(head); largest != head {
			s.swap(PhaseSift, head, largest)
		}
	}
}

// largestOfNextTwo returns whichever of `root` and its next two nodes holds the largest value.
// Ties keep the earlier node.
func largestOfNextTwo(root *list.Node[int]) *list.Node[int] {
	largest := root
	left := root.Next()
	if left == nil {
		return largest
	}
	if left.Value > largest.Value {
		largest = left
	}
	if right := left.Next(); right != nil && right.Value > largest.Value {
		largest = right
	}
	return largest
}
