package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nobletooth/listheap/pkg/heapsort"
	"github.com/nobletooth/listheap/pkg/list"
	"github.com/nobletooth/listheap/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest([]int{12, 11, 13, 5, 6, 7}), Digest([]int{5, 6, 7, 11, 12, 13}))
	assert.Equal(t, Digest(nil), Digest([]int{}))
	assert.NotEqual(t, Digest([]int{1, 2, 3}), Digest([]int{1, 2, 4}))
	assert.NotEqual(t, Digest([]int{1, 1, 2}), Digest([]int{1, 2, 2}), "multiplicity counts")
	assert.NotEqual(t, Digest([]int{-1}), Digest([]int{1}))
}

func TestPrinter_Format(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)
	l := list.New(12, 11, 13)

	printer.Original(l)
	list.Swap(l.At(0), l.At(2))
	printer.Step(heapsort.PhaseBuild, l)
	printer.Sorted(l)
	require.NoError(t, printer.Flush())

	assert.Equal(t, "Original Doubly Linked List: 12 11 13 \n"+
		"Heap Sort Steps:\n"+
		"13 11 12 \n"+
		"Sorted Doubly Linked List: 13 11 12 \n", out.String())
	assert.Equal(t, 1, printer.Steps())
}

func TestPrinter_EmptyList(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)
	printer.Original(list.New[int]())
	printer.Sorted(list.New[int]())
	require.NoError(t, printer.Flush())
	assert.Equal(t, "Original Doubly Linked List: \nHeap Sort Steps:\nSorted Doubly Linked List: \n", out.String())
}

func TestPrinter_PermutationMismatch(t *testing.T) {
	before := utils.GetMetricValue("trace", "permutation_mismatch")
	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.Original(list.New(1, 2, 3))
	printer.Step(heapsort.PhaseSift, list.New(3, 2, 1))
	assert.Equal(t, before, utils.GetMetricValue("trace", "permutation_mismatch"))

	printer.Step(heapsort.PhaseSift, list.New(3, 3, 1))
	assert.Equal(t, before+1, utils.GetMetricValue("trace", "permutation_mismatch"))
	printer.Sorted(list.New(1, 2))
	assert.Equal(t, before+2, utils.GetMetricValue("trace", "permutation_mismatch"))

	// The state is printed regardless.
	require.NoError(t, printer.Flush())
	assert.Contains(t, out.String(), "3 3 1 \n")
}

func TestPrinter_WriteError(t *testing.T) {
	printer := NewPrinter(brokenWriter{})
	printer.Original(list.New(1, 2))
	err := printer.Flush()
	assert.ErrorIs(t, err, errBrokenPipe)
	assert.ErrorContains(t, err, "failed to flush trace")

	// Errors stick.
	printer.Step(heapsort.PhaseExtract, list.New(2, 1))
	assert.ErrorIs(t, printer.Flush(), errBrokenPipe)
}

func TestPrinter_FollowsSort(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)
	l := list.New(3, 1, 2)

	printer.Original(l)
	heapsort.Sort(l, l.Len(), heapsort.SiftModeFull, printer.Step)
	printer.Sorted(l)
	require.NoError(t, printer.Flush())

	// Build: 3 is already the root. Extract 3, re-sift 2 above 1, extract 2.
	assert.Equal(t, "Original Doubly Linked List: 3 1 2 \n"+
		"Heap Sort Steps:\n"+
		"2 1 3 \n"+
		"1 2 3 \n"+
		"Sorted Doubly Linked List: 1 2 3 \n", out.String())
	assert.Equal(t, 2, printer.Steps())
}
