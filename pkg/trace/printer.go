// Package trace prints the states a list goes through while it is being sorted.
// Each state is one line of values, every value followed by a single space. Every printed state is also
// checked to be a permutation of the original values, since the sort only ever swaps values.

package trace

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/nobletooth/listheap/pkg/heapsort"
	"github.com/nobletooth/listheap/pkg/list"
	"github.com/nobletooth/listheap/pkg/utils"
)

const (
	originalLabel = "Original Doubly Linked List: "
	stepsHeader   = "Heap Sort Steps:"
	sortedLabel   = "Sorted Doubly Linked List: "
)

// Digest returns an order independent fingerprint of `values`. Two sequences have the same digest when they
// hold the same multiset of values.
func Digest(values []int) uint64 {
	var sum uint64
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}

// Printer writes list states to an output. Write errors are sticky: after the first one nothing else is
// written and Flush returns it.
type Printer struct {
	out      *bufio.Writer
	digest   uint64 // Digest of the original values.
	hasBase  bool   // Whether Original has been printed.
	steps    int    // Number of intermediate states printed.
	writeErr error
}

// NewPrinter returns a printer writing to `w`.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: bufio.NewWriter(w)}
}

// Original prints the unsorted list followed by the steps header, and remembers its values so later states
// can be checked against them.
func (p *Printer) Original(l *list.LinkedList[int]) {
	values := l.Values()
	p.digest, p.hasBase = Digest(values), true
	p.writeLine(originalLabel, values)
	p.writeString(stepsHeader + "\n")
}

// Step prints an intermediate state. Its signature matches heapsort.StepFunc.
func (p *Printer) Step(phase heapsort.Phase, l *list.LinkedList[int]) {
	values := l.Values()
	p.check(values)
	p.steps++
	slog.Debug("Heap sort step.", "step", p.steps, "phase", phase)
	p.writeLine("", values)
}

// Sorted prints the final state of the list.
func (p *Printer) Sorted(l *list.LinkedList[int]) {
	values := l.Values()
	p.check(values)
	p.writeLine(sortedLabel, values)
}

// Steps returns how many intermediate states have been printed.
func (p *Printer) Steps() int {
	return p.steps
}

// Flush writes any buffered output and returns the first error hit while writing.
func (p *Printer) Flush() error {
	if p.writeErr != nil {
		return p.writeErr
	}
	if err := p.out.Flush(); err != nil {
		p.writeErr = fmt.Errorf("failed to flush trace: %w", err)
	}
	return p.writeErr
}

// check raises an invariant if `values` is not a permutation of the original values.
func (p *Printer) check(values []int) {
	if !p.hasBase {
		return
	}
	if got := Digest(values); got != p.digest {
		utils.RaiseInvariant("trace", "permutation_mismatch",
			"Printed list state is not a permutation of the original list.", "values", values)
	}
}

func (p *Printer) writeLine(label string, values []int) {
	if p.writeErr != nil {
		return
	}
	line := make([]byte, 0, len(label)+4*len(values)+1)
	line = append(line, label...)
	for _, v := range values {
		line = strconv.AppendInt(line, int64(v), 10)
		line = append(line, ' ')
	}
	line = append(line, '\n')
	if _, err := p.out.Write(line); err != nil {
		p.writeErr = fmt.Errorf("failed to write trace line: %w", err)
	}
}

func (p *Printer) writeString(s string) {
	if p.writeErr != nil {
		return
	}
	if _, err := p.out.WriteString(s); err != nil {
		p.writeErr = fmt.Errorf("failed to write trace line: %w", err)
	}
}
