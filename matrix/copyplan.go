// SPDX-License-Identifier: MIT

// Package matrix: copy plans for structural edits.
//
// A buffer is viewed as `outer` blocks of `inner` contiguous elements:
//   - RowMajor: outer = rows, inner = cols (a row is a block);
//   - ColMajor: outer = cols, inner = rows (a column is a block).
//
// Removing or inserting a whole block is a MAJOR-axis edit (row ops under
// RowMajor, column ops under ColMajor). Removing or inserting one element in
// every block is a MINOR-axis edit (the other two cases).
//
// A plan lists the spans to copy from the old buffer into the new one plus,
// for insertions, the destination slots of the new unit in unit order.
// Keeping all offset arithmetic here lets every edit share one tested path.
package matrix

// axis selects which dimension of the block layout an edit touches.
type axis uint8

const (
	majorAxis axis = iota // whole blocks
	minorAxis             // one element per block
)

// span copies n elements from src[from:] to dst[to:].
type span struct {
	from, to, n int
}

// copyPlan describes how to build the new buffer of an edit.
type copyPlan struct {
	size  int    // length of the new buffer
	spans []span // old-to-new copies, zero-length spans omitted
	slots []int  // destination indices of the inserted unit (nil for removals)
}

// editAxis reports the axis a row (rowOp == true) or column edit uses under ord.
func editAxis(ord Order, rowOp bool) axis {
	if (ord == RowMajor) == rowOp {
		return majorAxis
	}

	return minorAxis
}

// blockShape returns (outer, inner) for a rows×cols buffer under ord.
func blockShape(ord Order, rows, cols int) (outer, inner int) {
	if ord == RowMajor {
		return rows, cols
	}

	return cols, rows
}

// planRemove builds the plan that drops unit k along ax.
// Caller guarantees 0 <= k < outer (major) or 0 <= k < inner (minor).
//
// Major: [0,k*inner) stays, [(k+1)*inner, outer*inner) shifts left by inner.
// Minor: in every block b, elements before k stay and those after k shift left by one.
// Complexity: O(1) spans for major, O(outer) spans for minor.
func planRemove(ax axis, outer, inner, k int) copyPlan {
	var p copyPlan
	if ax == majorAxis {
		p.size = (outer - 1) * inner
		p.add(0, 0, k*inner)
		p.add((k+1)*inner, k*inner, (outer-k-1)*inner)

		return p
	}

	var b int
	newInner := inner - 1
	p.size = outer * newInner
	p.spans = make([]span, 0, 2*outer)
	for b = 0; b < outer; b++ {
		p.add(b*inner, b*newInner, k)
		p.add(b*inner+k+1, b*newInner+k, inner-k-1)
	}

	return p
}

// planInsert builds the plan that opens a new unit at position k along ax.
// Caller guarantees 0 <= k <= outer (major) or 0 <= k <= inner (minor).
//
// Major: the slot is [k*inner, (k+1)*inner); the tail shifts right by inner.
// Minor: in every block b, the slot is b*(inner+1)+k.
// Complexity: O(inner) for major, O(outer) for minor.
func planInsert(ax axis, outer, inner, k int) copyPlan {
	var p copyPlan
	var i int
	if ax == majorAxis {
		p.size = (outer + 1) * inner
		p.add(0, 0, k*inner)
		p.add(k*inner, (k+1)*inner, (outer-k)*inner)
		p.slots = make([]int, inner)
		for i = 0; i < inner; i++ {
			p.slots[i] = k*inner + i
		}

		return p
	}

	newInner := inner + 1
	p.size = outer * newInner
	p.spans = make([]span, 0, 2*outer)
	p.slots = make([]int, outer)
	for i = 0; i < outer; i++ {
		p.add(i*inner, i*newInner, k)
		p.add(i*inner+k, i*newInner+k+1, inner-k)
		p.slots[i] = i*newInner + k
	}

	return p
}

// add appends a span unless it is empty.
func (p *copyPlan) add(from, to, n int) {
	if n > 0 {
		p.spans = append(p.spans, span{from: from, to: to, n: n})
	}
}

// applyPlan allocates the new buffer, copies the kept spans from src and
// writes values into the slots: zero-padded when short, truncated when long.
// src is never written, so the old buffer stays intact until installed over.
func applyPlan[T Number](p copyPlan, src, values []T) []T {
	dst := make([]T, p.size)
	for _, s := range p.spans {
		copy(dst[s.to:s.to+s.n], src[s.from:s.from+s.n])
	}
	for i, slot := range p.slots {
		if i >= len(values) {
			break // remaining slots keep the zero value
		}
		dst[slot] = values[i]
	}

	return dst
}
