// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported copy-plan helpers to matrix_test so the
// offset arithmetic can be pinned without widening the production API.

// Span mirrors span with exported fields for assertions.
type Span struct{ From, To, N int }

// Axis values.
const (
	ExportedMajorAxis = majorAxis
	ExportedMinorAxis = minorAxis
)

var (
	// ExportedEditAxis exposes editAxis.
	ExportedEditAxis = editAxis
	// ExportedBlockShape exposes blockShape.
	ExportedBlockShape = blockShape
	// ExportedPlanRemove exposes planRemove.
	ExportedPlanRemove = planRemove
	// ExportedPlanInsert exposes planInsert.
	ExportedPlanInsert = planInsert
	// ExportedIsIntegralInt exposes isIntegral for int.
	ExportedIsIntegralInt = isIntegral[int]
	// ExportedIsIntegralFloat exposes isIntegral for float64.
	ExportedIsIntegralFloat = isIntegral[float64]
)

// PlanSpans returns the spans of a plan.
func PlanSpans(p copyPlan) []Span {
	out := make([]Span, len(p.spans))
	for i, s := range p.spans {
		out[i] = Span{From: s.from, To: s.to, N: s.n}
	}

	return out
}

// PlanSlots returns the insertion slots of a plan.
func PlanSlots(p copyPlan) []int { return p.slots }

// PlanSize returns the new buffer length of a plan.
func PlanSize(p copyPlan) int { return p.size }

// ApplyPlanInt runs applyPlan on int buffers.
func ApplyPlanInt(p copyPlan, src, values []int) []int { return applyPlan(p, src, values) }
