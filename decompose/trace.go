// SPDX-License-Identifier: EPL-2.0

package decompose

// Step describes one matched recursion node.
type Step struct {
	// Depth is 1 for the root node and grows by one per halving.
	Depth int
	// Level is the remaining recursion budget at this node.
	Level int
	// Start and Length locate the node's segment in the residual buffer.
	Start  int
	Length int
	// BasisLength is the length of the basis the segment was matched
	// against. It is Length-1 for the second half of an odd segment
	// under SplitShared.
	BasisLength int
	// Correlation is the weight applied to the basis; zero when Degenerate.
	Correlation float64
	// Degenerate reports that the raw correlation was NaN or infinite.
	Degenerate bool
}

// Tracer receives every Step of a Process run.
type Tracer func(Step)
