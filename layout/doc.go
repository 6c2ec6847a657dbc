// Package layout builds the immutable track graph of a branching siding yard.
//
// What
//
//   - A yard is described by a siding specification: label → length (≥ 1).
//   - Each siding becomes a chain of nodes "<label>0" … "<label>(n-1)",
//     consecutive indices linked bidirectionally.
//   - The tail node of every siding links to the hub node MAIN.
//   - MAIN links to the two through-line entry/exit nodes M1 and M2.
//   - Build returns a read-only Graph; all getters are pure queries.
//
// Why
//
//   - The graph is the single shared topology for distance tables, the
//     shunting solver, and the HTTP facade. Building it once and freezing it
//     lets any number of concurrent consumers read it without locking.
//
// Determinism
//
//	Siding labels are processed in sorted order and adjacency lists are kept
//	sorted, so identical specifications always produce identical graphs and
//	identical neighbor iteration order.
//
// Complexity (S = Σ siding lengths)
//
//   - Build: O(S log S) time (sorting adjacency), O(S) memory.
//   - Neighbors/HasNode/Degree: O(1) lookup plus O(d) copy for Neighbors.
//
// Errors
//
//   - ErrSidingLength if any siding length is below 1.
//   - ErrEmptySpec if the specification names no sidings.
package layout
