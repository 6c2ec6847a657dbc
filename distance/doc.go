// Package distance computes blocking-unaware shortest-path hop counts over a
// layout.Graph.
//
// What
//
//   - NewTable runs one unweighted breadth-first traversal per node and
//     records the all-pairs hop-count table; unreachable pairs hold the
//     Unreachable sentinel.
//   - Path reconstructs a single shortest node sequence between two nodes,
//     independent of the table.
//   - MinTo answers the stateless diagnostic "how far is this car from the
//     nearest of its goal nodes, ignoring everything in the way".
//
// Why
//
//	The shunting heuristic needs a cheap admissible lower bound on loco
//	travel, and the HTTP facade needs loco-only shortest paths. Both
//	deliberately ignore car occupancy: the table answers "how many moves if
//	nothing were in the way", never "how many moves given current traffic".
//
// Concurrency
//
//	A Table is read-only after NewTable returns and may be shared freely
//	across concurrent solver runs.
//
// Complexity (V = nodes, E = edges)
//
//   - NewTable: O(V·(V+E)) time, O(V²) memory.
//   - Between/MinTo: O(1) / O(goals) lookups.
//   - Path: O(V+E) time, O(V) memory.
package distance
