// Package matrix provides the dense storage behind roadapsp graphs.
//
// The package offers:
//
//   - Dense, a row-major float64 buffer with bounds-checked At/Set that
//     return errors instead of panicking.
//   - WeightedAdjacency, a directed V×V weight matrix with O(1) edge
//     insertion and lookup. Missing edges are +Inf, the diagonal is 0.
//
// Matrices are best for dense or small graphs where O(V²) memory is
// acceptable (road-network extracts of hundreds to low thousands of
// vertices). WeightedAdjacency is not safe for concurrent mutation;
// concurrent readers are fine, and Snapshot gives an independent copy.
package matrix
