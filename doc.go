// Package roadapsp computes all-pairs shortest paths over road networks.
//
// What is inside?
//
//	geo/     - haversine great-circle distance in meters
//	matrix/  - dense V×V weighted adjacency storage (+Inf = no edge)
//	apsp/    - Floyd–Warshall distances, split-vertex predecessors, path recovery
//	tmg/     - parser for TMG "simple" highway graph files
//	builder/ - synthetic graphs (random sparse, complete, cycle, geometric)
//	query/   - concurrent batch queries and text output
//	store/   - PostgreSQL persistence of computed results
//	cmd/roadapsp - the command wiring it all together
//
// Quick start:
//
//	g, _ := tmg.ParseFile("AND-region.tmg")
//	res, _ := apsp.FloydWarshall(g.Matrix)
//	d, _ := res.Distance(0, 5)
//	path, _ := res.Path(0, 5)
//
// Distances follow the edge weights' units: meters for TMG graphs,
// whatever the caller chose for hand-built ones. Negative edges are
// allowed; negative cycles are reported, not rejected.
package roadapsp
